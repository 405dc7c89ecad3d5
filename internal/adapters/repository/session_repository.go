package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// SnapshotAuthSessionRepository stores the authenticated-session
// snapshot, one per user.
type SnapshotAuthSessionRepository struct {
	store domain.SnapshotStore
}

func NewSnapshotAuthSessionRepository(store domain.SnapshotStore) *SnapshotAuthSessionRepository {
	return &SnapshotAuthSessionRepository{store: store}
}

func (r *SnapshotAuthSessionRepository) Get(ctx context.Context, userID string) (*domain.AuthSession, error) {
	data, err := r.store.Load(ctx, authSessionKey(userID))
	if err != nil {
		return nil, err
	}

	var session domain.AuthSession
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("Corrupted auth session snapshot for user %s: %v", userID, err)
		return nil, domain.ErrSnapshotNotFound
	}
	return &session, nil
}

func (r *SnapshotAuthSessionRepository) Save(ctx context.Context, session *domain.AuthSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("repository: marshal auth session failed: %w", err)
	}
	return r.store.Save(ctx, authSessionKey(session.UserID), data)
}

func (r *SnapshotAuthSessionRepository) Delete(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, authSessionKey(userID))
}

func authSessionKey(userID string) string {
	return "session:" + userID
}
