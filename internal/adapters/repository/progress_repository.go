package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// SnapshotProgressRepository stores one progress snapshot per user.
type SnapshotProgressRepository struct {
	store domain.SnapshotStore
}

func NewSnapshotProgressRepository(store domain.SnapshotStore) *SnapshotProgressRepository {
	return &SnapshotProgressRepository{store: store}
}

func (r *SnapshotProgressRepository) Get(ctx context.Context, userID string) (*domain.ProgressSnapshot, error) {
	data, err := r.store.Load(ctx, progressKey(userID))
	if err != nil {
		return nil, err
	}

	var snapshot domain.ProgressSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// A corrupted snapshot fails closed to first-run defaults.
		log.Printf("Corrupted progress snapshot for user %s: %v", userID, err)
		return nil, domain.ErrSnapshotNotFound
	}
	return &snapshot, nil
}

func (r *SnapshotProgressRepository) Save(ctx context.Context, userID string, snapshot *domain.ProgressSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("repository: marshal progress snapshot failed: %w", err)
	}
	return r.store.Save(ctx, progressKey(userID), data)
}

func progressKey(userID string) string {
	return "progress:" + userID
}
