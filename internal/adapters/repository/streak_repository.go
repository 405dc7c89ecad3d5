package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// SnapshotStreakRepository stores one streak record per user.
type SnapshotStreakRepository struct {
	store domain.SnapshotStore
}

func NewSnapshotStreakRepository(store domain.SnapshotStore) *SnapshotStreakRepository {
	return &SnapshotStreakRepository{store: store}
}

func (r *SnapshotStreakRepository) Get(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	data, err := r.store.Load(ctx, streakKey(userID))
	if err != nil {
		return nil, err
	}

	var record domain.StreakRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Printf("Corrupted streak snapshot for user %s: %v", userID, err)
		return nil, domain.ErrSnapshotNotFound
	}
	return &record, nil
}

func (r *SnapshotStreakRepository) Save(ctx context.Context, userID string, record *domain.StreakRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("repository: marshal streak record failed: %w", err)
	}
	return r.store.Save(ctx, streakKey(userID), data)
}

func streakKey(userID string) string {
	return "streak:" + userID
}
