package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchfit/stretch-engine/internal/adapters/repository"
	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotProgressRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Success: Round trip preserves the ledger", func(t *testing.T) {
		store := repository.NewInMemorySnapshotStore()
		repo := repository.NewSnapshotProgressRepository(store)

		snapshot := domain.NewProgressSnapshot(now)
		snapshot.LogWorkout(domain.CompletedWorkoutRecord{ID: "w1", CaloriesBurned: 200, DurationMin: 20, CompletedAt: now})
		require.NoError(t, repo.Save(ctx, "u1", snapshot))

		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, snapshot.TodayStats, got.TodayStats)
		assert.Len(t, got.WorkoutHistory, 1)
		assert.Len(t, got.Achievements, 3)
	})

	t.Run("Error: Missing user", func(t *testing.T) {
		repo := repository.NewSnapshotProgressRepository(repository.NewInMemorySnapshotStore())
		_, err := repo.Get(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})

	t.Run("Error: Corrupted blob fails closed to not-found", func(t *testing.T) {
		store := repository.NewInMemorySnapshotStore()
		require.NoError(t, store.Save(ctx, "progress:u1", []byte("{broken")))

		repo := repository.NewSnapshotProgressRepository(store)
		_, err := repo.Get(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})
}

func TestSnapshotStreakRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Round trip preserves the day log", func(t *testing.T) {
		repo := repository.NewSnapshotStreakRepository(repository.NewInMemorySnapshotStore())

		record := domain.NewStreakRecord()
		record.LogWorkout(time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC))
		require.NoError(t, repo.Save(ctx, "u1", record))

		got, err := repo.Get(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1, got.CurrentStreak)
		assert.Equal(t, domain.DayCompleted, got.History["2026-03-18"])
	})

	t.Run("Error: Corrupted blob fails closed to not-found", func(t *testing.T) {
		store := repository.NewInMemorySnapshotStore()
		require.NoError(t, store.Save(ctx, "streak:u1", []byte("[]")))

		repo := repository.NewSnapshotStreakRepository(store)
		_, err := repo.Get(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	})
}

func TestSnapshotAuthSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSnapshotAuthSessionRepository(repository.NewInMemorySnapshotStore())

	session := &domain.AuthSession{
		TokenID:   "t1",
		UserID:    "u1",
		IssuedAt:  time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().UTC().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, session.TokenID, got.TokenID)
	assert.Equal(t, session.UserID, got.UserID)
	assert.True(t, session.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, repo.Delete(ctx, "u1"))
	_, err = repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
