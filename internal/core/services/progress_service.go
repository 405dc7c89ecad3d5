package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// ProgressService owns the progress ledger: it loads the per-user
// snapshot, applies the daily rollover at load, and writes the whole
// snapshot back after every mutation.
type ProgressService struct {
	repo domain.ProgressRepository
	now  func() time.Time
}

func NewProgressService(repo domain.ProgressRepository) *ProgressService {
	return &ProgressService{repo: repo, now: time.Now}
}

// Get returns today's snapshot, applying rollover if the stored date
// is stale. The rolled-over state is persisted immediately.
func (s *ProgressService) Get(ctx context.Context, userID string) (*domain.ProgressSnapshot, error) {
	snapshot, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, userID, snapshot); err != nil {
		return nil, fmt.Errorf("progress service: save failed: %w", err)
	}
	return snapshot, nil
}

// LogWorkout commits a completed workout record into the ledger.
func (s *ProgressService) LogWorkout(ctx context.Context, userID string, record domain.CompletedWorkoutRecord) (*domain.ProgressSnapshot, error) {
	snapshot, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	snapshot.LogWorkout(record)
	if err := s.repo.Save(ctx, userID, snapshot); err != nil {
		return nil, fmt.Errorf("progress service: save failed: %w", err)
	}
	return snapshot, nil
}

// LogMeal adds a meal to today's nutrition totals.
func (s *ProgressService) LogMeal(ctx context.Context, userID string, meal domain.Meal) (domain.Meal, error) {
	snapshot, err := s.load(ctx, userID)
	if err != nil {
		return domain.Meal{}, err
	}
	logged := snapshot.LogMeal(meal, s.now())
	if err := s.repo.Save(ctx, userID, snapshot); err != nil {
		return domain.Meal{}, fmt.Errorf("progress service: save failed: %w", err)
	}
	return logged, nil
}

// SetWaterIntake stores the absolute glass count for today.
func (s *ProgressService) SetWaterIntake(ctx context.Context, userID string, glasses int) (*domain.ProgressSnapshot, error) {
	snapshot, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	snapshot.SetWaterIntake(glasses)
	if err := s.repo.Save(ctx, userID, snapshot); err != nil {
		return nil, fmt.Errorf("progress service: save failed: %w", err)
	}
	return snapshot, nil
}

func (s *ProgressService) load(ctx context.Context, userID string) (*domain.ProgressSnapshot, error) {
	snapshot, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return domain.NewProgressSnapshot(s.now()), nil
		}
		return nil, fmt.Errorf("progress service: load failed: %w", err)
	}
	snapshot.Rollover(s.now())
	return snapshot, nil
}
