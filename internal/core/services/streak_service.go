package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// StreakService owns the streak record. Break detection runs only
// inside load, so a streak that died overnight reads stale until the
// record is next loaded; that staleness window is accepted behavior.
type StreakService struct {
	repo domain.StreakRepository
	now  func() time.Time
}

func NewStreakService(repo domain.StreakRepository) *StreakService {
	return &StreakService{repo: repo, now: time.Now}
}

// Get returns the streak record after the load-time break check.
func (s *StreakService) Get(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	record, broken, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if broken {
		if err := s.repo.Save(ctx, userID, record); err != nil {
			return nil, fmt.Errorf("streak service: save failed: %w", err)
		}
	}
	return record, nil
}

// LogWorkout marks today as worked out. Each call increments the
// streak; there is no same-day dedupe here, unlike the progress
// ledger's first-of-day rule.
func (s *StreakService) LogWorkout(ctx context.Context, userID string) (*domain.StreakRecord, error) {
	record, _, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	record.LogWorkout(s.now())
	if err := s.repo.Save(ctx, userID, record); err != nil {
		return nil, fmt.Errorf("streak service: save failed: %w", err)
	}
	return record, nil
}

// UseFreeze spends a freeze token; with none left the record is
// returned unchanged and used is false.
func (s *StreakService) UseFreeze(ctx context.Context, userID string) (*domain.StreakRecord, bool, error) {
	record, _, err := s.load(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	used := record.UseFreeze(s.now())
	if used {
		if err := s.repo.Save(ctx, userID, record); err != nil {
			return nil, false, fmt.Errorf("streak service: save failed: %w", err)
		}
	}
	return record, used, nil
}

func (s *StreakService) load(ctx context.Context, userID string) (*domain.StreakRecord, bool, error) {
	record, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return domain.NewStreakRecord(), false, nil
		}
		return nil, false, fmt.Errorf("streak service: load failed: %w", err)
	}
	broken := record.CheckBreak(s.now())
	if broken {
		log.Printf("Streak broken for user %s", userID)
	}
	return record, broken, nil
}
