package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// PremiumDuration is how long one upgrade purchase lasts.
const PremiumDuration = 30 * 24 * time.Hour

// PremiumService grants the premium entitlement. There is no real
// payment processor; confirmation is simulated by a fixed delay.
type PremiumService struct {
	users        domain.UserRepository
	confirmDelay time.Duration
	now          func() time.Time
}

func NewPremiumService(users domain.UserRepository, confirmDelay time.Duration) *PremiumService {
	return &PremiumService{users: users, confirmDelay: confirmDelay, now: time.Now}
}

// Status reports whether the user's entitlement is active and when it
// expires.
func (s *PremiumService) Status(ctx context.Context, userID string) (bool, *time.Time, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	return user.IsPremium(s.now()), user.PremiumExpiresAt, nil
}

// Upgrade waits out the simulated payment confirmation, then extends
// the entitlement by PremiumDuration from now.
func (s *PremiumService) Upgrade(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.confirmDelay > 0 {
		timer := time.NewTimer(s.confirmDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	user.GrantPremium(s.now(), PremiumDuration)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("premium service: update failed: %w", err)
	}
	return user, nil
}
