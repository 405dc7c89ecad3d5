package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// AuthService handles registration, login and profile updates over the
// registered-users snapshot, and keeps the authenticated-session
// snapshot in step with issued tokens.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.AuthSessionRepository
	tokens   *TokenService
}

func NewAuthService(users domain.UserRepository, sessions domain.AuthSessionRepository, tokens *TokenService) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type ProfileUpdateInput struct {
	Name   *string
	Avatar *string
}

// Register creates the account and logs it straight in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	user, err := domain.NewUser(uuid.NewString(), input.Name, input.Email)
	if err != nil {
		return nil, "", err
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, "", err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("auth service: failed to create user: %w", err)
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password collapse into the same failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("auth service: lookup failed: %w", err)
	}
	if err := user.CheckPassword(password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout drops the persisted session snapshot. The token itself simply
// expires.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return fmt.Errorf("auth service: logout failed: %w", err)
	}
	return nil
}

// GetUser fetches the account by id.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies the given fields to the account and writes the
// registered-users collection back.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, input ProfileUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrNameEmpty
		}
		user.Name = name
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("auth service: update failed: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueSession(ctx context.Context, userID string) (string, error) {
	token, session, err := s.tokens.GenerateToken(userID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("auth service: failed to persist session: %w", err)
	}
	return token, nil
}
