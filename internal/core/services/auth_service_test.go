package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchfit/stretch-engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

type MockUserRepo struct {
	store         map[string]*domain.User
	simulateError error
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{store: make(map[string]*domain.User)}
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	u, ok := m.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	for _, u := range m.store {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	for _, u := range m.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	clone := *user
	m.store[user.ID] = &clone
	return nil
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	if _, ok := m.store[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	m.store[user.ID] = &clone
	return nil
}

type MockAuthSessionRepo struct {
	store         map[string]*domain.AuthSession
	simulateError error
}

func NewMockAuthSessionRepo() *MockAuthSessionRepo {
	return &MockAuthSessionRepo{store: make(map[string]*domain.AuthSession)}
}

func (m *MockAuthSessionRepo) Get(ctx context.Context, userID string) (*domain.AuthSession, error) {
	if m.simulateError != nil {
		return nil, m.simulateError
	}
	s, ok := m.store[userID]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *MockAuthSessionRepo) Save(ctx context.Context, session *domain.AuthSession) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	clone := *session
	m.store[session.UserID] = &clone
	return nil
}

func (m *MockAuthSessionRepo) Delete(ctx context.Context, userID string) error {
	if m.simulateError != nil {
		return m.simulateError
	}
	delete(m.store, userID)
	return nil
}

func newTestAuthService() (*services.AuthService, *MockUserRepo, *MockAuthSessionRepo) {
	users := NewMockUserRepo()
	sessions := NewMockAuthSessionRepo()
	tokens := services.NewTokenService("test-secret", "stretch-engine", time.Hour, users)
	return services.NewAuthService(users, sessions, tokens), users, sessions
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Creates the account and logs it in", func(t *testing.T) {
		svc, users, sessions := newTestAuthService()

		user, token, err := svc.Register(ctx, services.RegisterInput{
			Name:     "Alex Runner",
			Email:    "Alex@Example.com",
			Password: "secret-password",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "alex@example.com", user.Email)
		assert.Equal(t, domain.DefaultAvatar, user.Avatar)
		assert.Len(t, users.store, 1)
		assert.Len(t, sessions.store, 1, "registration persists a session")
	})

	t.Run("Error: Duplicate email", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		_, _, err := svc.Register(ctx, services.RegisterInput{Name: "A", Email: "a@b.com", Password: "password-1"})
		require.NoError(t, err)

		_, _, err = svc.Register(ctx, services.RegisterInput{Name: "B", Email: "a@b.com", Password: "password-2"})
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("Error: Validation failures pass through", func(t *testing.T) {
		svc, _, _ := newTestAuthService()

		_, _, err := svc.Register(ctx, services.RegisterInput{Name: "", Email: "a@b.com", Password: "password-1"})
		assert.ErrorIs(t, err, domain.ErrNameEmpty)

		_, _, err = svc.Register(ctx, services.RegisterInput{Name: "A", Email: "nope", Password: "password-1"})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)

		_, _, err = svc.Register(ctx, services.RegisterInput{Name: "A", Email: "a@b.com", Password: "short"})
		assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService()

	registered, _, err := svc.Register(ctx, services.RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	t.Run("Success: Correct credentials, case-insensitive email", func(t *testing.T) {
		user, token, err := svc.Login(ctx, "  ALEX@example.com ", "secret-password")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("Error: Wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alex@example.com", "wrong-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("Error: Unknown email collapses into the same failure", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", "secret-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := newTestAuthService()

	user, _, err := svc.Register(ctx, services.RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	require.Len(t, sessions.store, 1)

	require.NoError(t, svc.Logout(ctx, user.ID))
	assert.Empty(t, sessions.store)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestAuthService()

	user, _, err := svc.Register(ctx, services.RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	t.Run("Success: Partial update touches only the given fields", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, user.ID, services.ProfileUpdateInput{Avatar: ptr("🏃")})

		require.NoError(t, err)
		assert.Equal(t, "🏃", updated.Avatar)
		assert.Equal(t, "Alex", updated.Name)
		assert.Equal(t, "🏃", users.store[user.ID].Avatar)
	})

	t.Run("Error: Blank name", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, user.ID, services.ProfileUpdateInput{Name: ptr("   ")})
		assert.ErrorIs(t, err, domain.ErrNameEmpty)
	})

	t.Run("Error: Unknown user", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, "ghost", services.ProfileUpdateInput{Name: ptr(strings.Repeat("x", 3))})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
