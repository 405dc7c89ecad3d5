package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchfit/stretch-engine/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, users *MockUserRepo, id string) *domain.User {
	t.Helper()
	u, err := domain.NewUser(id, "Alex", id+"@example.com")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestTokenService_GenerateToken(t *testing.T) {
	users := NewMockUserRepo()
	svc := services.NewTokenService("test-secret", "stretch-engine", time.Hour, users)

	token, session, err := svc.GenerateToken("u1")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, session)
	assert.Equal(t, "u1", session.UserID)
	assert.NotEmpty(t, session.TokenID)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), session.ExpiresAt, 2*time.Second)
}

func TestTokenService_ValidateToken(t *testing.T) {
	users := NewMockUserRepo()
	seedUser(t, users, "u1")
	svc := services.NewTokenService("test-secret", "stretch-engine", time.Hour, users)

	t.Run("Success: Round trip", func(t *testing.T) {
		token, _, err := svc.GenerateToken("u1")
		require.NoError(t, err)

		userID, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", userID)
	})

	t.Run("Error: Garbage token", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Error: Wrong secret", func(t *testing.T) {
		other := services.NewTokenService("other-secret", "stretch-engine", time.Hour, users)
		token, _, err := other.GenerateToken("u1")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Error: Wrong issuer", func(t *testing.T) {
		other := services.NewTokenService("test-secret", "someone-else", time.Hour, users)
		token, _, err := other.GenerateToken("u1")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorContains(t, err, "issuer")
	})

	t.Run("Error: Expired token", func(t *testing.T) {
		expired := services.NewTokenService("test-secret", "stretch-engine", -time.Minute, users)
		token, _, err := expired.GenerateToken("u1")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Error: Subject no longer exists", func(t *testing.T) {
		token, _, err := svc.GenerateToken("deleted-user")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorContains(t, err, "user no longer exists")
	})
}
