package http

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchfit/stretch-engine/internal/adapters/repository"
	"github.com/stretchfit/stretch-engine/internal/core/services"
)

// newTestRouter wires the full API over an in-memory snapshot store.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewInMemorySnapshotStore()
	userRepo := repository.NewSnapshotUserRepository(store)
	sessionRepo := repository.NewSnapshotAuthSessionRepository(store)
	progressRepo := repository.NewSnapshotProgressRepository(store)
	streakRepo := repository.NewSnapshotStreakRepository(store)

	tokenService := services.NewTokenService("test-secret", "stretch-engine", time.Hour, userRepo)
	authService := services.NewAuthService(userRepo, sessionRepo, tokenService)
	progressService := services.NewProgressService(progressRepo)
	streakService := services.NewStreakService(streakRepo)
	generatorService := services.NewGeneratorService(rand.New(rand.NewSource(1)), 0)
	sessionManager := services.NewSessionManager(progressService, rand.New(rand.NewSource(1)), time.Hour)
	t.Cleanup(sessionManager.Shutdown)
	premiumService := services.NewPremiumService(userRepo, 0)

	return NewRouter(RouterDependencies{
		AuthHandler:     NewAuthHandler(authService),
		WorkoutHandler:  NewWorkoutHandler(generatorService),
		SessionHandler:  NewSessionHandler(sessionManager),
		ProgressHandler: NewProgressHandler(progressService),
		StreakHandler:   NewStreakHandler(streakService),
		PremiumHandler:  NewPremiumHandler(premiumService),
		FormHandler:     NewFormHandler(),
		TokenService:    tokenService,
		StartTime:       time.Now(),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerTestUser creates an account through the API and returns its
// bearer token.
func registerTestUser(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     "Alex Runner",
		"email":    "alex@example.com",
		"password": "secret-password",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp authResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/workouts"},
		{http.MethodGet, "/api/v1/progress"},
		{http.MethodGet, "/api/v1/streak"},
		{http.MethodGet, "/api/v1/premium"},
		{http.MethodGet, "/api/v1/auth/me"},
	}

	for _, p := range paths {
		w := doJSON(t, router, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", p.method, p.path)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/progress", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
