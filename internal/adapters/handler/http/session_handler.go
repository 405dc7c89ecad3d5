package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stretchfit/stretch-engine/internal/adapters/handler/http/middleware"
	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchfit/stretch-engine/internal/core/services"
)

// SessionHandler exposes the live workout session engine.
type SessionHandler struct {
	sessions *services.SessionManager
}

func NewSessionHandler(sessions *services.SessionManager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// startSessionRequest accepts either a full plan (from the generator)
// or a catalog workout id to run as a quick session.
type startSessionRequest struct {
	Plan      *domain.WorkoutPlan `json:"plan,omitempty"`
	WorkoutID *int                `json:"workout_id,omitempty"`
}

func (h *SessionHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var plan domain.WorkoutPlan
	switch {
	case req.Plan != nil:
		plan = *req.Plan
	case req.WorkoutID != nil:
		workout, found := domain.FindQuickWorkout(*req.WorkoutID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
			return
		}
		plan = domain.PlanFromQuickWorkout(workout)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan or workout_id required"})
		return
	}

	session, err := h.sessions.Start(userID, plan)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) Get(c *gin.Context) {
	h.respond(c, func(userID, sessionID string) (domain.Session, error) {
		return h.sessions.Get(sessionID, userID)
	})
}

func (h *SessionHandler) TogglePause(c *gin.Context) {
	h.respond(c, func(userID, sessionID string) (domain.Session, error) {
		return h.sessions.TogglePause(sessionID, userID)
	})
}

func (h *SessionHandler) Skip(c *gin.Context) {
	h.respond(c, func(userID, sessionID string) (domain.Session, error) {
		return h.sessions.Skip(sessionID, userID)
	})
}

func (h *SessionHandler) Close(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.sessions.Close(c.Param("id"), userID); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) respond(c *gin.Context, op func(userID, sessionID string) (domain.Session, error)) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	session, err := op(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	sessionGroup := router.Group("/sessions")
	{
		sessionGroup.POST("", h.Start)
		sessionGroup.GET("/:id", h.Get)
		sessionGroup.POST("/:id/pause", h.TogglePause)
		sessionGroup.POST("/:id/skip", h.Skip)
		sessionGroup.DELETE("/:id", h.Close)
	}
}
