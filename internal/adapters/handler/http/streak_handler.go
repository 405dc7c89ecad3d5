package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stretchfit/stretch-engine/internal/adapters/handler/http/middleware"
	"github.com/stretchfit/stretch-engine/internal/core/services"
)

// StreakHandler exposes the daily streak: current count, freezes and
// the weekly goal.
type StreakHandler struct {
	streaks *services.StreakService
}

func NewStreakHandler(streaks *services.StreakService) *StreakHandler {
	return &StreakHandler{streaks: streaks}
}

func (h *StreakHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	record, err := h.streaks.Get(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *StreakHandler) LogWorkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	record, err := h.streaks.LogWorkout(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *StreakHandler) UseFreeze(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	record, used, err := h.streaks.UseFreeze(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !used {
		c.JSON(http.StatusConflict, gin.H{"error": "no streak freezes left"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *StreakHandler) RegisterRoutes(router *gin.RouterGroup) {
	streakGroup := router.Group("/streak")
	{
		streakGroup.GET("", h.Get)
		streakGroup.POST("/workouts", h.LogWorkout)
		streakGroup.POST("/freeze", h.UseFreeze)
	}
}
