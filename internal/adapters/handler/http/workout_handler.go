package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stretchfit/stretch-engine/internal/adapters/handler/http/middleware"
	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchfit/stretch-engine/internal/core/services"
)

// WorkoutHandler serves the browsable catalog and the workout
// generator.
type WorkoutHandler struct {
	generator *services.GeneratorService
}

func NewWorkoutHandler(generator *services.GeneratorService) *WorkoutHandler {
	return &WorkoutHandler{generator: generator}
}

type generateRequest struct {
	Goal       string   `json:"goal" binding:"required"`
	Level      string   `json:"fitness_level" binding:"required"`
	Duration   int      `json:"duration" binding:"required"`
	FocusAreas []string `json:"focus_areas"`
}

func (h *WorkoutHandler) ListCatalog(c *gin.Context) {
	category := c.Query("category")

	if category == "" || category == "all" {
		c.JSON(http.StatusOK, gin.H{"workouts": domain.QuickWorkouts})
		return
	}

	filtered := []domain.QuickWorkout{}
	for _, w := range domain.QuickWorkouts {
		if string(w.Category) == category {
			filtered = append(filtered, w)
		}
	}
	c.JSON(http.StatusOK, gin.H{"workouts": filtered})
}

func (h *WorkoutHandler) GetCatalogWorkout(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	workout, ok := domain.FindQuickWorkout(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "workout not found"})
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) Generate(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	focusAreas := make([]domain.Category, 0, len(req.FocusAreas))
	for _, area := range req.FocusAreas {
		focusAreas = append(focusAreas, domain.Category(area))
	}

	plan, err := h.generator.Generate(c.Request.Context(), domain.GeneratorPreferences{
		Goal:        domain.Goal(req.Goal),
		Level:       domain.FitnessLevel(req.Level),
		DurationMin: req.Duration,
		FocusAreas:  focusAreas,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidGoal),
			errors.Is(err, domain.ErrInvalidFitnessLevel),
			errors.Is(err, domain.ErrInvalidDuration),
			errors.Is(err, domain.ErrInvalidFocusArea):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "generation cancelled"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *WorkoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	workoutGroup := router.Group("/workouts")
	{
		workoutGroup.GET("", h.ListCatalog)
		workoutGroup.GET("/:id", h.GetCatalogWorkout)
		workoutGroup.POST("/generate", h.Generate)
	}
}
