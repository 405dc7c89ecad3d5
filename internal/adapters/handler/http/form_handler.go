package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stretchfit/stretch-engine/internal/core/domain"
)

// FormHandler scores a single frame of pose landmarks against the
// rule set for one exercise.
type FormHandler struct{}

func NewFormHandler() *FormHandler {
	return &FormHandler{}
}

type scoreFormRequest struct {
	Exercise  string            `json:"exercise" binding:"required"`
	Landmarks []domain.Landmark `json:"landmarks" binding:"required"`
}

func (h *FormHandler) Score(c *gin.Context) {
	var req scoreFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := domain.ScoreForm(domain.PoseExercise(req.Exercise), req.Landmarks)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownPoseExercise):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *FormHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/form/score", h.Score)
}
