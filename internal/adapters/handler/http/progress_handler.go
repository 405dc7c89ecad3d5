package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stretchfit/stretch-engine/internal/adapters/handler/http/middleware"
	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchfit/stretch-engine/internal/core/services"
)

const maxWaterGlasses = 8

// ProgressHandler exposes the progress ledger: today's stats,
// nutrition logging and charts.
type ProgressHandler struct {
	progress *services.ProgressService
}

func NewProgressHandler(progress *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

type logMealRequest struct {
	Name     string   `json:"name" binding:"required"`
	Items    []string `json:"items"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
}

type waterRequest struct {
	Glasses *int `json:"glasses" binding:"required"`
}

func (h *ProgressHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snapshot, err := h.progress.Get(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *ProgressHandler) LogMeal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req logMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.progress.LogMeal(c.Request.Context(), userID, domain.Meal{
		Name:     req.Name,
		Items:    req.Items,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
	})
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, meal)
}

func (h *ProgressHandler) SetWater(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req waterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The ledger stores whatever it is given; the bound lives here.
	if *req.Glasses < 0 || *req.Glasses > maxWaterGlasses {
		c.JSON(http.StatusBadRequest, gin.H{"error": "glasses must be between 0 and 8"})
		return
	}

	snapshot, err := h.progress.SetWaterIntake(c.Request.Context(), userID, *req.Glasses)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	progressGroup := router.Group("/progress")
	{
		progressGroup.GET("", h.Get)
		progressGroup.GET("/charts", h.Charts)
	}
	nutritionGroup := router.Group("/nutrition")
	{
		nutritionGroup.POST("/meals", h.LogMeal)
		nutritionGroup.PUT("/water", h.SetWater)
	}
}
