package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stretchfit/stretch-engine/internal/adapters/handler/http/middleware"
	"github.com/stretchfit/stretch-engine/internal/core/domain"
	"github.com/stretchfit/stretch-engine/internal/core/services"
)

// PremiumHandler exposes the premium membership status and upgrade flow.
type PremiumHandler struct {
	premium *services.PremiumService
}

func NewPremiumHandler(premium *services.PremiumService) *PremiumHandler {
	return &PremiumHandler{premium: premium}
}

type premiumStatusResponse struct {
	Premium   bool       `json:"premium"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (h *PremiumHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	premium, expiresAt, err := h.premium.Status(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, premiumStatusResponse{Premium: premium, ExpiresAt: expiresAt})
}

func (h *PremiumHandler) Upgrade(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.premium.Upgrade(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "upgrade cancelled"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, premiumStatusResponse{Premium: true, ExpiresAt: user.PremiumExpiresAt})
}

func (h *PremiumHandler) RegisterRoutes(router *gin.RouterGroup) {
	premiumGroup := router.Group("/premium")
	{
		premiumGroup.GET("", h.Status)
		premiumGroup.POST("/upgrade", h.Upgrade)
	}
}
