package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/stretchfit/stretch-engine/internal/adapters/handler/http/middleware"
	"github.com/stretchfit/stretch-engine/internal/core/services"
)

type RouterDependencies struct {
	AuthHandler     *AuthHandler
	WorkoutHandler  *WorkoutHandler
	SessionHandler  *SessionHandler
	ProgressHandler *ProgressHandler
	StreakHandler   *StreakHandler
	PremiumHandler  *PremiumHandler
	FormHandler     *FormHandler
	TokenService    *services.TokenService

	// DB and Redis are nil when the engine runs on the file or
	// in-memory snapshot store.
	DB        *sqlx.DB
	Redis     *redis.Client
	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Redis != nil {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, 100, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		status := gin.H{
			"status": "ok",
			"uptime": time.Since(deps.StartTime).String(),
		}
		statusCode := 200

		if deps.DB != nil {
			dbStatus := "connected"
			if err := deps.DB.Ping(); err != nil {
				dbStatus = "unreachable"
				statusCode = 503
			}
			status["database"] = dbStatus
		}

		if deps.Redis != nil {
			redisStatus := "connected"
			if deps.Redis.Ping(c.Request.Context()).Err() != nil {
				redisStatus = "unreachable"
				statusCode = 503
			}
			status["redis"] = redisStatus
		}

		if statusCode != 200 {
			status["status"] = "degraded"
		}
		c.JSON(statusCode, status)
	})

	apiV1 := router.Group("/api/v1")

	deps.AuthHandler.RegisterRoutes(apiV1)

	protected := apiV1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenService))
	{
		deps.AuthHandler.RegisterProtectedRoutes(protected)
		deps.WorkoutHandler.RegisterRoutes(protected)
		deps.SessionHandler.RegisterRoutes(protected)
		deps.ProgressHandler.RegisterRoutes(protected)
		deps.StreakHandler.RegisterRoutes(protected)
		deps.PremiumHandler.RegisterRoutes(protected)
		deps.FormHandler.RegisterRoutes(protected)
	}

	return router
}
