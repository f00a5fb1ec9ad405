package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/internal/database"
	"github.com/healthtrack/backend/internal/middleware"
	"github.com/healthtrack/backend/internal/service"
)

// Dependencies are the collaborators the routes need. Redis and
// RateLimiter may be nil.
type Dependencies struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Tokens      service.ITokenService
	Goals       service.IGoalService
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
}

// HealthHandler reports whether the API and its backing stores are up.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{}
	healthy := true

	if h.db != nil {
		if err := database.HealthCheck(ctx, h.db); err != nil {
			checks["database"] = err.Error()
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		} else {
			checks["redis"] = "ok"
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "checks": checks})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "checks": checks})
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/health", NewHealthHandler(deps.DB, deps.Redis).HealthCheck)

	v1 := router.Group("/api/v1")
	// identify callers first so the limiter can count them by user id
	v1.Use(middleware.OptionalAuthMiddleware(deps.Tokens))
	if deps.RateLimiter != nil {
		v1.Use(deps.RateLimiter.RateLimitMiddleware())
	} else {
		deps.Logger.Info("Rate limiting disabled (Redis not configured)")
	}

	NewPlannerHandler(deps.Logger).RegisterRoutes(v1)
	NewNutritionHandler(deps.Goals, deps.Logger).RegisterRoutes(v1)
	NewGoalHandler(deps.Goals, deps.Tokens, deps.Logger).RegisterRoutes(v1)
}
