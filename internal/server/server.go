package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/healthtrack/backend/config"
	"github.com/healthtrack/backend/internal/api"
	"github.com/healthtrack/backend/internal/middleware"
	"github.com/healthtrack/backend/internal/service"
)

// Deps are the long-lived resources the server is built from. Redis is
// optional.
type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New creates a new server instance
func New(cfg *config.Config, deps Deps) *Server {
	if cfg.Environment.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(deps.Logger),
		middleware.RequestLogger(deps.Logger),
		middleware.CORS(cfg.CORSOrigins),
	)

	var limiter *middleware.RateLimiter
	if deps.Redis != nil && cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewAPIRateLimiter(deps.Redis, cfg.RateLimitPerMinute, deps.Logger)
	}

	api.RegisterRoutes(router, api.Dependencies{
		DB:          deps.DB,
		Redis:       deps.Redis,
		Tokens:      service.NewTokenService(cfg.JWTSecret),
		Goals:       service.NewGoalService(deps.DB, deps.Logger),
		RateLimiter: limiter,
		Logger:      deps.Logger,
	})

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		logger: deps.Logger,
	}
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on the configured address and blocks until the server
// stops. It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.http.Addr))
	return ignoreClosed(s.http.ListenAndServe())
}

// Serve accepts connections on l until the server stops.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Info("Starting server", zap.String("addr", l.Addr().String()))
	return ignoreClosed(s.http.Serve(l))
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
