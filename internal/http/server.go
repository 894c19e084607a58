package http

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/bakhbk/seckit/internal/auth/http"
	authUseCase "github.com/bakhbk/seckit/internal/auth/usecase"
	"github.com/bakhbk/seckit/internal/config"
	fieldHTTP "github.com/bakhbk/seckit/internal/fieldcrypt/http"
	"github.com/bakhbk/seckit/internal/metrics"
	userHTTP "github.com/bakhbk/seckit/internal/user/http"
)

// Server represents the main HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server.
// The router must be configured via SetupRouter before calling Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the Gin router with all middleware and routes.
//
// Route layout:
//   - GET  /health                 liveness probe
//   - GET  /ready                  readiness probe (checks database)
//   - POST /v1/auth/token          token issuance (IP rate limited)
//   - POST /v1/users               user registration (IP rate limited)
//   - POST /v1/fields/*            field encryption operations (authenticated)
//   - GET  /v1/users               paginated user list (authenticated)
//   - GET  /v1/users/*             user lookups (authenticated)
func (s *Server) SetupRouter(
	cfg *config.Config,
	fieldHandler *fieldHTTP.FieldHandler,
	userHandler *userHTTP.UserHandler,
	tokenHandler *authHTTP.TokenHandler,
	tokenUseCase authUseCase.TokenUseCase,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MetricsEnabled && metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Public endpoints, rate limited per client IP
	public := router.Group("/v1")
	if cfg.RateLimitTokenEnabled {
		public.Use(authHTTP.TokenRateLimitMiddleware(
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			s.logger,
		))
	}
	public.POST("/auth/token", tokenHandler.IssueTokenHandler)
	public.POST("/users", userHandler.RegisterUserHandler)

	// Authenticated endpoints, rate limited per principal
	protected := router.Group("/v1")
	protected.Use(authHTTP.AuthenticationMiddleware(tokenUseCase, cfg.DevBypassToken, s.logger))
	if cfg.RateLimitEnabled {
		protected.Use(authHTTP.RateLimitMiddleware(
			cfg.RateLimitRequestsPerSec,
			cfg.RateLimitBurst,
			s.logger,
		))
	}
	protected.POST("/fields/encrypt", fieldHandler.EncryptHandler)
	protected.POST("/fields/decrypt", fieldHandler.DecryptHandler)
	protected.POST("/fields/hash", fieldHandler.HashHandler)
	protected.POST("/fields/verify", fieldHandler.VerifyHandler)
	protected.GET("/users", userHandler.ListUsersHandler)
	protected.GET("/users/by-email", userHandler.GetUserByEmailHandler)
	protected.GET("/users/:id", userHandler.GetUserHandler)

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router is not configured, call SetupRouter first")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can handle traffic.
// It pings the database and reports per-component status.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if s.db == nil {
		components["database"] = "error"
	} else if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.String("error", err.Error()))
		components["database"] = "error"
	}

	if components["database"] != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}
