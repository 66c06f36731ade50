// Package http provides the API server, its router and request middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	marketplaceHTTP "github.com/Elena0909/AuctionsProduced/internal/marketplace/http"
	userHTTP "github.com/Elena0909/AuctionsProduced/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server. The router is configured separately
// via SetupRouter.
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

// RouterConfig carries the router-level middleware configuration.
type RouterConfig struct {
	CORSEnabled      bool
	CORSAllowOrigins string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	// MetricsMiddleware records per-request metrics. Nil disables it.
	MetricsMiddleware gin.HandlerFunc
}

// SetupRouter builds the API router and registers all routes.
func (s *Server) SetupRouter(
	userHandler *userHTTP.UserHandler,
	marketplaceHandler *marketplaceHTTP.MarketplaceHandler,
	config RouterConfig,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	if config.MetricsMiddleware != nil {
		router.Use(config.MetricsMiddleware)
	}
	if cors := createCORSMiddleware(config.CORSEnabled, config.CORSAllowOrigins, s.logger); cors != nil {
		router.Use(cors)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	v1.POST("/users", userHandler.CreateHandler)
	v1.GET("/users/:id", userHandler.GetHandler)

	v1.POST("/listings", marketplaceHandler.CreateListingHandler)
	v1.PUT("/listings/:id", marketplaceHandler.EditListingHandler)
	v1.POST("/listings/:id/close", marketplaceHandler.CloseListingHandler)
	v1.GET("/listings/:id/bids", marketplaceHandler.ListBidsHandler)

	// Bids are the contended hot path; they get a per-client rate limit.
	bidHandlers := []gin.HandlerFunc{}
	if config.RateLimitEnabled {
		bidHandlers = append(bidHandlers, RateLimitMiddleware(config.RateLimitRPS, config.RateLimitBurst, s.logger))
	}
	bidHandlers = append(bidHandlers, marketplaceHandler.PlaceBidHandler)
	v1.POST("/listings/:id/bids", bidHandlers...)

	v1.GET("/categories/:name", marketplaceHandler.BrowseHandler)

	s.router = router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. The database
// is the only hard dependency.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Error("readiness database ping failed", slog.Any("error", err))
		components["database"] = "error"
		ready = false
	}

	if !ready {
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

// GetHandler returns the configured router. It is nil until SetupRouter is
// called.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		return nil
	}
	return s.router
}

// Start starts the HTTP server. SetupRouter must have been called first.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router is not configured")
	}

	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
