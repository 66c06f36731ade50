// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/Elena0909/AuctionsProduced/internal/clock"
	"github.com/Elena0909/AuctionsProduced/internal/config"
	"github.com/Elena0909/AuctionsProduced/internal/database"
	appHTTP "github.com/Elena0909/AuctionsProduced/internal/http"
	"github.com/Elena0909/AuctionsProduced/internal/metrics"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	biddingUseCase "github.com/Elena0909/AuctionsProduced/internal/bidding/usecase"
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	catalogUseCase "github.com/Elena0909/AuctionsProduced/internal/catalog/usecase"
	marketplaceHTTP "github.com/Elena0909/AuctionsProduced/internal/marketplace/http"
	marketplaceUseCase "github.com/Elena0909/AuctionsProduced/internal/marketplace/usecase"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
	userHTTP "github.com/Elena0909/AuctionsProduced/internal/user/http"
	userUseCase "github.com/Elena0909/AuctionsProduced/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger *slog.Logger
	db     *sql.DB
	clk    clock.Clock

	// Managers
	txManager database.TxManager

	// Metrics
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Validators
	userValidator     *userDomain.Validator
	productValidator  *catalogDomain.ProductValidator
	categoryValidator *catalogDomain.CategoryValidator
	auctionValidator  *biddingDomain.Validator

	// Repositories
	userRepository     userUseCase.UserRepository
	productRepository  catalogUseCase.ProductRepository
	categoryRepository catalogUseCase.CategoryRepository
	auctionRepository  biddingUseCase.AuctionRepository

	// Use Cases
	userUC        userUseCase.UserUseCase
	productUC     catalogUseCase.ProductUseCase
	categoryUC    catalogUseCase.CategoryUseCase
	auctionUC     biddingUseCase.AuctionUseCase
	marketplaceUC marketplaceUseCase.MarketplaceUseCase

	// HTTP handlers
	userHandler        *userHTTP.UserHandler
	marketplaceHandler *marketplaceHTTP.MarketplaceHandler

	// Servers
	httpServer    *appHTTP.Server
	metricsServer *appHTTP.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                     sync.Mutex
	loggerInit             sync.Once
	dbInit                 sync.Once
	clockInit              sync.Once
	txManagerInit          sync.Once
	metricsProviderInit    sync.Once
	businessMetricsInit    sync.Once
	validatorsInit         sync.Once
	userRepositoryInit     sync.Once
	productRepositoryInit  sync.Once
	categoryRepositoryInit sync.Once
	auctionRepositoryInit  sync.Once
	userUseCaseInit        sync.Once
	productUseCaseInit     sync.Once
	categoryUseCaseInit    sync.Once
	auctionUseCaseInit     sync.Once
	marketplaceUseCaseInit sync.Once
	userHandlerInit        sync.Once
	marketplaceHandlerInit sync.Once
	httpServerInit         sync.Once
	metricsServerInit      sync.Once
	initErrors             map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// Clock returns the time source shared by validators and use cases.
func (c *Container) Clock() clock.Clock {
	c.clockInit.Do(func() {
		c.clk = clock.Real{}
	})
	return c.clk
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the OpenTelemetry metrics provider.
// Returns nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsProvider, err = metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder.
// Returns a no-op implementation when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the API HTTP server with its router fully configured.
func (c *Container) HTTPServer() (*appHTTP.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server.
// Returns nil when metrics are disabled.
func (c *Container) MetricsServer() (*appHTTP.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	if !c.config.MetricsEnabled {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	return businessMetrics, nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*appHTTP.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get user handler for http server: %w", err)
	}

	marketplaceHandler, err := c.MarketplaceHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get marketplace handler for http server: %w", err)
	}

	routerConfig := appHTTP.RouterConfig{
		CORSEnabled:      c.config.CORSEnabled,
		CORSAllowOrigins: c.config.CORSAllowOrigins,
		RateLimitEnabled: c.config.RateLimitEnabled,
		RateLimitRPS:     c.config.RateLimitRequestsPerSec,
		RateLimitBurst:   c.config.RateLimitBurst,
	}

	if c.config.MetricsEnabled {
		provider, err := c.MetricsProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}
		routerConfig.MetricsMiddleware = metrics.HTTPMetricsMiddleware(
			provider.MeterProvider(),
			c.config.MetricsNamespace,
		)
	}

	server := appHTTP.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(userHandler, marketplaceHandler, routerConfig)

	return server, nil
}

// initValidators builds the domain validators. They are wired together
// (bids validate against users and products) so they are built as a set.
func (c *Container) initValidators() {
	c.validatorsInit.Do(func() {
		c.userValidator = userDomain.NewValidator()
		c.productValidator, c.categoryValidator = catalogDomain.NewValidators(c.userValidator, c.Clock())
		c.auctionValidator = biddingDomain.NewValidator(c.userValidator, c.productValidator, c.Clock())
	})
}

// UserValidator returns the user domain validator.
func (c *Container) UserValidator() *userDomain.Validator {
	c.initValidators()
	return c.userValidator
}

// ProductValidator returns the product domain validator.
func (c *Container) ProductValidator() *catalogDomain.ProductValidator {
	c.initValidators()
	return c.productValidator
}

// CategoryValidator returns the category domain validator.
func (c *Container) CategoryValidator() *catalogDomain.CategoryValidator {
	c.initValidators()
	return c.categoryValidator
}

// AuctionValidator returns the bid domain validator.
func (c *Container) AuctionValidator() *biddingDomain.Validator {
	c.initValidators()
	return c.auctionValidator
}

// initMetricsServer creates the Prometheus metrics server.
func (c *Container) initMetricsServer() (*appHTTP.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}

	return appHTTP.NewMetricsServer(
		c.config.ServerHost,
		c.config.MetricsPort,
		c.Logger(),
		provider,
	), nil
}
