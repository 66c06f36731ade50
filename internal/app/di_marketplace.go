package app

import (
	"fmt"

	marketplaceHTTP "github.com/Elena0909/AuctionsProduced/internal/marketplace/http"
	marketplaceUseCase "github.com/Elena0909/AuctionsProduced/internal/marketplace/usecase"
)

// MarketplaceUseCase returns the marketplace orchestrator.
// When metrics are enabled it is wrapped with the metrics decorator.
func (c *Container) MarketplaceUseCase() (marketplaceUseCase.MarketplaceUseCase, error) {
	var err error
	c.marketplaceUseCaseInit.Do(func() {
		c.marketplaceUC, err = c.initMarketplaceUseCase()
		if err != nil {
			c.initErrors["marketplaceUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["marketplaceUseCase"]; exists {
		return nil, storedErr
	}
	return c.marketplaceUC, nil
}

// MarketplaceHandler returns the HTTP handler for marketplace operations.
func (c *Container) MarketplaceHandler() (*marketplaceHTTP.MarketplaceHandler, error) {
	var err error
	c.marketplaceHandlerInit.Do(func() {
		c.marketplaceHandler, err = c.initMarketplaceHandler()
		if err != nil {
			c.initErrors["marketplaceHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["marketplaceHandler"]; exists {
		return nil, storedErr
	}
	return c.marketplaceHandler, nil
}

// initMarketplaceUseCase creates the marketplace orchestrator with all its dependencies.
func (c *Container) initMarketplaceUseCase() (marketplaceUseCase.MarketplaceUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for marketplace use case: %w", err)
	}

	users, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for marketplace use case: %w", err)
	}

	products, err := c.ProductUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get product use case for marketplace use case: %w", err)
	}

	categories, err := c.CategoryUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get category use case for marketplace use case: %w", err)
	}

	auctions, err := c.AuctionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auction use case for marketplace use case: %w", err)
	}

	useCase := marketplaceUseCase.NewMarketplaceUseCase(
		txManager,
		users,
		products,
		categories,
		auctions,
		c.Clock(),
		c.config.MaxActiveProducts,
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for marketplace use case: %w", err)
		}
		useCase = marketplaceUseCase.NewMarketplaceUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initMarketplaceHandler creates the marketplace HTTP handler.
func (c *Container) initMarketplaceHandler() (*marketplaceHTTP.MarketplaceHandler, error) {
	marketplace, err := c.MarketplaceUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get marketplace use case for marketplace handler: %w", err)
	}

	auctions, err := c.AuctionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auction use case for marketplace handler: %w", err)
	}

	return marketplaceHTTP.NewMarketplaceHandler(marketplace, auctions, c.Logger()), nil
}
