package app

import (
	"fmt"

	biddingRepository "github.com/Elena0909/AuctionsProduced/internal/bidding/repository"
	biddingUseCase "github.com/Elena0909/AuctionsProduced/internal/bidding/usecase"
)

// AuctionRepository returns the bid repository based on database driver.
func (c *Container) AuctionRepository() (biddingUseCase.AuctionRepository, error) {
	var err error
	c.auctionRepositoryInit.Do(func() {
		c.auctionRepository, err = c.initAuctionRepository()
		if err != nil {
			c.initErrors["auctionRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auctionRepository"]; exists {
		return nil, storedErr
	}
	return c.auctionRepository, nil
}

// AuctionUseCase returns the bid use case.
func (c *Container) AuctionUseCase() (biddingUseCase.AuctionUseCase, error) {
	var err error
	c.auctionUseCaseInit.Do(func() {
		c.auctionUC, err = c.initAuctionUseCase()
		if err != nil {
			c.initErrors["auctionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["auctionUseCase"]; exists {
		return nil, storedErr
	}
	return c.auctionUC, nil
}

// initAuctionRepository creates the bid repository based on the database driver.
func (c *Container) initAuctionRepository() (biddingUseCase.AuctionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for auction repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return biddingRepository.NewPostgreSQLAuctionRepository(db), nil
	case "mysql":
		return biddingRepository.NewMySQLAuctionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAuctionUseCase creates the bid use case with all its dependencies.
func (c *Container) initAuctionUseCase() (biddingUseCase.AuctionUseCase, error) {
	auctionRepo, err := c.AuctionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get auction repository for auction use case: %w", err)
	}

	return biddingUseCase.NewAuctionUseCase(
		auctionRepo,
		c.AuctionValidator(),
		c.Clock(),
		c.config.DBQueryTimeout,
		c.config.DBReadRetries,
		c.config.DBReadRetryBackoff,
	), nil
}
