package app

import (
	"fmt"

	catalogRepository "github.com/Elena0909/AuctionsProduced/internal/catalog/repository"
	catalogUseCase "github.com/Elena0909/AuctionsProduced/internal/catalog/usecase"
	"github.com/Elena0909/AuctionsProduced/internal/similarity"
)

// ProductRepository returns the product repository based on database driver.
func (c *Container) ProductRepository() (catalogUseCase.ProductRepository, error) {
	var err error
	c.productRepositoryInit.Do(func() {
		c.productRepository, err = c.initProductRepository()
		if err != nil {
			c.initErrors["productRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productRepository"]; exists {
		return nil, storedErr
	}
	return c.productRepository, nil
}

// CategoryRepository returns the category repository based on database driver.
func (c *Container) CategoryRepository() (catalogUseCase.CategoryRepository, error) {
	var err error
	c.categoryRepositoryInit.Do(func() {
		c.categoryRepository, err = c.initCategoryRepository()
		if err != nil {
			c.initErrors["categoryRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryRepository"]; exists {
		return nil, storedErr
	}
	return c.categoryRepository, nil
}

// ProductUseCase returns the product use case.
func (c *Container) ProductUseCase() (catalogUseCase.ProductUseCase, error) {
	var err error
	c.productUseCaseInit.Do(func() {
		c.productUC, err = c.initProductUseCase()
		if err != nil {
			c.initErrors["productUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.productUC, nil
}

// CategoryUseCase returns the category use case.
func (c *Container) CategoryUseCase() (catalogUseCase.CategoryUseCase, error) {
	var err error
	c.categoryUseCaseInit.Do(func() {
		c.categoryUC, err = c.initCategoryUseCase()
		if err != nil {
			c.initErrors["categoryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryUseCase"]; exists {
		return nil, storedErr
	}
	return c.categoryUC, nil
}

// initProductRepository creates the product repository based on the database driver.
func (c *Container) initProductRepository() (catalogUseCase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return catalogRepository.NewPostgreSQLProductRepository(db), nil
	case "mysql":
		return catalogRepository.NewMySQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCategoryRepository creates the category repository based on the database driver.
func (c *Container) initCategoryRepository() (catalogUseCase.CategoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for category repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return catalogRepository.NewPostgreSQLCategoryRepository(db), nil
	case "mysql":
		return catalogRepository.NewMySQLCategoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProductUseCase creates the product use case with all its dependencies.
func (c *Container) initProductUseCase() (catalogUseCase.ProductUseCase, error) {
	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	return catalogUseCase.NewProductUseCase(
		productRepo,
		c.ProductValidator(),
		similarity.NewDetector(c.config.DuplicateDistanceThreshold),
		c.Clock(),
		c.config.DBQueryTimeout,
		c.config.DBReadRetries,
		c.config.DBReadRetryBackoff,
	), nil
}

// initCategoryUseCase creates the category use case with all its dependencies.
func (c *Container) initCategoryUseCase() (catalogUseCase.CategoryUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for category use case: %w", err)
	}

	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for category use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for category use case: %w", err)
	}

	return catalogUseCase.NewCategoryUseCase(
		txManager,
		categoryRepo,
		productRepo,
		c.CategoryValidator(),
		c.Clock(),
		c.config.DBQueryTimeout,
		c.config.DBReadRetries,
		c.config.DBReadRetryBackoff,
	), nil
}
