package app

import (
	"fmt"

	userHTTP "github.com/Elena0909/AuctionsProduced/internal/user/http"
	userRepository "github.com/Elena0909/AuctionsProduced/internal/user/repository"
	userUseCase "github.com/Elena0909/AuctionsProduced/internal/user/usecase"
)

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	var err error
	c.userRepositoryInit.Do(func() {
		c.userRepository, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepository"]; exists {
		return nil, storedErr
	}
	return c.userRepository, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUC, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUC, nil
}

// UserHandler returns the HTTP handler for user operations.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	var err error
	c.userHandlerInit.Do(func() {
		c.userHandler, err = c.initUserHandler()
		if err != nil {
			c.initErrors["userHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.userHandler, nil
}

// initUserRepository creates the user repository based on the database driver.
func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with all its dependencies.
func (c *Container) initUserUseCase() (userUseCase.UserUseCase, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	return userUseCase.NewUserUseCase(
		userRepo,
		c.UserValidator(),
		c.Clock(),
		c.config.DefaultUserScore,
		c.config.DBQueryTimeout,
		c.config.DBReadRetries,
		c.config.DBReadRetryBackoff,
	), nil
}

// initUserHandler creates the user HTTP handler.
func (c *Container) initUserHandler() (*userHTTP.UserHandler, error) {
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}

	return userHTTP.NewUserHandler(useCase, c.Logger()), nil
}
