package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/clock"
	"github.com/Elena0909/AuctionsProduced/internal/database"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// userUseCase implements the UserUseCase interface.
type userUseCase struct {
	userRepo     UserRepository
	validator    *userDomain.Validator
	clock        clock.Clock
	defaultScore float64
	queryTimeout time.Duration
	readRetries  int
	readBackoff  time.Duration
}

// NewUserUseCase creates a new user use case instance with the provided dependencies.
func NewUserUseCase(
	userRepo UserRepository,
	validator *userDomain.Validator,
	clk clock.Clock,
	defaultScore float64,
	queryTimeout time.Duration,
	readRetries int,
	readBackoff time.Duration,
) UserUseCase {
	return &userUseCase{
		userRepo:     userRepo,
		validator:    validator,
		clock:        clk,
		defaultScore: defaultScore,
		queryTimeout: queryTimeout,
		readRetries:  readRetries,
		readBackoff:  readBackoff,
	}
}

// Create validates and registers a new user.
func (u *userUseCase) Create(ctx context.Context, user *userDomain.User) error {
	if user == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "user is required")
	}
	if user.Score == 0 {
		user.Score = u.defaultScore
	}
	if err := u.validator.Validate(user); err != nil {
		return err
	}

	now := u.clock.Now()
	user.ID = uuid.Must(uuid.NewV7())
	user.CreatedAt = now
	user.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()
	return u.userRepo.Create(ctx, user)
}

// Get retrieves a user by ID.
func (u *userUseCase) Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error) {
	var user *userDomain.User
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		user, err = u.userRepo.Get(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetByName retrieves a user by their unique name.
func (u *userUseCase) GetByName(ctx context.Context, name string) (*userDomain.User, error) {
	var user *userDomain.User
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		user, err = u.userRepo.GetByName(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update validates and persists changes to an existing user.
func (u *userUseCase) Update(ctx context.Context, user *userDomain.User) error {
	if user == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "user is required")
	}
	if err := u.validator.Validate(user); err != nil {
		return err
	}

	existing, err := u.Get(ctx, user.ID)
	if err != nil {
		return err
	}

	existing.Name = user.Name
	existing.Role = user.Role
	existing.Score = user.Score
	existing.UpdatedAt = u.clock.Now()

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()
	if err := u.userRepo.Update(ctx, existing); err != nil {
		return err
	}
	*user = *existing
	return nil
}
