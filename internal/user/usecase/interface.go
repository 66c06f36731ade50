// Package usecase defines the interfaces and implementations for user
// management. Use cases orchestrate operations between the validator and the
// repository to register marketplace participants and keep their profiles
// current.
package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *userDomain.User) error
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)
	GetByName(ctx context.Context, name string) (*userDomain.User, error)
	Update(ctx context.Context, user *userDomain.User) error
}

// UserUseCase defines the interface for user management business logic.
type UserUseCase interface {
	// Create validates and registers a new user. A zero score is replaced
	// with the configured default before validation.
	Create(ctx context.Context, user *userDomain.User) error
	Get(ctx context.Context, userID uuid.UUID) (*userDomain.User, error)
	GetByName(ctx context.Context, name string) (*userDomain.User, error)
	// Update validates and persists changes to an existing user. A missing
	// user is an error, never an implicit insert.
	Update(ctx context.Context, user *userDomain.User) error
}
