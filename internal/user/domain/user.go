// Package domain defines the user entity and its validation rules.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/errors"
)

// Role determines what a user is allowed to do in the marketplace.
type Role string

const (
	// RoleBidder may place bids on other users' products.
	RoleBidder Role = "bidder"

	// RoleOfferer may list products and manage their own listings.
	RoleOfferer Role = "offerer"
)

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleBidder || r == RoleOfferer
}

// User represents a marketplace participant. A zero ID marks an unsaved user.
type User struct {
	ID        uuid.UUID
	Name      string
	Role      Role
	Score     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates an unsaved user with the configured default score.
func NewUser(name string, role Role, defaultScore float64) *User {
	return &User{
		Name:  name,
		Role:  role,
		Score: defaultScore,
	}
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same name already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
