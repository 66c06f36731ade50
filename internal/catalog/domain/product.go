// Package domain defines the catalog entities (categories and products) and
// their validation rules.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// Product is an item offered for time-boxed bidding. Price is the current
// price: the starting price until the first accepted bid, then the highest
// accepted bid. A zero ID marks an unsaved product.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Owner       *userDomain.User
	Category    *Category
	StartTime   time.Time
	EndTime     time.Time
	Price       float64
	Currency    Currency
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WithinWindow reports whether now falls inside the bidding window
// [StartTime, EndTime). Pure; does not inspect the Active flag.
func (p *Product) WithinWindow(now time.Time) bool {
	return !now.Before(p.StartTime) && now.Before(p.EndTime)
}

// CheckAndExpire reports whether the product is biddable at the given time.
// This is deliberately not a pure query: when the product is still flagged
// active but the window has elapsed, the Active flag is flipped to false
// before returning. An already-inactive product short-circuits to false
// without inspecting dates, so repeated calls perform no further mutation.
// Callers that need the pure predicate should use WithinWindow.
func (p *Product) CheckAndExpire(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.WithinWindow(now) {
		return true
	}
	p.Active = false
	return false
}

// Domain-specific errors for product operations.
var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.Wrap(errors.ErrNotFound, "product not found")

	// ErrProductAlreadyExists indicates a product with the same name already exists.
	ErrProductAlreadyExists = errors.Wrap(errors.ErrConflict, "product already exists")

	// ErrProductDuplicate indicates the description is a near-duplicate of
	// another listing by the same owner.
	ErrProductDuplicate = errors.Wrap(errors.ErrInvalidInput, "product description is too similar to an existing listing")
)
