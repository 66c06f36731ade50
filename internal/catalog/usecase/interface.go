// Package usecase defines the interfaces and implementations for catalog
// management: product listings and the category graph they are filed under.
package usecase

import (
	"context"

	"github.com/google/uuid"

	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *catalogDomain.Product) error
	Get(ctx context.Context, productID uuid.UUID) (*catalogDomain.Product, error)
	// GetForUpdate fetches a product under a row lock. It must run inside a
	// transaction started by database.TxManager.
	GetForUpdate(ctx context.Context, productID uuid.UUID) (*catalogDomain.Product, error)
	GetByName(ctx context.Context, name string) (*catalogDomain.Product, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*catalogDomain.Product, error)
	Update(ctx context.Context, product *catalogDomain.Product) error
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *catalogDomain.Category) error
	Get(ctx context.Context, categoryID uuid.UUID) (*catalogDomain.Category, error)
	GetByName(ctx context.Context, name string) (*catalogDomain.Category, error)
	// AddLink records a parent-child edge. Recording the same edge twice is
	// not an error.
	AddLink(ctx context.Context, parentID, childID uuid.UUID) error
	GetChildren(ctx context.Context, categoryID uuid.UUID) ([]*catalogDomain.Category, error)
	GetParents(ctx context.Context, categoryID uuid.UUID) ([]*catalogDomain.Category, error)
	GetProducts(ctx context.Context, categoryID uuid.UUID) ([]*catalogDomain.Product, error)
}

// ProductUseCase defines the interface for product listing business logic.
type ProductUseCase interface {
	// Create validates a new listing, rejects near-duplicates of the owner's
	// existing listings and persists it.
	Create(ctx context.Context, product *catalogDomain.Product) error
	Get(ctx context.Context, productID uuid.UUID) (*catalogDomain.Product, error)
	// GetForUpdate fetches a product under a row lock; callers must already
	// be inside a transaction.
	GetForUpdate(ctx context.Context, productID uuid.UUID) (*catalogDomain.Product, error)
	GetByName(ctx context.Context, name string) (*catalogDomain.Product, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*catalogDomain.Product, error)
	// CountActive reports how many of the owner's listings are currently
	// biddable. Expiry is evaluated in memory only; nothing is persisted.
	CountActive(ctx context.Context, ownerID uuid.UUID) (int, error)
	// Update validates and persists changes to an existing listing. A missing
	// listing is an error, never an implicit insert.
	Update(ctx context.Context, product *catalogDomain.Product) error
}

// CategoryUseCase defines the interface for category graph business logic.
type CategoryUseCase interface {
	// Create validates the category graph and persists it in one transaction:
	// unsaved parents, children and directly-filed products are inserted,
	// while an already-known name adopts the existing row instead of
	// duplicating it.
	Create(ctx context.Context, category *catalogDomain.Category) error
	Get(ctx context.Context, categoryID uuid.UUID) (*catalogDomain.Category, error)
	GetByName(ctx context.Context, name string) (*catalogDomain.Category, error)
	GetChildren(ctx context.Context, name string) ([]*catalogDomain.Category, error)
	GetProducts(ctx context.Context, name string) ([]*catalogDomain.Product, error)
}
