package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/errors"
)

// Category groups products. Parents and Children link categories into a DAG;
// Products holds the listings filed directly under this category. A zero ID
// marks an unsaved category.
type Category struct {
	ID        uuid.UUID
	Name      string
	Parents   []*Category
	Children  []*Category
	Products  []*Product
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for category operations.
var (
	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.Wrap(errors.ErrNotFound, "category not found")

	// ErrCategoryAlreadyExists indicates a category with the same name already exists.
	ErrCategoryAlreadyExists = errors.Wrap(errors.ErrConflict, "category already exists")

	// ErrCategoryCycle indicates the category graph contains a cycle.
	ErrCategoryCycle = errors.Wrap(errors.ErrInvalidInput, "category graph contains a cycle")
)
