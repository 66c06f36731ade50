package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/database"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

// MySQLCategoryRepository handles category persistence for MySQL.
type MySQLCategoryRepository struct {
	db *sql.DB
}

// NewMySQLCategoryRepository creates a new MySQLCategoryRepository.
func NewMySQLCategoryRepository(db *sql.DB) *MySQLCategoryRepository {
	return &MySQLCategoryRepository{
		db: db,
	}
}

func scanMySQLCategory(scan func(dest ...any) error) (*domain.Category, error) {
	var category domain.Category
	var idBytes []byte

	err := scan(&idBytes, &category.Name, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := category.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse category id")
	}
	return &category, nil
}

// Create inserts a new category.
func (r *MySQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (id, name, created_at, updated_at)
			  VALUES (?, ?, ?, ?)`

	idBytes, err := category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal category id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		idBytes,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// Get retrieves a category by ID.
func (r *MySQLCategoryRepository) Get(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = ?`

	idBytes, err := categoryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal category id")
	}

	category, err := scanMySQLCategory(querier.QueryRowContext(ctx, query, idBytes).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category by id")
	}

	return category, nil
}

// GetByName retrieves a category by name.
func (r *MySQLCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories WHERE name = ?`

	category, err := scanMySQLCategory(querier.QueryRowContext(ctx, query, name).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category by name")
	}

	return category, nil
}

// AddLink records a parent-child edge between two categories. Re-adding an
// existing edge is a no-op.
func (r *MySQLCategoryRepository) AddLink(ctx context.Context, parentID, childID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO category_links (parent_id, child_id) VALUES (?, ?)`

	parentIDBytes, err := parentID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal parent id")
	}
	childIDBytes, err := childID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal child id")
	}

	_, err = querier.ExecContext(ctx, query, parentIDBytes, childIDBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to link categories")
	}
	return nil
}

// GetChildren retrieves the direct child categories of the given category.
func (r *MySQLCategoryRepository) GetChildren(ctx context.Context, categoryID uuid.UUID) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT c.id, c.name, c.created_at, c.updated_at
			  FROM categories c
			  JOIN category_links l ON l.child_id = c.id
			  WHERE l.parent_id = ?
			  ORDER BY c.name`

	idBytes, err := categoryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal category id")
	}

	rows, err := querier.QueryContext(ctx, query, idBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list child categories")
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanMySQLCategory(rows.Scan)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// GetParents retrieves the direct parent categories of the given category.
func (r *MySQLCategoryRepository) GetParents(ctx context.Context, categoryID uuid.UUID) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT c.id, c.name, c.created_at, c.updated_at
			  FROM categories c
			  JOIN category_links l ON l.parent_id = c.id
			  WHERE l.child_id = ?
			  ORDER BY c.name`

	idBytes, err := categoryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal category id")
	}

	rows, err := querier.QueryContext(ctx, query, idBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list parent categories")
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanMySQLCategory(rows.Scan)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// GetProducts retrieves every product filed under the given category.
func (r *MySQLCategoryRepository) GetProducts(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + `
			  WHERE p.category_id = ? ORDER BY p.created_at`

	idBytes, err := categoryID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal category id")
	}

	rows, err := querier.QueryContext(ctx, query, idBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products by category")
	}
	defer func() { _ = rows.Close() }()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanMySQLProduct(rows.Scan)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}

	return products, nil
}
