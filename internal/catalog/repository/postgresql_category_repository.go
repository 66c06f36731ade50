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

// PostgreSQLCategoryRepository handles category persistence for PostgreSQL.
type PostgreSQLCategoryRepository struct {
	db *sql.DB
}

// NewPostgreSQLCategoryRepository creates a new PostgreSQLCategoryRepository.
func NewPostgreSQLCategoryRepository(db *sql.DB) *PostgreSQLCategoryRepository {
	return &PostgreSQLCategoryRepository{
		db: db,
	}
}

// Create inserts a new category.
func (r *PostgreSQLCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO categories (id, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := querier.ExecContext(
		ctx,
		query,
		category.ID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrCategoryAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

// Get retrieves a category by ID.
func (r *PostgreSQLCategoryRepository) Get(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories WHERE id = $1`

	var category domain.Category
	err := querier.QueryRowContext(ctx, query, categoryID).Scan(
		&category.ID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category by id")
	}

	return &category, nil
}

// GetByName retrieves a category by name.
func (r *PostgreSQLCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, created_at, updated_at FROM categories WHERE name = $1`

	var category domain.Category
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&category.ID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get category by name")
	}

	return &category, nil
}

// AddLink records a parent-child edge between two categories. Re-adding an
// existing edge is a no-op.
func (r *PostgreSQLCategoryRepository) AddLink(ctx context.Context, parentID, childID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO category_links (parent_id, child_id)
			  VALUES ($1, $2) ON CONFLICT DO NOTHING`

	_, err := querier.ExecContext(ctx, query, parentID, childID)
	if err != nil {
		return apperrors.Wrap(err, "failed to link categories")
	}
	return nil
}

// GetChildren retrieves the direct child categories of the given category.
func (r *PostgreSQLCategoryRepository) GetChildren(ctx context.Context, categoryID uuid.UUID) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT c.id, c.name, c.created_at, c.updated_at
			  FROM categories c
			  JOIN category_links l ON l.child_id = c.id
			  WHERE l.parent_id = $1
			  ORDER BY c.name`

	rows, err := querier.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list child categories")
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// GetParents retrieves the direct parent categories of the given category.
func (r *PostgreSQLCategoryRepository) GetParents(ctx context.Context, categoryID uuid.UUID) ([]*domain.Category, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT c.id, c.name, c.created_at, c.updated_at
			  FROM categories c
			  JOIN category_links l ON l.parent_id = c.id
			  WHERE l.child_id = $1
			  ORDER BY c.name`

	rows, err := querier.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list parent categories")
	}
	defer func() { _ = rows.Close() }()

	var categories []*domain.Category
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan category")
		}
		categories = append(categories, &category)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate categories")
	}

	return categories, nil
}

// GetProducts retrieves every product filed under the given category.
func (r *PostgreSQLCategoryRepository) GetProducts(ctx context.Context, categoryID uuid.UUID) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + `
			  WHERE p.category_id = $1 ORDER BY p.created_at`

	rows, err := querier.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products by category")
	}
	defer func() { _ = rows.Close() }()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanPostgreSQLProduct(rows.Scan)
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
