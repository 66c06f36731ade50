// Package repository provides data persistence implementations for the
// catalog: product listings and the category graph.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/database"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

// PostgreSQLProductRepository handles product persistence for PostgreSQL.
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// NewPostgreSQLProductRepository creates a new PostgreSQLProductRepository.
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{
		db: db,
	}
}

// productColumns selects a product joined with its owner and category.
const productColumns = `p.id, p.name, p.description, p.start_time, p.end_time,
			  p.price, p.currency, p.active, p.created_at, p.updated_at,
			  o.id, o.name, o.role, o.score, o.created_at, o.updated_at,
			  c.id, c.name, c.created_at, c.updated_at`

const productJoin = `FROM products p
			  JOIN users o ON o.id = p.owner_id
			  JOIN categories c ON c.id = p.category_id`

// scanPostgreSQLProduct scans one joined product row.
func scanPostgreSQLProduct(scan func(dest ...any) error) (*domain.Product, error) {
	var product domain.Product
	var owner userDomain.User
	var category domain.Category

	err := scan(
		&product.ID, &product.Name, &product.Description, &product.StartTime, &product.EndTime,
		&product.Price, &product.Currency, &product.Active, &product.CreatedAt, &product.UpdatedAt,
		&owner.ID, &owner.Name, &owner.Role, &owner.Score, &owner.CreatedAt, &owner.UpdatedAt,
		&category.ID, &category.Name, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Owner = &owner
	product.Category = &category
	return &product, nil
}

// Create inserts a new product.
func (r *PostgreSQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, name, description, owner_id, category_id, start_time,
			  end_time, price, currency, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := querier.ExecContext(
		ctx,
		query,
		product.ID,
		product.Name,
		product.Description,
		product.Owner.ID,
		product.Category.ID,
		product.StartTime,
		product.EndTime,
		product.Price,
		product.Currency,
		product.Active,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Get retrieves a product by ID with its owner and category.
func (r *PostgreSQLProductRepository) Get(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + ` WHERE p.id = $1`

	product, err := scanPostgreSQLProduct(querier.QueryRowContext(ctx, query, productID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by id")
	}

	return product, nil
}

// GetForUpdate retrieves a product by ID holding a row lock until the
// surrounding transaction ends.
func (r *PostgreSQLProductRepository) GetForUpdate(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + ` WHERE p.id = $1 FOR UPDATE OF p`

	product, err := scanPostgreSQLProduct(querier.QueryRowContext(ctx, query, productID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product for update")
	}

	return product, nil
}

// GetByName retrieves a product by name.
func (r *PostgreSQLProductRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + ` WHERE p.name = $1 LIMIT 1`

	product, err := scanPostgreSQLProduct(querier.QueryRowContext(ctx, query, name).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by name")
	}

	return product, nil
}

// ListByOwner retrieves every product owned by the given user.
func (r *PostgreSQLProductRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + `
			  WHERE p.owner_id = $1 ORDER BY p.created_at`

	rows, err := querier.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products by owner")
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

// Update persists changes to an existing product.
func (r *PostgreSQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products
			  SET name = $1, description = $2, start_time = $3, end_time = $4,
			  price = $5, currency = $6, active = $7, updated_at = $8
			  WHERE id = $9`

	result, err := querier.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.StartTime,
		product.EndTime,
		product.Price,
		product.Currency,
		product.Active,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update product")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if rows == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
