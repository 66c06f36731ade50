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

// MySQLProductRepository handles product persistence for MySQL.
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository.
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{
		db: db,
	}
}

// scanMySQLProduct scans one joined product row. IDs are stored as
// BINARY(16) and decoded back into uuid values.
func scanMySQLProduct(scan func(dest ...any) error) (*domain.Product, error) {
	var product domain.Product
	var owner userDomain.User
	var category domain.Category
	var productIDBytes, ownerIDBytes, categoryIDBytes []byte

	err := scan(
		&productIDBytes, &product.Name, &product.Description, &product.StartTime, &product.EndTime,
		&product.Price, &product.Currency, &product.Active, &product.CreatedAt, &product.UpdatedAt,
		&ownerIDBytes, &owner.Name, &owner.Role, &owner.Score, &owner.CreatedAt, &owner.UpdatedAt,
		&categoryIDBytes, &category.Name, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := product.ID.UnmarshalBinary(productIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse product id")
	}
	if err := owner.ID.UnmarshalBinary(ownerIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse owner id")
	}
	if err := category.ID.UnmarshalBinary(categoryIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse category id")
	}

	product.Owner = &owner
	product.Category = &category
	return &product, nil
}

// Create inserts a new product.
func (r *MySQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, name, description, owner_id, category_id, start_time,
			  end_time, price, currency, active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	productIDBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}
	ownerIDBytes, err := product.Owner.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal owner id")
	}
	categoryIDBytes, err := product.Category.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal category id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		productIDBytes,
		product.Name,
		product.Description,
		ownerIDBytes,
		categoryIDBytes,
		product.StartTime,
		product.EndTime,
		product.Price,
		product.Currency,
		product.Active,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Get retrieves a product by ID with its owner and category.
func (r *MySQLProductRepository) Get(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + ` WHERE p.id = ?`

	productIDBytes, err := productID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal product id")
	}

	product, err := scanMySQLProduct(querier.QueryRowContext(ctx, query, productIDBytes).Scan)
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
func (r *MySQLProductRepository) GetForUpdate(ctx context.Context, productID uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + ` WHERE p.id = ? FOR UPDATE`

	productIDBytes, err := productID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal product id")
	}

	product, err := scanMySQLProduct(querier.QueryRowContext(ctx, query, productIDBytes).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product for update")
	}

	return product, nil
}

// GetByName retrieves a product by name.
func (r *MySQLProductRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + ` WHERE p.name = ? LIMIT 1`

	product, err := scanMySQLProduct(querier.QueryRowContext(ctx, query, name).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product by name")
	}

	return product, nil
}

// ListByOwner retrieves every product owned by the given user.
func (r *MySQLProductRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + productColumns + ` ` + productJoin + `
			  WHERE p.owner_id = ? ORDER BY p.created_at`

	ownerIDBytes, err := ownerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal owner id")
	}

	rows, err := querier.QueryContext(ctx, query, ownerIDBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products by owner")
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

// Update persists changes to an existing product.
func (r *MySQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products
			  SET name = ?, description = ?, start_time = ?, end_time = ?,
			  price = ?, currency = ?, active = ?, updated_at = ?
			  WHERE id = ?`

	productIDBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

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
		productIDBytes,
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

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
