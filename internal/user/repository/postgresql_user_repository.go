// Package repository provides data persistence implementations for user entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/database"
	"github.com/Elena0909/AuctionsProduced/internal/user/domain"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

// PostgreSQLUserRepository handles user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Create inserts a new user.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, name, role, score, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Role,
		user.Score,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by ID.
func (r *PostgreSQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, role, score, created_at, updated_at
			  FROM users WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Name, &user.Role, &user.Score, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByName retrieves a user by their unique name.
func (r *PostgreSQLUserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, role, score, created_at, updated_at
			  FROM users WHERE name = $1`

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&user.ID, &user.Name, &user.Role, &user.Score, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by name")
	}

	return &user, nil
}

// Update persists changes to an existing user.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET name = $1, role = $2, score = $3, updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Name,
		user.Role,
		user.Score,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check updated rows")
	}
	if rows == 0 {
		return domain.ErrUserNotFound
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
