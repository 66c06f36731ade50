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

// MySQLUserRepository handles user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, name, role, score, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		uuidBytes,
		user.Name,
		user.Role,
		user.Score,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by ID.
func (r *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, role, score, created_at, updated_at
			  FROM users WHERE id = ?`

	uuidBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes, &user.Name, &user.Role, &user.Score, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &user, nil
}

// GetByName retrieves a user by their unique name.
func (r *MySQLUserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, role, score, created_at, updated_at
			  FROM users WHERE name = ?`

	var idBytes []byte
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&idBytes, &user.Name, &user.Role, &user.Score, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by name")
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &user, nil
}

// Update persists changes to an existing user.
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET name = ?, role = ?, score = ?, updated_at = ?
			  WHERE id = ?`

	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Name,
		user.Role,
		user.Score,
		user.UpdatedAt,
		uuidBytes,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
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

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
