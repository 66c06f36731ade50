// Package repository provides data persistence implementations for placed
// bids.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	"github.com/Elena0909/AuctionsProduced/internal/database"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// PostgreSQLAuctionRepository handles bid persistence for PostgreSQL.
type PostgreSQLAuctionRepository struct {
	db *sql.DB
}

// NewPostgreSQLAuctionRepository creates a new PostgreSQLAuctionRepository.
func NewPostgreSQLAuctionRepository(db *sql.DB) *PostgreSQLAuctionRepository {
	return &PostgreSQLAuctionRepository{
		db: db,
	}
}

const auctionColumns = `a.id, a.date, a.currency, a.price, a.created_at, a.updated_at,
			  b.id, b.name, b.role, b.score, b.created_at, b.updated_at,
			  a.product_id`

const auctionJoin = `FROM auctions a
			  JOIN users b ON b.id = a.bidder_id`

// scanPostgreSQLAuction scans one joined bid row. The bidder comes back
// hydrated; the listing is attached by ID only.
func scanPostgreSQLAuction(scan func(dest ...any) error) (*domain.Auction, error) {
	var auction domain.Auction
	var bidder userDomain.User
	var product catalogDomain.Product

	err := scan(
		&auction.ID, &auction.Date, &auction.Currency, &auction.Price, &auction.CreatedAt, &auction.UpdatedAt,
		&bidder.ID, &bidder.Name, &bidder.Role, &bidder.Score, &bidder.CreatedAt, &bidder.UpdatedAt,
		&product.ID,
	)
	if err != nil {
		return nil, err
	}

	auction.Bidder = &bidder
	auction.Product = &product
	return &auction, nil
}

// Create inserts a new bid.
func (r *PostgreSQLAuctionRepository) Create(ctx context.Context, auction *domain.Auction) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO auctions (id, date, bidder_id, product_id, currency, price,
			  created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		auction.ID,
		auction.Date,
		auction.Bidder.ID,
		auction.Product.ID,
		auction.Currency,
		auction.Price,
		auction.CreatedAt,
		auction.UpdatedAt,
	)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return domain.ErrAuctionAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create auction")
	}
	return nil
}

// Get retrieves a bid by ID.
func (r *PostgreSQLAuctionRepository) Get(ctx context.Context, auctionID uuid.UUID) (*domain.Auction, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + auctionColumns + ` ` + auctionJoin + ` WHERE a.id = $1`

	auction, err := scanPostgreSQLAuction(querier.QueryRowContext(ctx, query, auctionID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get auction by id")
	}

	return auction, nil
}

// ListByProduct retrieves every bid placed on the given listing, most recent
// first.
func (r *PostgreSQLAuctionRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Auction, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + auctionColumns + ` ` + auctionJoin + `
			  WHERE a.product_id = $1 ORDER BY a.date DESC`

	rows, err := querier.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list auctions by product")
	}
	defer func() { _ = rows.Close() }()

	var auctions []*domain.Auction
	for rows.Next() {
		auction, err := scanPostgreSQLAuction(rows.Scan)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan auction")
		}
		auctions = append(auctions, auction)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate auctions")
	}

	return auctions, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
