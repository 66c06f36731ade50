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

// MySQLAuctionRepository handles bid persistence for MySQL.
type MySQLAuctionRepository struct {
	db *sql.DB
}

// NewMySQLAuctionRepository creates a new MySQLAuctionRepository.
func NewMySQLAuctionRepository(db *sql.DB) *MySQLAuctionRepository {
	return &MySQLAuctionRepository{
		db: db,
	}
}

func scanMySQLAuction(scan func(dest ...any) error) (*domain.Auction, error) {
	var auction domain.Auction
	var bidder userDomain.User
	var product catalogDomain.Product
	var auctionIDBytes, bidderIDBytes, productIDBytes []byte

	err := scan(
		&auctionIDBytes, &auction.Date, &auction.Currency, &auction.Price, &auction.CreatedAt, &auction.UpdatedAt,
		&bidderIDBytes, &bidder.Name, &bidder.Role, &bidder.Score, &bidder.CreatedAt, &bidder.UpdatedAt,
		&productIDBytes,
	)
	if err != nil {
		return nil, err
	}

	if err := auction.ID.UnmarshalBinary(auctionIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse auction id")
	}
	if err := bidder.ID.UnmarshalBinary(bidderIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse bidder id")
	}
	if err := product.ID.UnmarshalBinary(productIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to parse product id")
	}

	auction.Bidder = &bidder
	auction.Product = &product
	return &auction, nil
}

// Create inserts a new bid.
func (r *MySQLAuctionRepository) Create(ctx context.Context, auction *domain.Auction) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO auctions (id, date, bidder_id, product_id, currency, price,
			  created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	auctionIDBytes, err := auction.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal auction id")
	}
	bidderIDBytes, err := auction.Bidder.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal bidder id")
	}
	productIDBytes, err := auction.Product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal product id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		auctionIDBytes,
		auction.Date,
		bidderIDBytes,
		productIDBytes,
		auction.Currency,
		auction.Price,
		auction.CreatedAt,
		auction.UpdatedAt,
	)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return domain.ErrAuctionAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create auction")
	}
	return nil
}

// Get retrieves a bid by ID.
func (r *MySQLAuctionRepository) Get(ctx context.Context, auctionID uuid.UUID) (*domain.Auction, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + auctionColumns + ` ` + auctionJoin + ` WHERE a.id = ?`

	idBytes, err := auctionID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal auction id")
	}

	auction, err := scanMySQLAuction(querier.QueryRowContext(ctx, query, idBytes).Scan)
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
func (r *MySQLAuctionRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*domain.Auction, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + auctionColumns + ` ` + auctionJoin + `
			  WHERE a.product_id = ? ORDER BY a.date DESC`

	idBytes, err := productID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal product id")
	}

	rows, err := querier.QueryContext(ctx, query, idBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list auctions by product")
	}
	defer func() { _ = rows.Close() }()

	var auctions []*domain.Auction
	for rows.Next() {
		auction, err := scanMySQLAuction(rows.Scan)
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

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation.
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
