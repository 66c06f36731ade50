package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	"github.com/Elena0909/AuctionsProduced/internal/clock"
	"github.com/Elena0909/AuctionsProduced/internal/database"
)

// auctionUseCase implements the AuctionUseCase interface.
type auctionUseCase struct {
	auctionRepo  AuctionRepository
	validator    *biddingDomain.Validator
	clock        clock.Clock
	queryTimeout time.Duration
	readRetries  int
	readBackoff  time.Duration
}

// NewAuctionUseCase creates a new auction use case instance with the provided dependencies.
func NewAuctionUseCase(
	auctionRepo AuctionRepository,
	validator *biddingDomain.Validator,
	clk clock.Clock,
	queryTimeout time.Duration,
	readRetries int,
	readBackoff time.Duration,
) AuctionUseCase {
	return &auctionUseCase{
		auctionRepo:  auctionRepo,
		validator:    validator,
		clock:        clk,
		queryTimeout: queryTimeout,
		readRetries:  readRetries,
		readBackoff:  readBackoff,
	}
}

// Create validates the bid and persists it.
func (u *auctionUseCase) Create(ctx context.Context, auction *biddingDomain.Auction) error {
	if err := u.validator.Validate(auction); err != nil {
		return err
	}

	now := u.clock.Now()
	auction.ID = uuid.Must(uuid.NewV7())
	auction.CreatedAt = now
	auction.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()
	return u.auctionRepo.Create(ctx, auction)
}

// Get retrieves a bid record by ID.
func (u *auctionUseCase) Get(ctx context.Context, auctionID uuid.UUID) (*biddingDomain.Auction, error) {
	var auction *biddingDomain.Auction
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		auction, err = u.auctionRepo.Get(ctx, auctionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return auction, nil
}

// ListByProduct retrieves every bid placed on the given product, most recent
// first.
func (u *auctionUseCase) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*biddingDomain.Auction, error) {
	var auctions []*biddingDomain.Auction
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		auctions, err = u.auctionRepo.ListByProduct(ctx, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return auctions, nil
}
