// Package usecase defines the interfaces and implementations for bid
// management. Bid admissibility itself lives in the domain validator; the
// use case wires it to persistence.
package usecase

import (
	"context"

	"github.com/google/uuid"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
)

// AuctionRepository defines the interface for bid persistence operations.
type AuctionRepository interface {
	Create(ctx context.Context, auction *biddingDomain.Auction) error
	Get(ctx context.Context, auctionID uuid.UUID) (*biddingDomain.Auction, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*biddingDomain.Auction, error)
}

// AuctionUseCase defines the interface for bid business logic.
type AuctionUseCase interface {
	// Create validates the bid against the listing it targets and persists
	// it. The product carried by the auction is not persisted here; the
	// caller owns its lifecycle.
	Create(ctx context.Context, auction *biddingDomain.Auction) error
	Get(ctx context.Context, auctionID uuid.UUID) (*biddingDomain.Auction, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*biddingDomain.Auction, error)
}
