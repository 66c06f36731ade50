// Package usecase implements the marketplace orchestrator: the user-facing
// operations that combine authorization, validation and state transitions
// across users, listings, categories and bids. Role and ownership checks
// live only here; the feature use cases below it stay authorization-free.
package usecase

import (
	"context"

	"github.com/google/uuid"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// MarketplaceUseCase defines the user-facing marketplace operations.
type MarketplaceUseCase interface {
	// ListForBid publishes a product for bidding under the given category.
	// The offerer and the category are matched by name and created when
	// absent. Offerers at their active-listing limit are rejected.
	ListForBid(
		ctx context.Context,
		offerer *userDomain.User,
		product *catalogDomain.Product,
		category *catalogDomain.Category,
	) error

	// Browse returns the named category's immediate children and the
	// products filed directly under it.
	Browse(ctx context.Context, categoryName string) ([]*catalogDomain.Category, []*catalogDomain.Product, error)

	// CloseListing takes a product off the market. Only the owning offerer
	// may close it.
	CloseListing(ctx context.Context, userID, productID uuid.UUID) (*catalogDomain.Product, error)

	// EditListing updates a listing's name, description, bidding window,
	// currency and price. Only the owning offerer may edit it.
	EditListing(
		ctx context.Context,
		userID, productID uuid.UUID,
		updated *catalogDomain.Product,
	) (*catalogDomain.Product, error)

	// PlaceBid places a bid on a live listing. Bids on the same product
	// serialize on a row lock so each one is validated against the
	// persisted current price; a successful bid becomes the new price.
	PlaceBid(ctx context.Context, userID, productID uuid.UUID, price float64) (*biddingDomain.Auction, error)
}
