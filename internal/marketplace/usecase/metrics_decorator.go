package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/metrics"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// marketplaceUseCaseWithMetrics decorates MarketplaceUseCase with metrics instrumentation.
type marketplaceUseCaseWithMetrics struct {
	next    MarketplaceUseCase
	metrics metrics.BusinessMetrics
}

// NewMarketplaceUseCaseWithMetrics wraps a MarketplaceUseCase with metrics recording.
func NewMarketplaceUseCaseWithMetrics(useCase MarketplaceUseCase, m metrics.BusinessMetrics) MarketplaceUseCase {
	return &marketplaceUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (m *marketplaceUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.metrics.RecordOperation(ctx, "marketplace", operation, status)
	m.metrics.RecordDuration(ctx, "marketplace", operation, time.Since(start), status)
}

// ListForBid records metrics for listing operations.
func (m *marketplaceUseCaseWithMetrics) ListForBid(
	ctx context.Context,
	offerer *userDomain.User,
	product *catalogDomain.Product,
	category *catalogDomain.Category,
) error {
	start := time.Now()
	err := m.next.ListForBid(ctx, offerer, product, category)
	m.record(ctx, "list_for_bid", start, err)
	return err
}

// Browse records metrics for category browsing operations.
func (m *marketplaceUseCaseWithMetrics) Browse(
	ctx context.Context,
	categoryName string,
) ([]*catalogDomain.Category, []*catalogDomain.Product, error) {
	start := time.Now()
	children, products, err := m.next.Browse(ctx, categoryName)
	m.record(ctx, "browse", start, err)
	return children, products, err
}

// CloseListing records metrics for listing closure operations.
func (m *marketplaceUseCaseWithMetrics) CloseListing(
	ctx context.Context,
	userID, productID uuid.UUID,
) (*catalogDomain.Product, error) {
	start := time.Now()
	product, err := m.next.CloseListing(ctx, userID, productID)
	m.record(ctx, "close_listing", start, err)
	return product, err
}

// EditListing records metrics for listing edit operations.
func (m *marketplaceUseCaseWithMetrics) EditListing(
	ctx context.Context,
	userID, productID uuid.UUID,
	updated *catalogDomain.Product,
) (*catalogDomain.Product, error) {
	start := time.Now()
	product, err := m.next.EditListing(ctx, userID, productID, updated)
	m.record(ctx, "edit_listing", start, err)
	return product, err
}

// PlaceBid records metrics for bid placement operations.
func (m *marketplaceUseCaseWithMetrics) PlaceBid(
	ctx context.Context,
	userID, productID uuid.UUID,
	price float64,
) (*biddingDomain.Auction, error) {
	start := time.Now()
	auction, err := m.next.PlaceBid(ctx, userID, productID, price)
	m.record(ctx, "place_bid", start, err)
	return auction, err
}
