package usecase

import (
	"context"

	"github.com/google/uuid"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	biddingUseCase "github.com/Elena0909/AuctionsProduced/internal/bidding/usecase"
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	catalogUseCase "github.com/Elena0909/AuctionsProduced/internal/catalog/usecase"
	"github.com/Elena0909/AuctionsProduced/internal/clock"
	"github.com/Elena0909/AuctionsProduced/internal/database"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
	userUseCase "github.com/Elena0909/AuctionsProduced/internal/user/usecase"
)

// marketplaceUseCase implements the MarketplaceUseCase interface.
type marketplaceUseCase struct {
	txManager  database.TxManager
	users      userUseCase.UserUseCase
	products   catalogUseCase.ProductUseCase
	categories catalogUseCase.CategoryUseCase
	auctions   biddingUseCase.AuctionUseCase
	clock      clock.Clock
	maxActive  int
}

// NewMarketplaceUseCase creates a new marketplace use case instance with the provided dependencies.
func NewMarketplaceUseCase(
	txManager database.TxManager,
	users userUseCase.UserUseCase,
	products catalogUseCase.ProductUseCase,
	categories catalogUseCase.CategoryUseCase,
	auctions biddingUseCase.AuctionUseCase,
	clk clock.Clock,
	maxActive int,
) MarketplaceUseCase {
	return &marketplaceUseCase{
		txManager:  txManager,
		users:      users,
		products:   products,
		categories: categories,
		auctions:   auctions,
		clock:      clk,
		maxActive:  maxActive,
	}
}

// ListForBid publishes a product for bidding under the given category.
func (m *marketplaceUseCase) ListForBid(
	ctx context.Context,
	offerer *userDomain.User,
	product *catalogDomain.Product,
	category *catalogDomain.Category,
) error {
	if offerer == nil || product == nil || category == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "offerer, product and category are required")
	}
	if offerer.Role != userDomain.RoleOfferer {
		return apperrors.Wrap(apperrors.ErrForbidden, "only offerers may list products")
	}

	if err := m.ensureUser(ctx, offerer); err != nil {
		return err
	}
	// The stored profile wins over the request payload.
	if offerer.Role != userDomain.RoleOfferer {
		return apperrors.Wrap(apperrors.ErrForbidden, "only offerers may list products")
	}

	count, err := m.products.CountActive(ctx, offerer.ID)
	if err != nil {
		return err
	}
	if count >= m.maxActive {
		return apperrors.Wrapf(apperrors.ErrForbidden, "active listing limit of %d reached", m.maxActive)
	}

	if err := m.ensureCategory(ctx, category); err != nil {
		return err
	}

	product.Owner = offerer
	product.Category = category
	return m.products.Create(ctx, product)
}

// ensureUser resolves the user by name, creating them when absent. An
// existing profile replaces the request payload in place.
func (m *marketplaceUseCase) ensureUser(ctx context.Context, user *userDomain.User) error {
	existing, err := m.users.GetByName(ctx, user.Name)
	switch {
	case err == nil:
		*user = *existing
		return nil
	case apperrors.Is(err, apperrors.ErrNotFound):
		return m.users.Create(ctx, user)
	default:
		return err
	}
}

// ensureCategory resolves the category by name, creating it when absent.
func (m *marketplaceUseCase) ensureCategory(ctx context.Context, category *catalogDomain.Category) error {
	existing, err := m.categories.GetByName(ctx, category.Name)
	switch {
	case err == nil:
		*category = *existing
		return nil
	case apperrors.Is(err, apperrors.ErrNotFound):
		return m.categories.Create(ctx, category)
	default:
		return err
	}
}

// Browse returns the named category's immediate children and the products
// filed directly under it.
func (m *marketplaceUseCase) Browse(
	ctx context.Context,
	categoryName string,
) ([]*catalogDomain.Category, []*catalogDomain.Product, error) {
	children, err := m.categories.GetChildren(ctx, categoryName)
	if err != nil {
		return nil, nil, err
	}
	products, err := m.categories.GetProducts(ctx, categoryName)
	if err != nil {
		return nil, nil, err
	}
	return children, products, nil
}

// CloseListing takes a product off the market.
func (m *marketplaceUseCase) CloseListing(
	ctx context.Context,
	userID, productID uuid.UUID,
) (*catalogDomain.Product, error) {
	user, err := m.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	product, err := m.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := m.authorizeOwner(user, product); err != nil {
		return nil, err
	}

	product.Active = false
	if err := m.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// EditListing updates a listing's name, description, bidding window,
// currency and price.
func (m *marketplaceUseCase) EditListing(
	ctx context.Context,
	userID, productID uuid.UUID,
	updated *catalogDomain.Product,
) (*catalogDomain.Product, error) {
	if updated == nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "updated product is required")
	}

	user, err := m.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	product, err := m.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := m.authorizeOwner(user, product); err != nil {
		return nil, err
	}

	product.Name = updated.Name
	product.Description = updated.Description
	product.StartTime = updated.StartTime
	product.EndTime = updated.EndTime
	product.Currency = updated.Currency
	product.Price = updated.Price

	if err := m.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// authorizeOwner requires the user to be the offerer who owns the product.
func (m *marketplaceUseCase) authorizeOwner(user *userDomain.User, product *catalogDomain.Product) error {
	if user.Role != userDomain.RoleOfferer {
		return apperrors.Wrap(apperrors.ErrForbidden, "only offerers may manage listings")
	}
	if product.Owner == nil || product.Owner.ID != user.ID {
		return apperrors.Wrap(apperrors.ErrForbidden, "listing belongs to another user")
	}
	return nil
}

// PlaceBid places a bid on a live listing. The product is fetched under a
// row lock inside one transaction, so concurrent bids on the same product
// serialize and each one is validated against the persisted current price.
func (m *marketplaceUseCase) PlaceBid(
	ctx context.Context,
	userID, productID uuid.UUID,
	price float64,
) (*biddingDomain.Auction, error) {
	user, err := m.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != userDomain.RoleBidder {
		return nil, apperrors.Wrap(apperrors.ErrForbidden, "only bidders may place bids")
	}

	var auction *biddingDomain.Auction
	var bidErr error
	err = m.txManager.WithTx(ctx, func(txCtx context.Context) error {
		product, err := m.products.GetForUpdate(txCtx, productID)
		if err != nil {
			return err
		}
		if product.Owner != nil && product.Owner.ID == user.ID {
			return apperrors.Wrap(apperrors.ErrForbidden, "cannot bid on your own listing")
		}

		wasActive := product.Active
		if !product.CheckAndExpire(m.clock.Now()) {
			notLive := apperrors.Wrap(apperrors.ErrInvalidInput, "listing is no longer live")
			// An expiry noticed here must commit even though the bid is
			// rejected, so the rejection travels outside the transaction
			// instead of rolling it back.
			if wasActive && !product.Active {
				bidErr = notLive
				return m.products.Update(txCtx, product)
			}
			return notLive
		}

		auction = biddingDomain.NewAuction(user, product, price, m.clock.Now())
		if err := m.auctions.Create(txCtx, auction); err != nil {
			return err
		}

		product.Price = auction.Price
		return m.products.Update(txCtx, product)
	})
	if err != nil {
		return nil, err
	}
	if bidErr != nil {
		return nil, bidErr
	}
	return auction, nil
}
