package domain

import (
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/clock"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// PriceCapFactor bounds how much a bid may exceed the current listing
// price: a bid must stay strictly below this multiple of it.
const PriceCapFactor = 3

// Validator checks whether a bid is admissible against the listing it
// targets. The product's expiry state is evaluated against the clock as
// part of validation, so a stale Active flag is corrected in memory and
// can be persisted by the caller.
type Validator struct {
	users    *userDomain.Validator
	products *catalogDomain.ProductValidator
	clock    clock.Clock
}

// NewValidator builds an auction validator on top of the user and product
// validators.
func NewValidator(users *userDomain.Validator, products *catalogDomain.ProductValidator, clk clock.Clock) *Validator {
	return &Validator{users: users, products: products, clock: clk}
}

// Validate checks a bid in order: bidder, product, currency match, bid
// date inside the bidding window, price above the current listing price
// and below the cap, and finally the product still being live.
func (v *Validator) Validate(auction *Auction) error {
	if auction == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "auction is required")
	}

	if err := v.users.Validate(auction.Bidder); err != nil {
		return err
	}
	if auction.Bidder.Role != userDomain.RoleBidder {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "only bidders may place bids")
	}

	if auction.Product == nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "product is required")
	}
	if err := v.products.Validate(auction.Product); err != nil {
		return err
	}

	if auction.Currency != auction.Product.Currency {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "bid currency must match the listing currency")
	}

	if auction.Date.IsZero() {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "bid date is required")
	}
	if auction.Date.Before(auction.Product.StartTime) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "bid placed before the bidding window opens")
	}
	if !auction.Date.Before(auction.Product.EndTime) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "bid placed after the bidding window closed")
	}

	if auction.Price <= 0 {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "bid price must be positive")
	}
	if auction.Price <= auction.Product.Price {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "bid must exceed the current listing price")
	}
	if auction.Price >= PriceCapFactor*auction.Product.Price {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "bid must stay below three times the listing price")
	}

	if !auction.Product.CheckAndExpire(v.clock.Now()) {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "listing is no longer live")
	}
	return nil
}
