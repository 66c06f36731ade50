package domain

import (
	"time"

	"github.com/google/uuid"

	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// Auction records an accepted bid: who bid, on what, how much and when.
type Auction struct {
	ID        uuid.UUID
	Date      time.Time
	Bidder    *userDomain.User
	Product   *catalogDomain.Product
	Currency  catalogDomain.Currency
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuction builds an unsaved bid record.
func NewAuction(bidder *userDomain.User, product *catalogDomain.Product, price float64, date time.Time) *Auction {
	return &Auction{
		Date:     date,
		Bidder:   bidder,
		Product:  product,
		Currency: currencyOf(product),
		Price:    price,
	}
}

func currencyOf(product *catalogDomain.Product) catalogDomain.Currency {
	if product == nil {
		return ""
	}
	return product.Currency
}

// Domain-specific errors for auction operations.
var (
	// ErrAuctionNotFound indicates the requested bid record does not exist.
	ErrAuctionNotFound = errors.Wrap(errors.ErrNotFound, "auction not found")

	// ErrAuctionAlreadyExists indicates a bid with the same ID already exists.
	ErrAuctionAlreadyExists = errors.Wrap(errors.ErrConflict, "auction already exists")
)
