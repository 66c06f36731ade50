// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// OffererPayload identifies the offerer publishing a listing. Offerers are
// matched by name and created on first use.
type OffererPayload struct {
	Name  string  `json:"name"`
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}

// Validate checks if the offerer payload is valid.
func (p OffererPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Role,
			validation.Required,
			validation.In(string(userDomain.RoleBidder), string(userDomain.RoleOfferer)),
		),
		validation.Field(&p.Score, validation.Min(0.0)),
	)
}

// ListingPayload carries the listing fields shared by create and edit
// requests. Charset, casing, window and price rules are enforced by the
// domain validators.
type ListingPayload struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
}

// Validate checks if the listing payload is valid.
func (p ListingPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Description, validation.Required),
		validation.Field(&p.StartTime, validation.Required),
		validation.Field(&p.EndTime, validation.Required),
		validation.Field(&p.Price, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&p.Currency,
			validation.Required,
			validation.In(
				string(catalogDomain.CurrencyEUR),
				string(catalogDomain.CurrencyRON),
				string(catalogDomain.CurrencyUSD),
				string(catalogDomain.CurrencyGBP),
			),
		),
	)
}

// ToDomain converts the payload to an unsaved domain product.
func (p ListingPayload) ToDomain() *catalogDomain.Product {
	return &catalogDomain.Product{
		Name:        p.Name,
		Description: p.Description,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Price:       p.Price,
		Currency:    catalogDomain.Currency(p.Currency),
	}
}

// CreateListingRequest contains the parameters for publishing a listing.
type CreateListingRequest struct {
	Offerer  OffererPayload `json:"offerer"`
	Listing  ListingPayload `json:"listing"`
	Category string         `json:"category"`
}

// Validate checks if the create listing request is valid.
func (r *CreateListingRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Offerer, validation.Required),
		validation.Field(&r.Listing, validation.Required),
		validation.Field(&r.Category, validation.Required),
	)
}

// ToOfferer converts the offerer payload to a domain user.
func (r *CreateListingRequest) ToOfferer() *userDomain.User {
	return &userDomain.User{
		Name:  r.Offerer.Name,
		Role:  userDomain.Role(r.Offerer.Role),
		Score: r.Offerer.Score,
	}
}

// ToCategory converts the category name to an unsaved domain category.
func (r *CreateListingRequest) ToCategory() *catalogDomain.Category {
	return &catalogDomain.Category{Name: r.Category}
}

// EditListingRequest contains the parameters for editing a listing.
type EditListingRequest struct {
	UserID  string         `json:"user_id"`
	Listing ListingPayload `json:"listing"`
}

// Validate checks if the edit listing request is valid.
func (r *EditListingRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required, validation.By(validUUID)),
		validation.Field(&r.Listing, validation.Required),
	)
}

// CloseListingRequest contains the parameters for closing a listing.
type CloseListingRequest struct {
	UserID string `json:"user_id"`
}

// Validate checks if the close listing request is valid.
func (r *CloseListingRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required, validation.By(validUUID)),
	)
}

// PlaceBidRequest contains the parameters for placing a bid on a listing.
type PlaceBidRequest struct {
	UserID string  `json:"user_id"`
	Price  float64 `json:"price"`
}

// Validate checks if the place bid request is valid.
func (r *PlaceBidRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.UserID, validation.Required, validation.By(validUUID)),
		validation.Field(&r.Price, validation.Required, validation.Min(0.0).Exclusive()),
	)
}
