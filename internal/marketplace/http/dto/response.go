package dto

import (
	"time"

	"github.com/google/uuid"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// OwnerResponse is the embedded user representation on listing and bid
// responses.
type OwnerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
	Score float64   `json:"score"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ListingResponse represents a listing in API responses.
type ListingResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Owner       *OwnerResponse    `json:"owner,omitempty"`
	Category    *CategoryResponse `json:"category,omitempty"`
	StartTime   time.Time         `json:"start_time"`
	EndTime     time.Time         `json:"end_time"`
	Price       float64           `json:"price"`
	Currency    string            `json:"currency"`
	Active      bool              `json:"active"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// BrowseResponse represents a category browse result: the category's
// immediate children and the listings filed directly under it.
type BrowseResponse struct {
	Category string              `json:"category"`
	Children []*CategoryResponse `json:"children"`
	Listings []*ListingResponse  `json:"listings"`
}

// BidResponse represents a bid in API responses.
type BidResponse struct {
	ID        uuid.UUID      `json:"id"`
	Date      time.Time      `json:"date"`
	Bidder    *OwnerResponse `json:"bidder,omitempty"`
	ProductID uuid.UUID      `json:"product_id"`
	Currency  string         `json:"currency"`
	Price     float64        `json:"price"`
	CreatedAt time.Time      `json:"created_at"`
}

// MapUserToOwnerResponse converts a domain user to an embedded response.
func MapUserToOwnerResponse(user *userDomain.User) *OwnerResponse {
	if user == nil {
		return nil
	}
	return &OwnerResponse{
		ID:    user.ID,
		Name:  user.Name,
		Role:  string(user.Role),
		Score: user.Score,
	}
}

// MapCategoryToResponse converts a domain category to a response DTO.
func MapCategoryToResponse(category *catalogDomain.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	return &CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// MapProductToListingResponse converts a domain product to a response DTO.
func MapProductToListingResponse(product *catalogDomain.Product) *ListingResponse {
	return &ListingResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Owner:       MapUserToOwnerResponse(product.Owner),
		Category:    MapCategoryToResponse(product.Category),
		StartTime:   product.StartTime,
		EndTime:     product.EndTime,
		Price:       product.Price,
		Currency:    string(product.Currency),
		Active:      product.Active,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// MapBrowseToResponse converts a browse result to a response DTO.
func MapBrowseToResponse(
	categoryName string,
	children []*catalogDomain.Category,
	products []*catalogDomain.Product,
) *BrowseResponse {
	response := &BrowseResponse{
		Category: categoryName,
		Children: make([]*CategoryResponse, 0, len(children)),
		Listings: make([]*ListingResponse, 0, len(products)),
	}
	for _, child := range children {
		response.Children = append(response.Children, MapCategoryToResponse(child))
	}
	for _, product := range products {
		response.Listings = append(response.Listings, MapProductToListingResponse(product))
	}
	return response
}

// MapAuctionToBidResponse converts a domain auction to a response DTO.
func MapAuctionToBidResponse(auction *biddingDomain.Auction) *BidResponse {
	response := &BidResponse{
		ID:        auction.ID,
		Date:      auction.Date,
		Bidder:    MapUserToOwnerResponse(auction.Bidder),
		Currency:  string(auction.Currency),
		Price:     auction.Price,
		CreatedAt: auction.CreatedAt,
	}
	if auction.Product != nil {
		response.ProductID = auction.Product.ID
	}
	return response
}

// MapAuctionsToBidResponses converts a slice of domain auctions to response DTOs.
func MapAuctionsToBidResponses(auctions []*biddingDomain.Auction) []*BidResponse {
	responses := make([]*BidResponse, 0, len(auctions))
	for _, auction := range auctions {
		responses = append(responses, MapAuctionToBidResponse(auction))
	}
	return responses
}
