// Package http provides HTTP handlers for the marketplace operations:
// publishing, browsing, editing, closing and bidding on listings.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Elena0909/AuctionsProduced/internal/httputil"
	"github.com/Elena0909/AuctionsProduced/internal/marketplace/http/dto"

	biddingUseCase "github.com/Elena0909/AuctionsProduced/internal/bidding/usecase"
	marketplaceUseCase "github.com/Elena0909/AuctionsProduced/internal/marketplace/usecase"
	customValidation "github.com/Elena0909/AuctionsProduced/internal/validation"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

// MarketplaceHandler handles HTTP requests for marketplace operations.
type MarketplaceHandler struct {
	marketplaceUseCase marketplaceUseCase.MarketplaceUseCase
	auctionUseCase     biddingUseCase.AuctionUseCase
	logger             *slog.Logger
}

// NewMarketplaceHandler creates a new marketplace handler with required dependencies.
func NewMarketplaceHandler(
	marketplaceUseCase marketplaceUseCase.MarketplaceUseCase,
	auctionUseCase biddingUseCase.AuctionUseCase,
	logger *slog.Logger,
) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceUseCase: marketplaceUseCase,
		auctionUseCase:     auctionUseCase,
		logger:             logger,
	}
}

// CreateListingHandler publishes a listing for bidding. The offerer and the
// category are matched by name and created when absent.
// POST /v1/listings
// Returns 201 Created with the stored listing.
func (h *MarketplaceHandler) CreateListingHandler(c *gin.Context) {
	var req dto.CreateListingRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	offerer := req.ToOfferer()
	product := req.Listing.ToDomain()
	category := req.ToCategory()
	if err := h.marketplaceUseCase.ListForBid(c.Request.Context(), offerer, product, category); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapProductToListingResponse(product)
	c.JSON(http.StatusCreated, response)
}

// BrowseHandler returns a category's immediate children and the listings
// filed directly under it.
// GET /v1/categories/:name
// Returns 200 OK with the browse result.
func (h *MarketplaceHandler) BrowseHandler(c *gin.Context) {
	categoryName := c.Param("name")

	children, products, err := h.marketplaceUseCase.Browse(c.Request.Context(), categoryName)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapBrowseToResponse(categoryName, children, products)
	c.JSON(http.StatusOK, response)
}

// CloseListingHandler takes a listing off the market. Only the owning
// offerer may close it.
// POST /v1/listings/:id/close
// Returns 200 OK with the closed listing.
func (h *MarketplaceHandler) CloseListingHandler(c *gin.Context) {
	productID, ok := h.parseListingID(c)
	if !ok {
		return
	}

	var req dto.CloseListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	product, err := h.marketplaceUseCase.CloseListing(c.Request.Context(), uuid.MustParse(req.UserID), productID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapProductToListingResponse(product)
	c.JSON(http.StatusOK, response)
}

// EditListingHandler updates a listing's name, description, bidding window,
// currency and price. Only the owning offerer may edit it.
// PUT /v1/listings/:id
// Returns 200 OK with the updated listing.
func (h *MarketplaceHandler) EditListingHandler(c *gin.Context) {
	productID, ok := h.parseListingID(c)
	if !ok {
		return
	}

	var req dto.EditListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	updated := req.Listing.ToDomain()
	product, err := h.marketplaceUseCase.EditListing(c.Request.Context(), uuid.MustParse(req.UserID), productID, updated)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapProductToListingResponse(product)
	c.JSON(http.StatusOK, response)
}

// PlaceBidHandler places a bid on a live listing.
// POST /v1/listings/:id/bids
// Returns 201 Created with the stored bid.
func (h *MarketplaceHandler) PlaceBidHandler(c *gin.Context) {
	productID, ok := h.parseListingID(c)
	if !ok {
		return
	}

	var req dto.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	auction, err := h.marketplaceUseCase.PlaceBid(c.Request.Context(), uuid.MustParse(req.UserID), productID, req.Price)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.MapAuctionToBidResponse(auction)
	c.JSON(http.StatusCreated, response)
}

// ListBidsHandler returns the bid history of a listing, most recent first.
// GET /v1/listings/:id/bids
// Returns 200 OK with the listing's bids.
func (h *MarketplaceHandler) ListBidsHandler(c *gin.Context) {
	productID, ok := h.parseListingID(c)
	if !ok {
		return
	}

	auctions, err := h.auctionUseCase.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bids": dto.MapAuctionsToBidResponses(auctions)})
}

func (h *MarketplaceHandler) parseListingID(c *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid listing id"),
			h.logger,
		)
		return uuid.Nil, false
	}
	return productID, true
}
