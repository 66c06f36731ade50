package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/clock"
	"github.com/Elena0909/AuctionsProduced/internal/database"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	"github.com/Elena0909/AuctionsProduced/internal/similarity"
)

// productUseCase implements the ProductUseCase interface.
type productUseCase struct {
	productRepo  ProductRepository
	validator    *catalogDomain.ProductValidator
	detector     *similarity.Detector
	clock        clock.Clock
	queryTimeout time.Duration
	readRetries  int
	readBackoff  time.Duration
}

// NewProductUseCase creates a new product use case instance with the provided dependencies.
func NewProductUseCase(
	productRepo ProductRepository,
	validator *catalogDomain.ProductValidator,
	detector *similarity.Detector,
	clk clock.Clock,
	queryTimeout time.Duration,
	readRetries int,
	readBackoff time.Duration,
) ProductUseCase {
	return &productUseCase{
		productRepo:  productRepo,
		validator:    validator,
		detector:     detector,
		clock:        clk,
		queryTimeout: queryTimeout,
		readRetries:  readRetries,
		readBackoff:  readBackoff,
	}
}

// Create validates a new listing, rejects near-duplicates of the owner's
// existing listings and persists it.
func (u *productUseCase) Create(ctx context.Context, product *catalogDomain.Product) error {
	if err := u.validator.ValidateInsert(product); err != nil {
		return err
	}

	existing, err := u.ListByOwner(ctx, product.Owner.ID)
	if err != nil {
		return err
	}
	descriptions := make([]string, 0, len(existing))
	for _, p := range existing {
		descriptions = append(descriptions, p.Description)
	}
	if u.detector.IsNearDuplicate(product.Description, descriptions) {
		return catalogDomain.ErrProductDuplicate
	}

	now := u.clock.Now()
	product.ID = uuid.Must(uuid.NewV7())
	product.Active = true
	product.CreatedAt = now
	product.UpdatedAt = now

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()
	return u.productRepo.Create(ctx, product)
}

// Get retrieves a product by ID.
func (u *productUseCase) Get(ctx context.Context, productID uuid.UUID) (*catalogDomain.Product, error) {
	var product *catalogDomain.Product
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		product, err = u.productRepo.Get(ctx, productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// GetForUpdate fetches a product under a row lock. No retry here: the caller
// holds a transaction and a failed lock must surface immediately.
func (u *productUseCase) GetForUpdate(ctx context.Context, productID uuid.UUID) (*catalogDomain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()
	return u.productRepo.GetForUpdate(ctx, productID)
}

// GetByName retrieves a product by name.
func (u *productUseCase) GetByName(ctx context.Context, name string) (*catalogDomain.Product, error) {
	var product *catalogDomain.Product
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		product, err = u.productRepo.GetByName(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ListByOwner retrieves every listing owned by the given user.
func (u *productUseCase) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*catalogDomain.Product, error) {
	var products []*catalogDomain.Product
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		products, err = u.productRepo.ListByOwner(ctx, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// CountActive reports how many of the owner's listings are currently
// biddable. Expiry is evaluated against the clock in memory only.
func (u *productUseCase) CountActive(ctx context.Context, ownerID uuid.UUID) (int, error) {
	products, err := u.ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	now := u.clock.Now()
	count := 0
	for _, product := range products {
		if product.CheckAndExpire(now) {
			count++
		}
	}
	return count, nil
}

// Update validates and persists changes to an existing listing.
func (u *productUseCase) Update(ctx context.Context, product *catalogDomain.Product) error {
	if err := u.validator.Validate(product); err != nil {
		return err
	}
	if product.ID == uuid.Nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, "product id is required")
	}

	product.UpdatedAt = u.clock.Now()

	ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
	defer cancel()
	return u.productRepo.Update(ctx, product)
}
