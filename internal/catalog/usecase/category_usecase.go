package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/clock"
	"github.com/Elena0909/AuctionsProduced/internal/database"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
)

// categoryUseCase implements the CategoryUseCase interface.
type categoryUseCase struct {
	txManager    database.TxManager
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	validator    *catalogDomain.CategoryValidator
	clock        clock.Clock
	queryTimeout time.Duration
	readRetries  int
	readBackoff  time.Duration
}

// NewCategoryUseCase creates a new category use case instance with the provided dependencies.
func NewCategoryUseCase(
	txManager database.TxManager,
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	validator *catalogDomain.CategoryValidator,
	clk clock.Clock,
	queryTimeout time.Duration,
	readRetries int,
	readBackoff time.Duration,
) CategoryUseCase {
	return &categoryUseCase{
		txManager:    txManager,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		validator:    validator,
		clock:        clk,
		queryTimeout: queryTimeout,
		readRetries:  readRetries,
		readBackoff:  readBackoff,
	}
}

// Create validates the category graph and persists it inside one transaction.
// The whole graph commits or rolls back as a unit.
func (u *categoryUseCase) Create(ctx context.Context, category *catalogDomain.Category) error {
	if err := u.validator.Validate(category); err != nil {
		return err
	}

	return u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return u.persist(txCtx, category, map[*catalogDomain.Category]struct{}{})
	})
}

// persist walks the graph depth-first, inserting every unsaved node. A node
// whose name is already taken adopts the existing row's identity instead of
// producing a duplicate. Edges and directly-filed products are persisted
// after their endpoints.
func (u *categoryUseCase) persist(
	ctx context.Context,
	category *catalogDomain.Category,
	seen map[*catalogDomain.Category]struct{},
) error {
	if _, ok := seen[category]; ok {
		return nil
	}
	seen[category] = struct{}{}

	if category.ID == uuid.Nil {
		existing, err := u.categoryRepo.GetByName(ctx, category.Name)
		switch {
		case err == nil:
			category.ID = existing.ID
			category.CreatedAt = existing.CreatedAt
			category.UpdatedAt = existing.UpdatedAt
		case apperrors.Is(err, apperrors.ErrNotFound):
			now := u.clock.Now()
			category.ID = uuid.Must(uuid.NewV7())
			category.CreatedAt = now
			category.UpdatedAt = now
			if err := u.categoryRepo.Create(ctx, category); err != nil {
				return err
			}
		default:
			return err
		}
	}

	for _, parent := range category.Parents {
		if err := u.persist(ctx, parent, seen); err != nil {
			return err
		}
		if err := u.link(ctx, parent.ID, category.ID); err != nil {
			return err
		}
	}
	for _, child := range category.Children {
		if err := u.persist(ctx, child, seen); err != nil {
			return err
		}
		if err := u.link(ctx, category.ID, child.ID); err != nil {
			return err
		}
	}

	for _, product := range category.Products {
		if product.ID != uuid.Nil {
			continue
		}
		now := u.clock.Now()
		product.Category = category
		product.ID = uuid.Must(uuid.NewV7())
		product.Active = true
		product.CreatedAt = now
		product.UpdatedAt = now
		if err := u.productRepo.Create(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

// link records a parent-child edge after checking it against the stored graph.
// The validator only sees the submitted graph, so an edge between two
// already-persisted categories can still close a cycle with edges stored by
// earlier requests. The walk climbs the stored ancestry of the proposed
// parent and refuses the link when the child turns up there. It runs inside
// the same transaction as the insert, so the graph it checked is the graph
// the edge joins.
func (u *categoryUseCase) link(ctx context.Context, parentID, childID uuid.UUID) error {
	if parentID == childID {
		return catalogDomain.ErrCategoryCycle
	}

	visited := map[uuid.UUID]struct{}{parentID: {}}
	frontier := []uuid.UUID{parentID}
	for len(frontier) > 0 {
		id := frontier[0]
		frontier = frontier[1:]

		ancestors, err := u.categoryRepo.GetParents(ctx, id)
		if err != nil {
			return err
		}
		for _, ancestor := range ancestors {
			if ancestor.ID == childID {
				return catalogDomain.ErrCategoryCycle
			}
			if _, ok := visited[ancestor.ID]; ok {
				continue
			}
			visited[ancestor.ID] = struct{}{}
			frontier = append(frontier, ancestor.ID)
		}
	}

	return u.categoryRepo.AddLink(ctx, parentID, childID)
}

// Get retrieves a category by ID.
func (u *categoryUseCase) Get(ctx context.Context, categoryID uuid.UUID) (*catalogDomain.Category, error) {
	var category *catalogDomain.Category
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		category, err = u.categoryRepo.Get(ctx, categoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// GetByName retrieves a category by its unique name.
func (u *categoryUseCase) GetByName(ctx context.Context, name string) (*catalogDomain.Category, error) {
	var category *catalogDomain.Category
	err := database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		category, err = u.categoryRepo.GetByName(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// GetChildren retrieves the immediate children of the named category.
func (u *categoryUseCase) GetChildren(ctx context.Context, name string) ([]*catalogDomain.Category, error) {
	category, err := u.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	var children []*catalogDomain.Category
	err = database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		children, err = u.categoryRepo.GetChildren(ctx, category.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return children, nil
}

// GetProducts retrieves the products filed directly under the named category.
func (u *categoryUseCase) GetProducts(ctx context.Context, name string) ([]*catalogDomain.Product, error) {
	category, err := u.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	var products []*catalogDomain.Product
	err = database.RetryRead(ctx, u.readRetries, u.readBackoff, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, u.queryTimeout)
		defer cancel()

		var err error
		products, err = u.categoryRepo.GetProducts(ctx, category.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}
