package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/catalog/usecase/mocks"
	"github.com/Elena0909/AuctionsProduced/internal/clock"
	databaseMocks "github.com/Elena0909/AuctionsProduced/internal/database/mocks"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

func newTestCategoryUseCase(
	txManager *databaseMocks.MockTxManager,
	categoryRepo *mocks.MockCategoryRepository,
	productRepo *mocks.MockProductRepository,
) CategoryUseCase {
	_, validator := catalogDomain.NewValidators(userDomain.NewValidator(), clock.NewFixed(testNow))
	return NewCategoryUseCase(
		txManager,
		categoryRepo,
		productRepo,
		validator,
		clock.NewFixed(testNow),
		time.Second,
		1,
		time.Millisecond,
	)
}

func passThroughTx(txManager *databaseMocks.MockTxManager, ctx context.Context) {
	txManager.EXPECT().
		WithTx(ctx, mock.AnythingOfType("func(context.Context) error")).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Once()
}

func TestCategoryUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NewGraph", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		child := &catalogDomain.Category{Name: "Bluze"}
		category := &catalogDomain.Category{
			Name:     "Haine",
			Children: []*catalogDomain.Category{child},
		}

		passThroughTx(mockTxManager, ctx)
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(nil, catalogDomain.ErrCategoryNotFound).
			Once()
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Bluze").
			Return(nil, catalogDomain.ErrCategoryNotFound).
			Once()
		mockCategoryRepo.EXPECT().
			Create(mock.Anything, category).
			Return(nil).
			Once()
		mockCategoryRepo.EXPECT().
			Create(mock.Anything, child).
			Return(nil).
			Once()
		mockCategoryRepo.EXPECT().
			GetParents(mock.Anything, mock.AnythingOfType("uuid.UUID")).
			Return(nil, nil).
			Once()
		mockCategoryRepo.EXPECT().
			AddLink(mock.Anything, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("uuid.UUID")).
			Return(nil).
			Once()

		err := uc.Create(ctx, category)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, category.ID)
		assert.NotEqual(t, uuid.Nil, child.ID)
	})

	t.Run("Success_ExistingNameAdopted", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		existingID := uuid.Must(uuid.NewV7())
		category := &catalogDomain.Category{Name: "Haine"}

		passThroughTx(mockTxManager, ctx)
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(&catalogDomain.Category{ID: existingID, Name: "Haine"}, nil).
			Once()

		err := uc.Create(ctx, category)

		assert.NoError(t, err)
		assert.Equal(t, existingID, category.ID)
	})

	t.Run("Success_FiledProductsPersisted", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		product := testProduct(testOfferer())
		product.Category = nil
		category := &catalogDomain.Category{
			Name:     "Haine",
			Products: []*catalogDomain.Product{product},
		}

		passThroughTx(mockTxManager, ctx)
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(nil, catalogDomain.ErrCategoryNotFound).
			Once()
		mockCategoryRepo.EXPECT().
			Create(mock.Anything, category).
			Return(nil).
			Once()
		mockProductRepo.EXPECT().
			Create(mock.Anything, product).
			Return(nil).
			Once()

		err := uc.Create(ctx, category)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, category, product.Category)
		assert.True(t, product.Active)
	})

	t.Run("InvalidGraph", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		err := uc.Create(ctx, &catalogDomain.Category{Name: "H"})

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("CycleRejectedBeforePersistence", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		a := &catalogDomain.Category{Name: "Haine"}
		b := &catalogDomain.Category{Name: "Bluze"}
		a.Children = []*catalogDomain.Category{b}
		b.Children = []*catalogDomain.Category{a}

		err := uc.Create(ctx, a)

		assert.True(t, apperrors.Is(err, catalogDomain.ErrCategoryCycle))
	})

	t.Run("CycleAcrossRequestsRejected", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		bluze := &catalogDomain.Category{Name: "Bluze"}
		haine := &catalogDomain.Category{
			Name:     "Haine",
			Children: []*catalogDomain.Category{bluze},
		}

		passThroughTx(mockTxManager, ctx)
		passThroughTx(mockTxManager, ctx)
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(nil, catalogDomain.ErrCategoryNotFound).
			Once()
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Bluze").
			Return(nil, catalogDomain.ErrCategoryNotFound).
			Once()
		mockCategoryRepo.EXPECT().
			Create(mock.Anything, haine).
			Return(nil).
			Once()
		mockCategoryRepo.EXPECT().
			Create(mock.Anything, bluze).
			Return(nil).
			Once()
		mockCategoryRepo.EXPECT().
			GetParents(mock.Anything, mock.AnythingOfType("uuid.UUID")).
			RunAndReturn(func(_ context.Context, id uuid.UUID) ([]*catalogDomain.Category, error) {
				if id == bluze.ID {
					return []*catalogDomain.Category{{ID: haine.ID, Name: "Haine"}}, nil
				}
				return nil, nil
			}).
			Twice()
		mockCategoryRepo.EXPECT().
			AddLink(mock.Anything, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("uuid.UUID")).
			Return(nil).
			Once()

		assert.NoError(t, uc.Create(ctx, haine))

		// The reversed edge arrives in a second request. Its submitted graph
		// is acyclic on its own; only the stored ancestry walk can see that
		// the two requests together close a loop.
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Bluze").
			Return(&catalogDomain.Category{ID: bluze.ID, Name: "Bluze"}, nil).
			Once()
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(&catalogDomain.Category{ID: haine.ID, Name: "Haine"}, nil).
			Once()

		reversed := &catalogDomain.Category{
			Name:     "Bluze",
			Children: []*catalogDomain.Category{{Name: "Haine"}},
		}
		err := uc.Create(ctx, reversed)

		assert.True(t, apperrors.Is(err, catalogDomain.ErrCategoryCycle))
	})

	t.Run("SelfLinkRejected", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		existingID := uuid.Must(uuid.NewV7())
		category := &catalogDomain.Category{
			Name:     "Haine",
			Children: []*catalogDomain.Category{{Name: "Haine"}},
		}

		passThroughTx(mockTxManager, ctx)
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(&catalogDomain.Category{ID: existingID, Name: "Haine"}, nil).
			Twice()

		err := uc.Create(ctx, category)

		assert.True(t, apperrors.Is(err, catalogDomain.ErrCategoryCycle))
	})

	t.Run("RepositoryFailureAbortsTransaction", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		category := &catalogDomain.Category{Name: "Haine"}

		repoErr := apperrors.New("insert failed")
		passThroughTx(mockTxManager, ctx)
		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(nil, catalogDomain.ErrCategoryNotFound).
			Once()
		mockCategoryRepo.EXPECT().
			Create(mock.Anything, category).
			Return(repoErr).
			Once()

		err := uc.Create(ctx, category)

		assert.ErrorIs(t, err, repoErr)
	})
}

func TestCategoryUseCase_GetChildren(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		categoryID := uuid.Must(uuid.NewV7())
		children := []*catalogDomain.Category{{ID: uuid.Must(uuid.NewV7()), Name: "Bluze"}}

		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(&catalogDomain.Category{ID: categoryID, Name: "Haine"}, nil).
			Once()
		mockCategoryRepo.EXPECT().
			GetChildren(mock.Anything, categoryID).
			Return(children, nil).
			Once()

		got, err := uc.GetChildren(ctx, "Haine")

		assert.NoError(t, err)
		assert.Equal(t, children, got)
	})

	t.Run("CategoryNotFound", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(nil, catalogDomain.ErrCategoryNotFound).
			Once()

		got, err := uc.GetChildren(ctx, "Haine")

		assert.Nil(t, got)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestCategoryUseCase_GetProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockCategoryRepo := mocks.NewMockCategoryRepository(t)
		mockProductRepo := mocks.NewMockProductRepository(t)
		uc := newTestCategoryUseCase(mockTxManager, mockCategoryRepo, mockProductRepo)

		categoryID := uuid.Must(uuid.NewV7())
		products := []*catalogDomain.Product{testProduct(testOfferer())}

		mockCategoryRepo.EXPECT().
			GetByName(mock.Anything, "Haine").
			Return(&catalogDomain.Category{ID: categoryID, Name: "Haine"}, nil).
			Once()
		mockCategoryRepo.EXPECT().
			GetProducts(mock.Anything, categoryID).
			Return(products, nil).
			Once()

		got, err := uc.GetProducts(ctx, "Haine")

		assert.NoError(t, err)
		assert.Equal(t, products, got)
	})
}
