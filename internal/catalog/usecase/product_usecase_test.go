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
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	"github.com/Elena0909/AuctionsProduced/internal/similarity"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

var testNow = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestProductUseCase(repo *mocks.MockProductRepository) ProductUseCase {
	validator, _ := catalogDomain.NewValidators(userDomain.NewValidator(), clock.NewFixed(testNow))
	return NewProductUseCase(
		repo,
		validator,
		similarity.NewDetector(3),
		clock.NewFixed(testNow),
		time.Second,
		1,
		time.Millisecond,
	)
}

func testOfferer() *userDomain.User {
	return &userDomain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  "Valentina",
		Role:  userDomain.RoleOfferer,
		Score: 5,
	}
}

func testProduct(owner *userDomain.User) *catalogDomain.Product {
	return &catalogDomain.Product{
		Name:        "Bluza",
		Description: "bluza eleganta de vara",
		Owner:       owner,
		Category:    &catalogDomain.Category{Name: "Haine"},
		StartTime:   testNow.Add(time.Hour),
		EndTime:     testNow.Add(48 * time.Hour),
		Price:       10,
		Currency:    catalogDomain.CurrencyRON,
	}
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		owner := testOfferer()
		product := testProduct(owner)

		mockRepo.EXPECT().
			ListByOwner(mock.Anything, owner.ID).
			Return(nil, nil).
			Once()
		mockRepo.EXPECT().
			Create(mock.Anything, product).
			Return(nil).
			Once()

		err := uc.Create(ctx, product)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.True(t, product.Active)
	})

	t.Run("NearDuplicateRejected", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		owner := testOfferer()
		product := testProduct(owner)

		existing := testProduct(owner)
		existing.ID = uuid.Must(uuid.NewV7())
		existing.Description = "bluza eleganta de iarna"
		mockRepo.EXPECT().
			ListByOwner(mock.Anything, owner.ID).
			Return([]*catalogDomain.Product{existing}, nil).
			Once()

		err := uc.Create(ctx, product)

		assert.True(t, apperrors.Is(err, catalogDomain.ErrProductDuplicate))
	})

	t.Run("DistinctDescriptionAccepted", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		owner := testOfferer()
		product := testProduct(owner)

		existing := testProduct(owner)
		existing.ID = uuid.Must(uuid.NewV7())
		existing.Description = "rochie lunga din matase naturala"
		mockRepo.EXPECT().
			ListByOwner(mock.Anything, owner.ID).
			Return([]*catalogDomain.Product{existing}, nil).
			Once()
		mockRepo.EXPECT().
			Create(mock.Anything, product).
			Return(nil).
			Once()

		err := uc.Create(ctx, product)

		assert.NoError(t, err)
	})

	t.Run("InvalidProduct", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		product := testProduct(testOfferer())
		product.StartTime = testNow.Add(-time.Hour)

		err := uc.Create(ctx, product)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestProductUseCase_CountActive(t *testing.T) {
	ctx := context.Background()

	t.Run("CountsOnlyBiddableListings", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		owner := testOfferer()

		inWindow := testProduct(owner)
		inWindow.StartTime = testNow.Add(-time.Hour)
		inWindow.EndTime = testNow.Add(time.Hour)
		inWindow.Active = true

		expired := testProduct(owner)
		expired.StartTime = testNow.Add(-48 * time.Hour)
		expired.EndTime = testNow.Add(-time.Hour)
		expired.Active = true

		closed := testProduct(owner)
		closed.StartTime = testNow.Add(-time.Hour)
		closed.EndTime = testNow.Add(time.Hour)
		closed.Active = false

		mockRepo.EXPECT().
			ListByOwner(mock.Anything, owner.ID).
			Return([]*catalogDomain.Product{inWindow, expired, closed}, nil).
			Once()

		count, err := uc.CountActive(ctx, owner.ID)

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("NoListings", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		ownerID := uuid.Must(uuid.NewV7())
		mockRepo.EXPECT().
			ListByOwner(mock.Anything, ownerID).
			Return(nil, nil).
			Once()

		count, err := uc.CountActive(ctx, ownerID)

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		product := testProduct(testOfferer())
		product.ID = uuid.Must(uuid.NewV7())

		mockRepo.EXPECT().
			Update(mock.Anything, product).
			Return(nil).
			Once()

		err := uc.Update(ctx, product)

		assert.NoError(t, err)
		assert.Equal(t, testNow, product.UpdatedAt)
	})

	t.Run("MissingID", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		product := testProduct(testOfferer())

		err := uc.Update(ctx, product)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestProductUseCase_GetForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		productID := uuid.Must(uuid.NewV7())
		expected := testProduct(testOfferer())
		expected.ID = productID

		mockRepo.EXPECT().
			GetForUpdate(mock.Anything, productID).
			Return(expected, nil).
			Once()

		product, err := uc.GetForUpdate(ctx, productID)

		assert.NoError(t, err)
		assert.Equal(t, expected, product)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := mocks.NewMockProductRepository(t)
		uc := newTestProductUseCase(mockRepo)

		productID := uuid.Must(uuid.NewV7())
		mockRepo.EXPECT().
			GetForUpdate(mock.Anything, productID).
			Return(nil, catalogDomain.ErrProductNotFound).
			Once()

		product, err := uc.GetForUpdate(ctx, productID)

		assert.Nil(t, product)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}
