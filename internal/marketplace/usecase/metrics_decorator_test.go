package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	marketplaceMocks "github.com/Elena0909/AuctionsProduced/internal/marketplace/usecase/mocks"
	"github.com/Elena0909/AuctionsProduced/internal/metrics"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func TestNewMarketplaceUseCaseWithMetrics(t *testing.T) {
	mockUseCase := marketplaceMocks.NewMockMarketplaceUseCase(t)
	mockMetrics := &mockBusinessMetrics{}

	decorator := NewMarketplaceUseCaseWithMetrics(mockUseCase, mockMetrics)

	assert.NotNil(t, decorator)
	assert.Implements(t, (*MarketplaceUseCase)(nil), decorator)
}

func TestMetricsDecorator_ListForBid(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := marketplaceMocks.NewMockMarketplaceUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewMarketplaceUseCaseWithMetrics(mockUseCase, mockMetrics)

		offerer := valentina()
		product := bluza(nil)
		category := &catalogDomain.Category{Name: "Haine"}

		mockUseCase.EXPECT().
			ListForBid(ctx, offerer, product, category).
			Return(nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "marketplace", "list_for_bid", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "marketplace", "list_for_bid", mock.AnythingOfType("time.Duration"), "success").Once()

		err := decorator.ListForBid(ctx, offerer, product, category)

		assert.NoError(t, err)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error_RecordsErrorMetrics", func(t *testing.T) {
		mockUseCase := marketplaceMocks.NewMockMarketplaceUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewMarketplaceUseCaseWithMetrics(mockUseCase, mockMetrics)

		offerer := valentina()
		product := bluza(nil)
		category := &catalogDomain.Category{Name: "Haine"}

		mockUseCase.EXPECT().
			ListForBid(ctx, offerer, product, category).
			Return(apperrors.ErrForbidden).
			Once()
		mockMetrics.On("RecordOperation", ctx, "marketplace", "list_for_bid", "error").Once()
		mockMetrics.On("RecordDuration", ctx, "marketplace", "list_for_bid", mock.AnythingOfType("time.Duration"), "error").Once()

		err := decorator.ListForBid(ctx, offerer, product, category)

		assert.True(t, apperrors.Is(err, apperrors.ErrForbidden))
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_PlaceBid(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_RecordsSuccessMetrics", func(t *testing.T) {
		mockUseCase := marketplaceMocks.NewMockMarketplaceUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewMarketplaceUseCaseWithMetrics(mockUseCase, mockMetrics)

		userID := uuid.Must(uuid.NewV7())
		productID := uuid.Must(uuid.NewV7())
		expected := &biddingDomain.Auction{ID: uuid.Must(uuid.NewV7()), Price: 20}

		mockUseCase.EXPECT().
			PlaceBid(ctx, userID, productID, 20.0).
			Return(expected, nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "marketplace", "place_bid", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "marketplace", "place_bid", mock.AnythingOfType("time.Duration"), "success").Once()

		auction, err := decorator.PlaceBid(ctx, userID, productID, 20)

		assert.NoError(t, err)
		assert.Equal(t, expected, auction)
		mockMetrics.AssertExpectations(t)
	})
}

func TestMetricsDecorator_Browse(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ForwardsResults", func(t *testing.T) {
		mockUseCase := marketplaceMocks.NewMockMarketplaceUseCase(t)
		mockMetrics := &mockBusinessMetrics{}
		decorator := NewMarketplaceUseCaseWithMetrics(mockUseCase, mockMetrics)

		children := []*catalogDomain.Category{{ID: uuid.Must(uuid.NewV7()), Name: "Bluze"}}
		products := []*catalogDomain.Product{bluza(&userDomain.User{Name: "Valentina", Role: userDomain.RoleOfferer})}

		mockUseCase.EXPECT().
			Browse(ctx, "Haine").
			Return(children, products, nil).
			Once()
		mockMetrics.On("RecordOperation", ctx, "marketplace", "browse", "success").Once()
		mockMetrics.On("RecordDuration", ctx, "marketplace", "browse", mock.AnythingOfType("time.Duration"), "success").Once()

		gotChildren, gotProducts, err := decorator.Browse(ctx, "Haine")

		assert.NoError(t, err)
		assert.Equal(t, children, gotChildren)
		assert.Equal(t, products, gotProducts)
		mockMetrics.AssertExpectations(t)
	})
}
