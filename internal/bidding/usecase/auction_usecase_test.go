package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	biddingDomain "github.com/Elena0909/AuctionsProduced/internal/bidding/domain"
	"github.com/Elena0909/AuctionsProduced/internal/bidding/usecase/mocks"
	catalogDomain "github.com/Elena0909/AuctionsProduced/internal/catalog/domain"
	"github.com/Elena0909/AuctionsProduced/internal/clock"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

var testNow = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestAuctionUseCase(repo *mocks.MockAuctionRepository) AuctionUseCase {
	clk := clock.NewFixed(testNow)
	users := userDomain.NewValidator()
	products, _ := catalogDomain.NewValidators(users, clk)
	return NewAuctionUseCase(
		repo,
		biddingDomain.NewValidator(users, products, clk),
		clk,
		time.Second,
		1,
		time.Millisecond,
	)
}

func testAuction() *biddingDomain.Auction {
	product := &catalogDomain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Name:        "Bluza",
		Description: "bluza eleganta de vara",
		Owner:       &userDomain.User{ID: uuid.Must(uuid.NewV7()), Name: "Valentina", Role: userDomain.RoleOfferer, Score: 5},
		Category:    &catalogDomain.Category{Name: "Haine"},
		StartTime:   testNow.Add(-time.Hour),
		EndTime:     testNow.Add(time.Hour),
		Price:       10,
		Currency:    catalogDomain.CurrencyRON,
		Active:      true,
	}
	bidder := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Name: "Andrei", Role: userDomain.RoleBidder, Score: 5}
	return biddingDomain.NewAuction(bidder, product, 20, testNow)
}

func TestAuctionUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockAuctionRepository(t)
		uc := newTestAuctionUseCase(mockRepo)

		auction := testAuction()
		mockRepo.EXPECT().
			Create(mock.Anything, auction).
			Return(nil).
			Once()

		err := uc.Create(ctx, auction)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, auction.ID)
		assert.Equal(t, testNow, auction.CreatedAt)
	})

	t.Run("InvalidBid", func(t *testing.T) {
		mockRepo := mocks.NewMockAuctionRepository(t)
		uc := newTestAuctionUseCase(mockRepo)

		auction := testAuction()
		auction.Price = auction.Product.Price

		err := uc.Create(ctx, auction)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestAuctionUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockAuctionRepository(t)
		uc := newTestAuctionUseCase(mockRepo)

		auctionID := uuid.Must(uuid.NewV7())
		expected := testAuction()
		expected.ID = auctionID

		mockRepo.EXPECT().
			Get(mock.Anything, auctionID).
			Return(expected, nil).
			Once()

		auction, err := uc.Get(ctx, auctionID)

		assert.NoError(t, err)
		assert.Equal(t, expected, auction)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := mocks.NewMockAuctionRepository(t)
		uc := newTestAuctionUseCase(mockRepo)

		auctionID := uuid.Must(uuid.NewV7())
		mockRepo.EXPECT().
			Get(mock.Anything, auctionID).
			Return(nil, biddingDomain.ErrAuctionNotFound).
			Once()

		auction, err := uc.Get(ctx, auctionID)

		assert.Nil(t, auction)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})
}

func TestAuctionUseCase_ListByProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockAuctionRepository(t)
		uc := newTestAuctionUseCase(mockRepo)

		productID := uuid.Must(uuid.NewV7())
		expected := []*biddingDomain.Auction{testAuction()}

		mockRepo.EXPECT().
			ListByProduct(mock.Anything, productID).
			Return(expected, nil).
			Once()

		auctions, err := uc.ListByProduct(ctx, productID)

		assert.NoError(t, err)
		assert.Equal(t, expected, auctions)
	})
}
