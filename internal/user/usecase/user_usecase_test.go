package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Elena0909/AuctionsProduced/internal/clock"
	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
	"github.com/Elena0909/AuctionsProduced/internal/user/usecase/mocks"
)

var testNow = time.Date(2023, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestUserUseCase(repo *mocks.MockUserRepository, readRetries int) UserUseCase {
	return NewUserUseCase(
		repo,
		userDomain.NewValidator(),
		clock.NewFixed(testNow),
		5.0,
		time.Second,
		readRetries,
		time.Millisecond,
	)
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Once()

		user := &userDomain.User{Name: "Ana Maria", Role: userDomain.RoleBidder}
		err := uc.Create(ctx, user)

		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, 5.0, user.Score)
		assert.Equal(t, testNow, user.CreatedAt)
	})

	t.Run("ExplicitScoreKept", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		mockRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Once()

		user := &userDomain.User{Name: "Ana Maria", Role: userDomain.RoleBidder, Score: 8}
		err := uc.Create(ctx, user)

		assert.NoError(t, err)
		assert.Equal(t, 8.0, user.Score)
	})

	t.Run("InvalidName", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		user := &userDomain.User{Name: "ana", Role: userDomain.RoleBidder}
		err := uc.Create(ctx, user)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("NilUser", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		err := uc.Create(ctx, nil)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestUserUseCase_Get(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		expected := &userDomain.User{ID: userID, Name: "Ana Maria", Role: userDomain.RoleBidder, Score: 5}
		mockRepo.EXPECT().
			Get(mock.Anything, userID).
			Return(expected, nil).
			Once()

		user, err := uc.Get(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 3)

		mockRepo.EXPECT().
			Get(mock.Anything, userID).
			Return(nil, userDomain.ErrUserNotFound).
			Once()

		user, err := uc.Get(ctx, userID)

		assert.Nil(t, user)
		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("TransientFailureRetried", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 2)

		expected := &userDomain.User{ID: userID, Name: "Ana Maria", Role: userDomain.RoleBidder, Score: 5}
		mockRepo.EXPECT().
			Get(mock.Anything, userID).
			Return(nil, apperrors.New("connection reset")).
			Once()
		mockRepo.EXPECT().
			Get(mock.Anything, userID).
			Return(expected, nil).
			Once()

		user, err := uc.Get(ctx, userID)

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})
}

func TestUserUseCase_GetByName(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		expected := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Name: "Valentina", Role: userDomain.RoleOfferer, Score: 5}
		mockRepo.EXPECT().
			GetByName(mock.Anything, "Valentina").
			Return(expected, nil).
			Once()

		user, err := uc.GetByName(ctx, "Valentina")

		assert.NoError(t, err)
		assert.Equal(t, expected, user)
	})
}

func TestUserUseCase_Update(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		stored := &userDomain.User{ID: userID, Name: "Ana", Role: userDomain.RoleBidder, Score: 5}
		mockRepo.EXPECT().
			Get(mock.Anything, userID).
			Return(stored, nil).
			Once()
		mockRepo.EXPECT().
			Update(mock.Anything, mock.AnythingOfType("*domain.User")).
			Return(nil).
			Once()

		user := &userDomain.User{ID: userID, Name: "Ana Maria", Role: userDomain.RoleBidder, Score: 7}
		err := uc.Update(ctx, user)

		assert.NoError(t, err)
		assert.Equal(t, "Ana Maria", user.Name)
		assert.Equal(t, 7.0, user.Score)
		assert.Equal(t, testNow, user.UpdatedAt)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		mockRepo.EXPECT().
			Get(mock.Anything, userID).
			Return(nil, userDomain.ErrUserNotFound).
			Once()

		user := &userDomain.User{ID: userID, Name: "Ana Maria", Role: userDomain.RoleBidder, Score: 7}
		err := uc.Update(ctx, user)

		assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("InvalidUser", func(t *testing.T) {
		mockRepo := mocks.NewMockUserRepository(t)
		uc := newTestUserUseCase(mockRepo, 1)

		user := &userDomain.User{ID: userID, Name: "ana", Role: userDomain.RoleBidder, Score: 7}
		err := uc.Update(ctx, user)

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}
