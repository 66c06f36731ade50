package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
	userMocks "github.com/Elena0909/AuctionsProduced/internal/user/usecase/mocks"
)

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	userID := uuid.Must(uuid.NewV7())

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := userMocks.NewMockUserUseCase(t)

		mockUseCase.EXPECT().
			Create(ctx, mock.MatchedBy(func(user *userDomain.User) bool {
				return user.Name == "Valentina" && user.Role == userDomain.RoleOfferer
			})).
			RunAndReturn(func(_ context.Context, user *userDomain.User) error {
				user.ID = userID
				return nil
			}).
			Once()

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "Valentina", "offerer", 5.0, "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), userID.String())
		require.Contains(t, out.String(), "Valentina")
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := userMocks.NewMockUserUseCase(t)

		mockUseCase.EXPECT().
			Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, user *userDomain.User) error {
				user.ID = userID
				return nil
			}).
			Once()

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "Andrei", "bidder", 0, "json", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), userID.String())
		require.Contains(t, out.String(), "{")
	})

	t.Run("usecase-error", func(t *testing.T) {
		mockUseCase := userMocks.NewMockUserUseCase(t)

		mockUseCase.EXPECT().
			Create(ctx, mock.Anything).
			Return(userDomain.ErrUserAlreadyExists).
			Once()

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "Valentina", "offerer", 5.0, "text", io)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create user")
	})
}
