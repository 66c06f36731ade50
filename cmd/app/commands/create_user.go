package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	userDomain "github.com/Elena0909/AuctionsProduced/internal/user/domain"
	userUseCase "github.com/Elena0909/AuctionsProduced/internal/user/usecase"
)

// RunCreateUser registers a marketplace user from the command line. Outputs
// the stored user in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	users userUseCase.UserUseCase,
	logger *slog.Logger,
	name string,
	role string,
	score float64,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user",
		slog.String("name", name),
		slog.String("role", role),
	)

	user := &userDomain.User{
		Name:  name,
		Role:  userDomain.Role(role),
		Score: score,
	}

	if err := users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		encoder := json.NewEncoder(io.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any{
			"id":    user.ID,
			"name":  user.Name,
			"role":  user.Role,
			"score": user.Score,
		}); err != nil {
			return fmt.Errorf("failed to encode user: %w", err)
		}
	} else {
		_, _ = fmt.Fprintf(io.Writer, "User created\n")
		_, _ = fmt.Fprintf(io.Writer, "ID:    %s\n", user.ID)
		_, _ = fmt.Fprintf(io.Writer, "Name:  %s\n", user.Name)
		_, _ = fmt.Fprintf(io.Writer, "Role:  %s\n", user.Role)
		_, _ = fmt.Fprintf(io.Writer, "Score: %.1f\n", user.Score)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("name", name),
	)

	return nil
}
