package commands

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("unsupported driver", func(t *testing.T) {
		err := RunMigrations(logger, "sqlite3", "auctions.db")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
		require.Contains(t, err.Error(), "sqlite3")
	})

	t.Run("malformed connection string", func(t *testing.T) {
		err := RunMigrations(logger, "postgres", "not-a-dsn")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})
}
