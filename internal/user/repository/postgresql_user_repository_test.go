package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Elena0909/AuctionsProduced/internal/errors"
	"github.com/Elena0909/AuctionsProduced/internal/testutil"
	"github.com/Elena0909/AuctionsProduced/internal/user/domain"
)

func TestNewPostgreSQLUserRepository(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	uuid1 := uuid.Must(uuid.NewV7())
	user := &domain.User{
		ID:    uuid1,
		Name:  "Valentina",
		Role:  domain.RoleOfferer,
		Score: 5.0,
	}

	err := repo.Create(ctx, user)
	assert.NoError(t, err)

	// Verify the user was created
	createdUser, err := repo.Get(ctx, uuid1)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, createdUser.ID)
	assert.Equal(t, user.Name, createdUser.Name)
	assert.Equal(t, user.Role, createdUser.Role)
	assert.Equal(t, user.Score, createdUser.Score)
}

func TestPostgreSQLUserRepository_Create_DuplicateName(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  "Valentina",
		Role:  domain.RoleOfferer,
		Score: 5.0,
	}
	require.NoError(t, repo.Create(ctx, user))

	duplicate := &domain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  "Valentina",
		Role:  domain.RoleBidder,
		Score: 5.0,
	}
	err := repo.Create(ctx, duplicate)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, domain.ErrUserAlreadyExists))
}

func TestPostgreSQLUserRepository_Get_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	notFoundUUID := uuid.Must(uuid.NewV7())
	user, err := repo.Get(ctx, notFoundUUID)
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
}

func TestPostgreSQLUserRepository_GetByName(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	uuid1 := uuid.Must(uuid.NewV7())
	expectedUser := &domain.User{
		ID:    uuid1,
		Name:  "Andrei",
		Role:  domain.RoleBidder,
		Score: 5.0,
	}

	// Create the user first
	err := repo.Create(ctx, expectedUser)
	require.NoError(t, err)

	// Get the user by name
	user, err := repo.GetByName(ctx, "Andrei")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, expectedUser.ID, user.ID)
	assert.Equal(t, expectedUser.Name, user.Name)
	assert.Equal(t, expectedUser.Role, user.Role)
}

func TestPostgreSQLUserRepository_GetByName_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	user, err := repo.GetByName(ctx, "nobody")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
}

func TestPostgreSQLUserRepository_Update(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  "Valentina",
		Role:  domain.RoleOfferer,
		Score: 5.0,
	}
	require.NoError(t, repo.Create(ctx, user))

	user.Score = 7.5
	err := repo.Update(ctx, user)
	assert.NoError(t, err)

	updated, err := repo.Get(ctx, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 7.5, updated.Score)
}

func TestPostgreSQLUserRepository_Update_NotFound(t *testing.T) {
	testutil.SkipIfNoPostgres(t)

	db := testutil.SetupPostgresDB(t)
	defer testutil.TeardownDB(t, db)
	defer testutil.CleanupPostgresDB(t, db)

	repo := NewPostgreSQLUserRepository(db)
	ctx := context.Background()

	user := &domain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  "Valentina",
		Role:  domain.RoleOfferer,
		Score: 5.0,
	}

	err := repo.Update(ctx, user)
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
}
