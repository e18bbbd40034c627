package repository

import (
	"context"
	"testing"

	"yarnhog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, repo, "annab")

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "annab", got.Username)

	byName, err := repo.GetByUsername(ctx, "annab")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, user.ID, byName.ID)

	byEmail, err := repo.GetByEmail(ctx, "annab@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
}

func TestUserRepository_GetByUsernameMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	got, err := repo.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got, "a missing username is not an error, it is availability")
}

func TestUserRepository_CreateDuplicateUsernameConflicts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createUser(t, repo, "annab")

	err := repo.Create(ctx, &models.User{
		Username: "annab",
		Email:    "other@example.com",
		Password: "hashed",
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 404)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_GetByIDWithProjects(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	projects := NewProjectRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "maker")
	for _, title := range []string{"Scarf", "Hat", "Mittens"} {
		require.NoError(t, projects.Create(ctx, &models.Project{Title: title, UserID: user.ID}))
	}

	got, err := users.GetByIDWithProjects(ctx, user.ID, 2)
	require.NoError(t, err)
	assert.Len(t, got.Projects, 2)
}
