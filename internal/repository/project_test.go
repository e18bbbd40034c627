package repository

import (
	"context"
	"testing"

	"yarnhog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_SectionsOrderedByPosition(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	projects := NewProjectRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "maker")

	project := &models.Project{
		Title:  "Granny square blanket",
		UserID: user.ID,
		Sections: []models.ProjectSection{
			{Position: 0, Name: "Squares", Description: "Make 48 squares"},
			{Position: 1, Name: "Joining", Description: "Whip stitch"},
		},
	}
	require.NoError(t, projects.Create(ctx, project))

	got, err := projects.GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "Squares", got.Sections[0].Name)
	assert.Equal(t, "Joining", got.Sections[1].Name)
}

func TestProjectRepository_ReplaceSections(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	projects := NewProjectRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "maker")
	project := &models.Project{
		Title:  "Cardigan",
		UserID: user.ID,
		Sections: []models.ProjectSection{
			{Position: 0, Name: "Back", Description: "Cast on 90"},
		},
	}
	require.NoError(t, projects.Create(ctx, project))

	require.NoError(t, projects.ReplaceSections(ctx, project.ID, []models.ProjectSection{
		{Name: "Back", Description: "Cast on 90"},
		{Name: "Fronts", Description: "Two panels"},
		{Name: "Sleeves", Description: "In the round"},
	}))

	got, err := projects.GetByID(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, got.Sections, 3)
	for i, name := range []string{"Back", "Fronts", "Sleeves"} {
		assert.Equal(t, name, got.Sections[i].Name)
		assert.Equal(t, i, got.Sections[i].Position)
	}
}

func TestProjectRepository_ListPublicExcludesPrivate(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	projects := NewProjectRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "maker")
	require.NoError(t, projects.Create(ctx, &models.Project{Title: "Public scarf", UserID: user.ID, IsPublic: true}))
	require.NoError(t, projects.Create(ctx, &models.Project{Title: "Secret gift", UserID: user.ID, IsPublic: false}))

	got, err := projects.ListPublic(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Public scarf", got[0].Title)
}
