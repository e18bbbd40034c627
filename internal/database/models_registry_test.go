package database

import (
	"testing"

	"yarnhog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPersistentModelsCoversDomain(t *testing.T) {
	registered := PersistentModels()
	assert.Len(t, registered, 10)
	assert.Contains(t, registered, &models.User{})
	assert.Contains(t, registered, &models.Project{})
	assert.Contains(t, registered, &models.ProjectSection{})
	assert.Contains(t, registered, &models.RowCounter{})
}
