package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsRegistered(t *testing.T) {
	registered := GetMigrations()
	require.NotEmpty(t, registered)

	assert.Equal(t, 1, registered[0].Version)
	assert.Equal(t, "init", registered[0].Name)
	assert.NotEmpty(t, registered[0].UpScript)
	assert.NotEmpty(t, registered[0].DownScript)

	for i := 1; i < len(registered); i++ {
		assert.Greater(t, registered[i].Version, registered[i-1].Version, "versions strictly increasing")
	}
}

func TestGetMigrationByVersion(t *testing.T) {
	m := GetMigrationByVersion(1)
	require.NotNil(t, m)
	assert.Equal(t, "000001_init", m.String())

	assert.Nil(t, GetMigrationByVersion(999999))
}

func TestValidateAppliedVersions(t *testing.T) {
	registered := []Migration{{Version: 1, Name: "init"}}

	assert.NoError(t, validateAppliedVersions(nil, registered))
	assert.NoError(t, validateAppliedVersions([]int{1}, registered))

	err := validateAppliedVersions([]int{1, 42}, registered)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "000042")
}
