package records

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateProjectUpgradesLegacyDescription(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"title":       "Scarf",
		"description": "  Chain 30, dc until 1.5m  ",
	}

	out, changed := MigrateProject(doc)
	require.True(t, changed)
	assert.NotContains(t, out, "description")

	sections, ok := out["sections"].([]any)
	require.True(t, ok)
	require.Len(t, sections, 1)
	first := sections[0].(map[string]any)
	assert.Equal(t, "Overview", first["name"])
	assert.Equal(t, "Chain 30, dc until 1.5m", first["description"])
	assert.Equal(t, "", first["image"])

	// Source document is untouched.
	assert.Contains(t, doc, "description")
}

func TestMigrateProjectIsIdempotent(t *testing.T) {
	t.Parallel()

	out, changed := MigrateProject(map[string]any{"title": "Scarf", "description": "rows"})
	require.True(t, changed)

	again, changed := MigrateProject(out)
	assert.False(t, changed)
	assert.Equal(t, out, again)
}

func TestMigrateProjectWithNeitherShapeGetsEmptySection(t *testing.T) {
	t.Parallel()

	out, changed := MigrateProject(map[string]any{"title": "Blank"})
	require.True(t, changed)
	sections := out["sections"].([]any)
	require.Len(t, sections, 1)
	assert.Equal(t, "", sections[0].(map[string]any)["description"])
}

func TestMigrateTutorialFetchesStoragePath(t *testing.T) {
	t.Parallel()

	fetched := []string{}
	fetch := func(path string) (string, error) {
		fetched = append(fetched, path)
		return "data:image/png;base64,CCCC", nil
	}

	doc := map[string]any{
		"name": "Double crochet",
		"image": map[string]any{
			"photo":  "gs://bucket/Tutorials/dc/photo.png",
			"symbol": "gs://bucket/Tutorials/dc/dc.png",
		},
	}

	out, changed, err := MigrateTutorial(doc, fetch)
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, []string{"gs://bucket/Tutorials/dc/dc.png"}, fetched, "symbol wins over photo")
	assert.Equal(t, "data:image/png;base64,CCCC", out["image"])
	assert.Equal(t, doc["image"], out["image_original"])
}

func TestMigrateTutorialAlreadyFlatIsNoOp(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"name": "Slip stitch", "image": "data:image/png;base64,DDDD"}
	out, changed, err := MigrateTutorial(doc, nil)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, doc, out)
}

func TestMigrateTutorialInlineSymbolSkipsFetch(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"name":  "Chain",
		"image": map[string]any{"symbol": "data:image/png;base64,EEEE"},
	}
	out, changed, err := MigrateTutorial(doc, func(string) (string, error) {
		t.Fatal("fetch called for an already-inline value")
		return "", nil
	})
	require.NoError(t, err)
	require.True(t, changed)
	assert.Equal(t, "data:image/png;base64,EEEE", out["image"])
}

func TestMigrateTutorialFetchFailureLeavesDocUntouched(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"name":  "Treble",
		"image": map[string]any{"symbol": "gs://bucket/Tutorials/tr/tr.png"},
	}
	_, changed, err := MigrateTutorial(doc, func(string) (string, error) {
		return "", errors.New("object not found")
	})
	assert.Error(t, err)
	assert.False(t, changed)
	_, stillNested := doc["image"].(map[string]any)
	assert.True(t, stillNested)
}
