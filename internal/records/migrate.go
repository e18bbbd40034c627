package records

import (
	"fmt"
	"strings"
)

// FetchFunc resolves a legacy storage path to an inline data URI. The
// migration injects it so tests can run without a blob store.
type FetchFunc func(path string) (string, error)

// MigrateProject upgrades a legacy flat-description project document to
// the structured-sections shape. It returns the migrated copy and whether
// anything changed; running it on an already-migrated document is a no-op.
func MigrateProject(doc map[string]any) (map[string]any, bool) {
	if sections, ok := doc["sections"].([]any); ok && len(sections) > 0 {
		return doc, false
	}

	out := cloneDoc(doc)
	description := strings.TrimSpace(str(doc, "description"))
	out["sections"] = []any{
		map[string]any{
			"name":        "Overview",
			"description": description,
			"image":       "",
		},
	}
	delete(out, "description")
	return out, true
}

// MigrateTutorial flattens a legacy {photo, symbol} tutorial image into a
// single inline image field, preferring the chart symbol. Storage paths
// are resolved through fetch; values that are already data URIs pass
// through untouched. The original pair is kept under image_original so a
// bad run can be reverted.
func MigrateTutorial(doc map[string]any, fetch FetchFunc) (map[string]any, bool, error) {
	img, ok := doc["image"].(map[string]any)
	if !ok {
		return doc, false, nil
	}

	source := str(img, "symbol")
	if source == "" {
		source = str(img, "photo")
	}

	inline := source
	if source != "" && !strings.HasPrefix(source, "data:") {
		if fetch == nil {
			return doc, false, fmt.Errorf("tutorial %q: no fetcher for storage path %q", str(doc, "name"), source)
		}
		fetched, err := fetch(source)
		if err != nil {
			return doc, false, fmt.Errorf("tutorial %q: fetch %q: %w", str(doc, "name"), source, err)
		}
		inline = fetched
	}

	out := cloneDoc(doc)
	out["image"] = inline
	out["image_original"] = img
	return out, true, nil
}

func cloneDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
