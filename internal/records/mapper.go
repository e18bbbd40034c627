// Package records maps raw exported documents into normalized view
// records. The corpus of stored documents spans two historical schema
// generations (projects with a flat description vs. structured sections,
// tutorials with a flat image vs. a photo/symbol pair); the mapper
// tolerates every observed shape and fills explicit defaults for missing
// optional fields so consumers never branch on field presence.
package records

import (
	"time"
)

// ProjectRecord is the normalized view of a project document.
type ProjectRecord struct {
	ID        string
	Title     string
	OwnerID   string
	IsPublic  bool
	Image     string
	Materials string
	Sections  []SectionRecord
}

// SectionRecord is one step of a structured project.
type SectionRecord struct {
	Name        string
	Description string
	Image       string
}

// TutorialRecord is the normalized view of a tutorial document.
type TutorialRecord struct {
	ID          string
	Name        string
	Description string
	Shortcut    string
	VideoURL    string
	Photo       string
	Symbol      string
}

// CommentRecord is one embedded comment on a post.
type CommentRecord struct {
	OwnerID   string
	OwnerName string
	Text      string
	CreatedAt time.Time
}

// PostRecord is the normalized view of a community post document.
type PostRecord struct {
	ID           string
	Title        string
	Content      string
	Image        string
	OwnerID      string
	OwnerName    string
	ProjectID    string
	ProjectTitle string
	Likes        []string
	Comments     []CommentRecord
	Ratings      map[string]int
	CreatedAt    time.Time
}

// MaterialRecord is the normalized view of a stash material document.
type MaterialRecord struct {
	ID          string
	OwnerID     string
	Kind        string
	Name        string
	Color       string
	Weight      string
	Length      string
	Thickness   string
	Composition string
	Size        string
	Material    string
	Category    string
	Quantity    string
	Notes       string
	CreatedAt   time.Time
}

// UserRecord is the normalized view of a user profile document.
type UserRecord struct {
	ID       string
	Username string
	Email    string
	Avatar   string
}

// MapProject normalizes a raw project document. Legacy documents carry a
// single free-text description; it becomes a synthetic "Overview" section
// so rendering code sees one shape.
func MapProject(id string, doc map[string]any) ProjectRecord {
	rec := ProjectRecord{
		ID:        id,
		Title:     str(doc, "title"),
		OwnerID:   str(doc, "user_id"),
		IsPublic:  boolean(doc, "is_public", true),
		Image:     str(doc, "image"),
		Materials: str(doc, "materials"),
	}

	if raw, ok := doc["sections"].([]any); ok {
		for _, entry := range raw {
			section, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			rec.Sections = append(rec.Sections, SectionRecord{
				Name:        str(section, "name"),
				Description: str(section, "description"),
				Image:       str(section, "image"),
			})
		}
	}

	if len(rec.Sections) == 0 {
		if description := str(doc, "description"); description != "" {
			rec.Sections = []SectionRecord{{Name: "Overview", Description: description}}
		}
	}

	return rec
}

// MapTutorial normalizes a raw tutorial document, accepting both the flat
// image string and the legacy {photo, symbol} pair.
func MapTutorial(id string, doc map[string]any) TutorialRecord {
	rec := TutorialRecord{
		ID:          id,
		Name:        str(doc, "name"),
		Description: str(doc, "description"),
		Shortcut:    str(doc, "shortcut"),
		VideoURL:    str(doc, "video"),
	}

	switch img := doc["image"].(type) {
	case string:
		rec.Photo = img
	case map[string]any:
		rec.Photo = str(img, "photo")
		rec.Symbol = str(img, "symbol")
	}

	return rec
}

// MapPost normalizes a raw community post document.
func MapPost(id string, doc map[string]any) PostRecord {
	rec := PostRecord{
		ID:           id,
		Title:        str(doc, "title"),
		Content:      str(doc, "content"),
		Image:        str(doc, "image"),
		OwnerID:      str(doc, "user_id"),
		OwnerName:    str(doc, "user_name"),
		ProjectID:    str(doc, "project_id"),
		ProjectTitle: str(doc, "project_title"),
		Likes:        strSlice(doc, "likes"),
		Ratings:      map[string]int{},
		CreatedAt:    timestamp(doc, "createdAt"),
	}

	if raw, ok := doc["comments"].([]any); ok {
		for _, entry := range raw {
			comment, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			rec.Comments = append(rec.Comments, CommentRecord{
				OwnerID:   str(comment, "user_id"),
				OwnerName: str(comment, "user_name"),
				Text:      str(comment, "text"),
				CreatedAt: timestamp(comment, "createdAt"),
			})
		}
	}

	if raw, ok := doc["ratings"].(map[string]any); ok {
		for userID, value := range raw {
			score := intVal(value)
			if score >= 1 && score <= 5 {
				rec.Ratings[userID] = score
			}
		}
	}

	return rec
}

// MapMaterial normalizes a raw material document. Unknown kinds default
// to "other".
func MapMaterial(id string, doc map[string]any) MaterialRecord {
	kind := str(doc, "type")
	switch kind {
	case "yarn", "hook", "other":
	default:
		kind = "other"
	}
	return MaterialRecord{
		ID:          id,
		OwnerID:     str(doc, "userId"),
		Kind:        kind,
		Name:        str(doc, "name"),
		Color:       str(doc, "color"),
		Weight:      str(doc, "weight"),
		Length:      str(doc, "length"),
		Thickness:   str(doc, "thickness"),
		Composition: str(doc, "composition"),
		Size:        str(doc, "size"),
		Material:    str(doc, "material"),
		Category:    str(doc, "category"),
		Quantity:    str(doc, "quantity"),
		Notes:       str(doc, "notes"),
		CreatedAt:   timestamp(doc, "createdAt"),
	}
}

// MapUser normalizes a raw user profile document.
func MapUser(id string, doc map[string]any) UserRecord {
	return UserRecord{
		ID:       id,
		Username: str(doc, "username"),
		Email:    str(doc, "email"),
		Avatar:   str(doc, "avatarUrl"),
	}
}

func str(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

func boolean(doc map[string]any, key string, fallback bool) bool {
	if v, ok := doc[key].(bool); ok {
		return v
	}
	return fallback
}

func strSlice(doc map[string]any, key string) []string {
	raw, ok := doc[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func intVal(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func timestamp(doc map[string]any, key string) time.Time {
	switch v := doc[key].(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts
		}
	case float64:
		return time.Unix(int64(v), 0).UTC()
	}
	return time.Time{}
}
