package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// The materials field is a single free-text block. Fragments are split on
// semicolons; the app standardized on semicolons so commas stay usable
// inside a single item ("Cotton yarn, mercerized; 4mm hook").

// bulletGlyphs are list markers stripped from the start of a fragment.
var bulletGlyphs = []rune{'•', '-', '–', '—'}

// ordinalPrefix matches leading numeric list markers like "1. ", "2) ",
// "3- " but not numbers inside an item ("Hook 4mm").
var ordinalPrefix = regexp.MustCompile(`^\d+[.)-]\s+`)

// NormalizeMaterials parses a free-text materials block into an ordered,
// deduplicated list of display strings. The result is presentation-only
// (detail-screen chips) and is never written back to storage.
func NormalizeMaterials(text string) []string {
	fragments := strings.Split(text, ";")
	items := make([]string, 0, len(fragments))
	seen := make(map[string]struct{}, len(fragments))

	for _, fragment := range fragments {
		item := strings.TrimSpace(fragment)
		item = stripBullet(item)
		item = ordinalPrefix.ReplaceAllString(item, "")
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		items = append(items, item)
	}
	return items
}

// stripBullet removes a single leading bullet glyph and any whitespace
// after it.
func stripBullet(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	for _, glyph := range bulletGlyphs {
		if r == glyph {
			return strings.TrimSpace(s[size:])
		}
	}
	return s
}
