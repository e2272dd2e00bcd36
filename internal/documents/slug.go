package documents

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// slugFor returns the document slug. A raw `slug` attribute wins, either as a
// plain string or as a `{"current": "..."}` object; a raw slug of any other
// shape yields "". Without one the slug is derived from title, and
// placeholder titles never produce a slug.
func slugFor(attrs Attributes, title string) string {
	if raw, ok := attrs["slug"]; ok {
		return rawSlug(raw)
	}
	if title == "" || title == UntitledPlaceholder {
		return ""
	}
	normalized, err := slug.Normalize(title)
	if err != nil || !IsValidSlug(normalized) {
		return ""
	}
	return normalized
}

func rawSlug(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case map[string]any:
		current, _ := typed["current"].(string)
		return strings.TrimSpace(current)
	default:
		return ""
	}
}

// IsValidSlug reports whether value matches the default slug rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
