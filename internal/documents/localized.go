package documents

import (
	"encoding/json"

	"github.com/goliatone/go-localize/internal/i18n"
)

// FallbackMeta lists which schema fields did not resolve to the requested locale.
type FallbackMeta struct {
	Locale         string                 `json:"locale"`
	FallbackFields []string               `json:"fallbackFields"`
	Sources        map[string]i18n.Source `json:"sources"`
}

// HasFallbacks reports whether any field used a non-direct source.
func (m *FallbackMeta) HasFallbacks() bool {
	return m != nil && len(m.FallbackFields) > 0
}

// LocalizedPost is a flat, render-ready post.
type LocalizedPost struct {
	ID               string
	Locale           string
	Title            string
	SmallDescription string
	Body             []Block
	// Slug is the raw slug attribute, or one derived from the title when the
	// raw document carried none.
	Slug       string
	Attributes Attributes
	Meta       *FallbackMeta
}

// LocalizedCategory is a flat, render-ready category.
type LocalizedCategory struct {
	ID          string
	Locale      string
	Title       string
	Description string
	Slug        string
	Attributes  Attributes
	Meta        *FallbackMeta
}

// LocalizedAuthor is a flat, render-ready author.
type LocalizedAuthor struct {
	ID         string
	Locale     string
	Bio        string
	Attributes Attributes
	Meta       *FallbackMeta
}

// MarshalJSON merges the resolved fields over the pass-through attributes.
func (p LocalizedPost) MarshalJSON() ([]byte, error) {
	out := flatten(p.Attributes, p.Meta, p.Slug)
	out[FieldTitle] = p.Title
	out[FieldSmallDescription] = p.SmallDescription
	out[FieldBody] = p.Body
	return json.Marshal(out)
}

func (c LocalizedCategory) MarshalJSON() ([]byte, error) {
	out := flatten(c.Attributes, c.Meta, c.Slug)
	out[FieldTitle] = c.Title
	out[FieldDescription] = c.Description
	return json.Marshal(out)
}

func (a LocalizedAuthor) MarshalJSON() ([]byte, error) {
	out := flatten(a.Attributes, a.Meta, "")
	out[FieldBio] = a.Bio
	return json.Marshal(out)
}

func flatten(attrs Attributes, meta *FallbackMeta, slug string) map[string]any {
	out := make(map[string]any, len(attrs)+5)
	for key, value := range attrs {
		out[key] = value
	}
	if _, ok := out["slug"]; !ok && slug != "" {
		out["slug"] = slug
	}
	if meta != nil {
		out[MetadataKey] = meta
	}
	return out
}
