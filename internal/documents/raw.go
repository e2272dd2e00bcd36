package documents

import (
	"maps"

	"github.com/goliatone/go-localize/internal/i18n"
	"github.com/goliatone/go-localize/internal/validation"
)

// Block is one structured rich text node (a portable text block).
type Block = map[string]any

// Document is a raw, non-localized CMS document of any supported kind.
type Document interface {
	DocumentID() string
	Kind() Kind
	// HasTranslation reports a direct locale match for a schema field.
	// Unknown field names report false.
	HasTranslation(field, locale string) bool
}

// Attributes holds the non-localized attributes of a raw document. They are
// copied verbatim into the localized output.
type Attributes map[string]any

// Clone returns a shallow copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

// RawPost is an ingested post document.
type RawPost struct {
	ID               string
	Title            i18n.Field[string]
	SmallDescription i18n.Field[string]
	Body             i18n.Field[[]Block]
	Attributes       Attributes
	// Issues lists localized field entries dropped at ingestion.
	Issues []validation.ValidationIssue
}

func (p *RawPost) DocumentID() string {
	if p == nil {
		return ""
	}
	return p.ID
}

func (p *RawPost) Kind() Kind { return KindPost }

func (p *RawPost) HasTranslation(field, locale string) bool {
	if p == nil {
		return false
	}
	switch field {
	case FieldTitle:
		return i18n.HasTranslation(p.Title, locale)
	case FieldSmallDescription:
		return i18n.HasTranslation(p.SmallDescription, locale)
	case FieldBody:
		return i18n.HasTranslation(p.Body, locale)
	default:
		return false
	}
}

// RawCategory is an ingested category document.
type RawCategory struct {
	ID          string
	Title       i18n.Field[string]
	Description i18n.Field[string]
	Attributes  Attributes
	Issues      []validation.ValidationIssue
}

func (c *RawCategory) DocumentID() string {
	if c == nil {
		return ""
	}
	return c.ID
}

func (c *RawCategory) Kind() Kind { return KindCategory }

func (c *RawCategory) HasTranslation(field, locale string) bool {
	if c == nil {
		return false
	}
	switch field {
	case FieldTitle:
		return i18n.HasTranslation(c.Title, locale)
	case FieldDescription:
		return i18n.HasTranslation(c.Description, locale)
	default:
		return false
	}
}

// RawAuthor is an ingested author document.
type RawAuthor struct {
	ID         string
	Bio        i18n.Field[string]
	Attributes Attributes
	Issues     []validation.ValidationIssue
}

func (a *RawAuthor) DocumentID() string {
	if a == nil {
		return ""
	}
	return a.ID
}

func (a *RawAuthor) Kind() Kind { return KindAuthor }

func (a *RawAuthor) HasTranslation(field, locale string) bool {
	if a != nil && field == FieldBio {
		return i18n.HasTranslation(a.Bio, locale)
	}
	return false
}

// IssuesOf returns the ingestion issues recorded on doc.
func IssuesOf(doc Document) []validation.ValidationIssue {
	switch typed := doc.(type) {
	case *RawPost:
		if typed != nil {
			return typed.Issues
		}
	case *RawCategory:
		if typed != nil {
			return typed.Issues
		}
	case *RawAuthor:
		if typed != nil {
			return typed.Issues
		}
	}
	return nil
}

var (
	_ Document = (*RawPost)(nil)
	_ Document = (*RawCategory)(nil)
	_ Document = (*RawAuthor)(nil)
)
