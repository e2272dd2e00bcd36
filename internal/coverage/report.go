package coverage

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-localize/internal/documents"
)

// ErrUnsupportedDocument is returned by ForDocument for documents without a schema.
var ErrUnsupportedDocument = errors.New("coverage: unsupported document")

// Report describes how many schema fields of a document carry a direct
// translation for a locale.
type Report struct {
	TranslatedFields   []string `json:"translatedFields"`
	MissingFields      []string `json:"missingFields"`
	CoveragePercentage float64  `json:"coveragePercentage"`
	IsFullyTranslated  bool     `json:"isFullyTranslated"`
}

// Total returns the number of schema fields inspected.
func (r Report) Total() int {
	return len(r.TranslatedFields) + len(r.MissingFields)
}

// ForPost reports direct translation coverage of a post. A nil post reports
// every field missing.
func ForPost(post *documents.RawPost, locale string) Report {
	return analyze(documents.PostSchema, post, locale)
}

// ForCategory reports direct translation coverage of a category.
func ForCategory(category *documents.RawCategory, locale string) Report {
	return analyze(documents.CategorySchema, category, locale)
}

// ForAuthor reports direct translation coverage of an author.
func ForAuthor(author *documents.RawAuthor, locale string) Report {
	return analyze(documents.AuthorSchema, author, locale)
}

// ForDocument dispatches on the document kind.
func ForDocument(doc documents.Document, locale string) (Report, error) {
	if doc == nil {
		return Report{}, ErrUnsupportedDocument
	}
	schema, ok := documents.SchemaFor(doc.Kind())
	if !ok {
		return Report{}, fmt.Errorf("%w: %s", ErrUnsupportedDocument, doc.Kind())
	}
	return analyze(schema, doc, locale), nil
}

// analyze never applies fallback: a field resolvable only through the
// fallback locale still counts as missing.
func analyze(schema documents.Schema, doc documents.Document, locale string) Report {
	report := Report{
		TranslatedFields: []string{},
		MissingFields:    []string{},
	}
	for _, name := range schema.FieldNames() {
		if doc.HasTranslation(name, locale) {
			report.TranslatedFields = append(report.TranslatedFields, name)
			continue
		}
		report.MissingFields = append(report.MissingFields, name)
	}
	report.CoveragePercentage = percentage(len(report.TranslatedFields), report.Total())
	report.IsFullyTranslated = len(report.MissingFields) == 0
	return report
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(part) / float64(total) * 100
}
