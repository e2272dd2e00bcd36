package coveragecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-localize/internal/documents"
)

const auditCoverageMessageType = "localize.coverage.audit"

var localeRequired = validation.NewError("localize.coverage.audit.locale_required", "locale is required")

// AuditCoverageCommand requests a translation coverage run over a corpus.
type AuditCoverageCommand struct {
	// Locale is the target locale checked for direct translations.
	Locale string `json:"locale"`
	// Kinds restricts the run to the given document types. Empty means all.
	Kinds []string `json:"kinds,omitempty"`
	// MinimumCoverage fails the run when corpus coverage falls below it (0-100).
	MinimumCoverage float64 `json:"minimum_coverage,omitempty"`
}

// Type implements command.Message.
func (AuditCoverageCommand) Type() string { return auditCoverageMessageType }

// Validate ensures the locale is present and kinds are supported.
func (cmd AuditCoverageCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Locale, validation.Required.ErrorObject(localeRequired), validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return localeRequired
			}
			return nil
		})),
		validation.Field(&cmd.Kinds, validation.Each(validation.In(kindValues()...).
			ErrorObject(validation.NewError("localize.coverage.audit.kind_invalid", "kind must be post, category or author")))),
		validation.Field(&cmd.MinimumCoverage, validation.Min(0.0), validation.Max(100.0)),
	)
}

// DocumentKinds converts the requested kinds.
func (cmd AuditCoverageCommand) DocumentKinds() []documents.Kind {
	kinds := make([]documents.Kind, 0, len(cmd.Kinds))
	for _, kind := range cmd.Kinds {
		kinds = append(kinds, documents.Kind(kind))
	}
	return kinds
}

func kindValues() []any {
	kinds := documents.Kinds()
	values := make([]any, len(kinds))
	for i, kind := range kinds {
		values[i] = string(kind)
	}
	return values
}
