package coverage

import (
	"context"
	"slices"

	"github.com/goliatone/go-localize/internal/documents"
	"github.com/goliatone/go-localize/internal/identity"
	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/pkg/interfaces"
	"github.com/google/uuid"
)

// DocumentReport pairs a document with its coverage report.
type DocumentReport struct {
	DocumentID string         `json:"documentId"`
	Kind       documents.Kind `json:"kind"`
	Report
}

// CorpusReport aggregates coverage over many documents for one locale.
type CorpusReport struct {
	RunID              uuid.UUID        `json:"runId"`
	Locale             string           `json:"locale"`
	Documents          []DocumentReport `json:"documents"`
	TotalDocuments     int              `json:"totalDocuments"`
	FullyTranslated    int              `json:"fullyTranslated"`
	TotalFields        int              `json:"totalFields"`
	TranslatedFields   int              `json:"translatedFields"`
	CoveragePercentage float64          `json:"coveragePercentage"`
	MissingByField     map[string]int   `json:"missingByField"`
	// Skipped lists corpus entries that could not be ingested.
	Skipped []SkippedDocument `json:"skipped,omitempty"`
}

// SkippedDocument is a corpus entry dropped at ingestion.
type SkippedDocument struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// WithSkipped returns r with the entries err reports as skipped by a partial
// corpus decode. Other errors leave r unchanged.
func (r CorpusReport) WithSkipped(err error) CorpusReport {
	items := documents.SkippedItems(err)
	if len(items) == 0 {
		return r
	}
	r.Skipped = make([]SkippedDocument, len(items))
	for i, item := range items {
		r.Skipped[i] = SkippedDocument{Index: item.Index, Reason: item.Err.Error()}
	}
	return r
}

// Incomplete returns the document reports with at least one missing field.
func (r CorpusReport) Incomplete() []DocumentReport {
	out := make([]DocumentReport, 0, len(r.Documents))
	for _, doc := range r.Documents {
		if !doc.IsFullyTranslated {
			out = append(out, doc)
		}
	}
	return out
}

// Corpus reports coverage for every supported document in docs. Unsupported
// documents are skipped.
func Corpus(docs []documents.Document, locale string) CorpusReport {
	report := CorpusReport{
		Locale:         locale,
		Documents:      make([]DocumentReport, 0, len(docs)),
		MissingByField: map[string]int{},
	}
	ids := make([]string, 0, len(docs))
	for _, doc := range docs {
		docReport, err := ForDocument(doc, locale)
		if err != nil {
			continue
		}
		ids = append(ids, doc.DocumentID())
		report.Documents = append(report.Documents, DocumentReport{
			DocumentID: doc.DocumentID(),
			Kind:       doc.Kind(),
			Report:     docReport,
		})
		report.TotalFields += docReport.Total()
		report.TranslatedFields += len(docReport.TranslatedFields)
		if docReport.IsFullyTranslated {
			report.FullyTranslated++
		}
		for _, field := range docReport.MissingFields {
			report.MissingByField[field]++
		}
	}
	report.TotalDocuments = len(report.Documents)
	report.CoveragePercentage = percentage(report.TranslatedFields, report.TotalFields)
	report.RunID = identity.CorpusRunUUID(locale, ids)
	return report
}

// Analyzer runs corpus reports and logs a summary of each run.
type Analyzer struct {
	logger interfaces.Logger
	kinds  []documents.Kind
}

// AnalyzerOption customises an Analyzer.
type AnalyzerOption func(*Analyzer)

// WithLogger sets the logger used for run summaries.
func WithLogger(logger interfaces.Logger) AnalyzerOption {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithKinds restricts the analyzer to the given document kinds.
func WithKinds(kinds ...documents.Kind) AnalyzerOption {
	return func(a *Analyzer) {
		a.kinds = append([]documents.Kind(nil), kinds...)
	}
}

// NewAnalyzer constructs an analyzer over every supported kind.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{logger: logging.NoOp()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze filters docs by the configured kinds and reports their coverage.
func (a *Analyzer) Analyze(ctx context.Context, docs []documents.Document, locale string) CorpusReport {
	if len(a.kinds) > 0 {
		filtered := make([]documents.Document, 0, len(docs))
		for _, doc := range docs {
			if doc != nil && slices.Contains(a.kinds, doc.Kind()) {
				filtered = append(filtered, doc)
			}
		}
		docs = filtered
	}

	report := Corpus(docs, locale)

	logger := a.logger
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	logger.Info("coverage.completed",
		"run_id", report.RunID.String(),
		"locale", locale,
		"documents", report.TotalDocuments,
		"fully_translated", report.FullyTranslated,
		"coverage_percentage", report.CoveragePercentage,
	)
	for _, doc := range report.Incomplete() {
		logger.Debug("coverage.incomplete",
			"document_id", doc.DocumentID,
			"document_type", string(doc.Kind),
			"missing_fields", doc.MissingFields,
		)
	}
	return report
}
