package localize

import (
	"time"

	"github.com/goliatone/go-localize/internal/commands"
	coveragecmd "github.com/goliatone/go-localize/internal/commands/coverage"
	"github.com/goliatone/go-localize/internal/coverage"
	"github.com/goliatone/go-localize/internal/documents"
	"github.com/goliatone/go-localize/internal/i18n"
	"github.com/goliatone/go-localize/internal/telemetry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

type (
	Entry[T any]    = i18n.Entry[T]
	Field[T any]    = i18n.Field[T]
	Result[T any]   = i18n.Result[T]
	MetadataOptions = i18n.MetadataOptions
	Source          = i18n.Source

	Document          = documents.Document
	Block             = documents.Block
	RawPost           = documents.RawPost
	RawCategory       = documents.RawCategory
	RawAuthor         = documents.RawAuthor
	LocalizedPost     = documents.LocalizedPost
	LocalizedCategory = documents.LocalizedCategory
	LocalizedAuthor   = documents.LocalizedAuthor
	FallbackMeta      = documents.FallbackMeta
	LocalizeOptions   = documents.Options
	CorpusError       = documents.CorpusError

	CoverageReport       = coverage.Report
	CorpusReport         = coverage.CorpusReport
	AuditCoverageCommand = coveragecmd.AuditCoverageCommand
	AuditOption          = commands.HandlerOption[coveragecmd.AuditCoverageCommand]

	MissingTranslation = interfaces.MissingTranslation
	TelemetrySink      = interfaces.TelemetrySink
	TelemetrySummary   = telemetry.Summary
	NoOpSink           = telemetry.NoOpSink
	MemorySink         = telemetry.MemorySink
	MemoryOption       = telemetry.MemoryOption
	SampledSink        = telemetry.SampledSink
)

const (
	SourceRequested      = i18n.SourceRequested
	SourceFallback       = i18n.SourceFallback
	SourceFirstAvailable = i18n.SourceFirstAvailable
	SourceUndefined      = i18n.SourceUndefined
)

// WithAuditTimeout bounds an audit run. Zero disables the timeout.
func WithAuditTimeout(timeout time.Duration) AuditOption {
	return commands.WithTimeout[AuditCoverageCommand](timeout)
}

// NewMemorySink builds an in-memory sink, typically scoped to one request with
// WithRequestSink.
func NewMemorySink(opts ...MemoryOption) *MemorySink {
	return telemetry.NewMemorySink(opts...)
}

// WithCapacity bounds a memory sink to its newest n entries.
func WithCapacity(n int) MemoryOption {
	return telemetry.WithCapacity(n)
}

// NewSampledSink forwards every nth entry to inner.
func NewSampledSink(inner TelemetrySink, every int) *SampledSink {
	return telemetry.NewSampledSink(inner, every)
}

// SummarizeTelemetry groups entries by field and requested locale.
func SummarizeTelemetry(entries []MissingTranslation) TelemetrySummary {
	return telemetry.Summarize(entries)
}

// Resolve picks the value for locale, falling back to english and then to
// the first entry.
func Resolve[T any](field Field[T], locale string) (T, bool) {
	return i18n.Resolve(field, locale)
}

// ResolveFallback is Resolve with an explicit fallback locale.
func ResolveFallback[T any](field Field[T], locale, fallback string) (T, bool) {
	return i18n.ResolveFallback(field, locale, fallback)
}

// ResolveOr is ResolveFallback returning def when nothing resolves.
func ResolveOr[T any](field Field[T], locale, fallback string, def T) T {
	return i18n.ResolveOr(field, locale, fallback, def)
}

// ResolveWithMetadata is Resolve that also reports which tier matched.
func ResolveWithMetadata[T any](field Field[T], locale string, opts MetadataOptions) Result[T] {
	return i18n.ResolveWithMetadata(field, locale, opts)
}

// HasTranslation reports a direct match for locale.
func HasTranslation[T any](field Field[T], locale string) bool {
	return i18n.HasTranslation(field, locale)
}

// Decode validates and decodes one raw CMS document.
func Decode(data []byte) (Document, error) {
	return documents.Decode(data)
}

// DecodeCorpus decodes a JSON array of raw CMS documents. Undecodable entries
// are skipped and reported through a *CorpusError next to the valid documents.
func DecodeCorpus(data []byte) ([]Document, error) {
	return documents.DecodeCorpus(data)
}

// LocalizePost resolves a post without a module: no telemetry unless opts carries a sink.
func LocalizePost(raw *RawPost, locale string, opts LocalizeOptions) *LocalizedPost {
	return documents.LocalizePost(raw, locale, opts)
}

// LocalizeCategory resolves a category without a module.
func LocalizeCategory(raw *RawCategory, locale string, opts LocalizeOptions) *LocalizedCategory {
	return documents.LocalizeCategory(raw, locale, opts)
}

// LocalizeAuthor resolves an author without a module.
func LocalizeAuthor(raw *RawAuthor, locale string, opts LocalizeOptions) *LocalizedAuthor {
	return documents.LocalizeAuthor(raw, locale, opts)
}

// PostCoverage reports direct translation coverage of a post.
func PostCoverage(raw *RawPost, locale string) CoverageReport {
	return coverage.ForPost(raw, locale)
}

// CategoryCoverage reports direct translation coverage of a category.
func CategoryCoverage(raw *RawCategory, locale string) CoverageReport {
	return coverage.ForCategory(raw, locale)
}

// AuthorCoverage reports direct translation coverage of an author.
func AuthorCoverage(raw *RawAuthor, locale string) CoverageReport {
	return coverage.ForAuthor(raw, locale)
}
