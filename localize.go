package localize

import (
	"context"

	"github.com/goliatone/go-localize/internal/coverage"
	"github.com/goliatone/go-localize/internal/di"
	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/telemetry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Module represents the top level localization runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// LocalizePost resolves a raw post for locale using the module defaults.
func (m *Module) LocalizePost(ctx context.Context, raw *RawPost, locale string) *LocalizedPost {
	return m.container.Localizer().Post(ctx, raw, locale)
}

// LocalizeCategory resolves a raw category for locale using the module defaults.
func (m *Module) LocalizeCategory(ctx context.Context, raw *RawCategory, locale string) *LocalizedCategory {
	return m.container.Localizer().Category(ctx, raw, locale)
}

// LocalizeAuthor resolves a raw author for locale using the module defaults.
func (m *Module) LocalizeAuthor(ctx context.Context, raw *RawAuthor, locale string) *LocalizedAuthor {
	return m.container.Localizer().Author(ctx, raw, locale)
}

// Localize resolves any supported document. It returns nil for nil input.
func (m *Module) Localize(ctx context.Context, doc Document, locale string) any {
	return m.container.Localizer().Document(ctx, doc, locale)
}

// Coverage reports direct translation coverage of doc for locale.
func (m *Module) Coverage(doc Document, locale string) (CoverageReport, error) {
	return coverage.ForDocument(doc, locale)
}

// CorpusCoverage reports coverage across docs and logs a run summary.
func (m *Module) CorpusCoverage(ctx context.Context, docs []Document, locale string) CorpusReport {
	return m.container.CoverageAnalyzer().Analyze(ctx, docs, locale)
}

// AuditCoverage runs the coverage audit command over the configured corpus
// source and returns its report. A run that misses cmd.MinimumCoverage still
// returns the report together with the threshold error.
func (m *Module) AuditCoverage(ctx context.Context, cmd AuditCoverageCommand, opts ...AuditOption) (CorpusReport, error) {
	var report CorpusReport
	handler := m.container.NewAuditCoverageHandler(func(_ context.Context, r coverage.CorpusReport) error {
		report = r
		return nil
	}, opts...)
	err := handler.Execute(ctx, cmd)
	return report, err
}

// Locales returns the configured locales.
func (m *Module) Locales() []string {
	return append([]string(nil), m.container.Locales().Locales...)
}

// Telemetry returns the module-wide sink.
func (m *Module) Telemetry() interfaces.TelemetrySink {
	return m.container.TelemetrySink()
}

// TelemetrySummary aggregates the module sink log by field and requested locale.
func (m *Module) TelemetrySummary() TelemetrySummary {
	return telemetry.Summarize(m.container.TelemetrySink().Log())
}

// WithLogFields attaches structured fields picked up by context-aware loggers.
func WithLogFields(ctx context.Context, fields map[string]any) context.Context {
	return logging.ContextWithFields(ctx, fields)
}

// WithRequestSink scopes sink to the work done with the returned context.
func WithRequestSink(ctx context.Context, sink interfaces.TelemetrySink) context.Context {
	return telemetry.ContextWithSink(ctx, sink)
}
