package di

import (
	"context"
	"fmt"
	"time"

	"github.com/goliatone/go-localize/internal/commands"
	coveragecmd "github.com/goliatone/go-localize/internal/commands/coverage"
	"github.com/goliatone/go-localize/internal/coverage"
	"github.com/goliatone/go-localize/internal/documents"
	"github.com/goliatone/go-localize/internal/i18n"
	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/logging/console"
	"github.com/goliatone/go-localize/internal/logging/gologger"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
	"github.com/goliatone/go-localize/internal/telemetry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Container wires the localization runtime from a validated config.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	sink           interfaces.TelemetrySink
	clock          func() time.Time
	corpus         coveragecmd.CorpusSource
	locales        i18n.Config

	localizer *documents.Localizer
	analyzer  *coverage.Analyzer
	audit     *coveragecmd.AuditCoverageHandler

	auditReport coveragecmd.ReportFunc
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithTelemetrySink overrides the sink built from Config.Telemetry.
func WithTelemetrySink(sink interfaces.TelemetrySink) Option {
	return func(c *Container) {
		c.sink = sink
	}
}

// WithClock overrides the clock used for telemetry timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// WithCorpusSource sets the corpus audited by the coverage command.
func WithCorpusSource(source coveragecmd.CorpusSource) Option {
	return func(c *Container) {
		c.corpus = source
	}
}

// WithAuditReport receives every report produced by the container's audit
// handlers.
func WithAuditReport(report coveragecmd.ReportFunc) Option {
	return func(c *Container) {
		c.auditReport = report
	}
}

// NewContainer validates cfg and builds every service. An injected telemetry
// sink replaces Config.Telemetry.Sink for validation purposes.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	c := &Container{
		Config:  cfg,
		locales: i18n.FromModuleConfig(cfg.FallbackLocale, cfg.Locales),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	validate := cfg.Validate
	if c.sink != nil {
		validate = cfg.ValidateInjectedSink
	}
	if err := validate(); err != nil {
		return nil, err
	}

	if c.loggerProvider == nil && cfg.Features.Logger {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}
	if c.sink == nil {
		c.sink = buildSink(cfg.Telemetry, logging.TelemetryLogger(c.loggerProvider))
	}
	if c.clock == nil {
		c.clock = time.Now
	}
	if c.corpus == nil {
		c.corpus = documents.StaticSource(nil)
	}

	c.localizer = documents.NewLocalizer(
		documents.Defaults{
			FallbackLocale:  c.locales.FallbackLocale,
			TrackFallbacks:  cfg.Localization.TrackFallbacks,
			IncludeMetadata: cfg.Localization.IncludeMetadata,
		},
		documents.WithSink(c.sink),
		documents.WithLogger(logging.DocumentsLogger(c.loggerProvider)),
		documents.WithClock(c.clock),
	)
	c.analyzer = coverage.NewAnalyzer(coverage.WithLogger(logging.CoverageLogger(c.loggerProvider)))
	c.audit = c.NewAuditCoverageHandler(nil)

	logging.ModuleLogger(c.loggerProvider, "").Debug("container.configured",
		"fallback_locale", cfg.FallbackLocale,
		"telemetry_sink", fmt.Sprintf("%T", c.sink),
		"track_fallbacks", cfg.Localization.TrackFallbacks,
	)
	return c, nil
}

// Locales returns the configured locale set and normalized fallback.
func (c *Container) Locales() i18n.Config {
	return c.locales
}

// LoggerProvider returns the configured provider, or nil when logging is off.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Logger returns a module logger under the localize namespace.
func (c *Container) Logger(module string) interfaces.Logger {
	if module == "" {
		return logging.ModuleLogger(c.loggerProvider, "")
	}
	return logging.ModuleLogger(c.loggerProvider, "localize."+module)
}

// TelemetrySink returns the module-wide sink.
func (c *Container) TelemetrySink() interfaces.TelemetrySink {
	return c.sink
}

// Localizer returns the document localizer bound to the module defaults.
func (c *Container) Localizer() *documents.Localizer {
	return c.localizer
}

// CoverageAnalyzer returns the corpus coverage analyzer.
func (c *Container) CoverageAnalyzer() *coverage.Analyzer {
	return c.analyzer
}

// AuditCoverageHandler returns the command handler for coverage audits over
// the configured corpus source.
func (c *Container) AuditCoverageHandler() *coveragecmd.AuditCoverageHandler {
	return c.audit
}

// NewAuditCoverageHandler builds an audit handler over the configured corpus
// source. report runs after the WithAuditReport callback, if any.
func (c *Container) NewAuditCoverageHandler(report coveragecmd.ReportFunc, opts ...commands.HandlerOption[coveragecmd.AuditCoverageCommand]) *coveragecmd.AuditCoverageHandler {
	return coveragecmd.NewAuditCoverageHandler(c.corpus, c.Logger("commands.coverage"), chainReports(c.auditReport, report), opts...)
}

func chainReports(fns ...coveragecmd.ReportFunc) coveragecmd.ReportFunc {
	active := make([]coveragecmd.ReportFunc, 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			active = append(active, fn)
		}
	}
	if len(active) == 0 {
		return nil
	}
	return func(ctx context.Context, report coverage.CorpusReport) error {
		for _, fn := range active {
			if err := fn(ctx, report); err != nil {
				return err
			}
		}
		return nil
	}
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch runtimeconfig.NormalizeProvider(cfg.Provider) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}

func buildSink(cfg runtimeconfig.TelemetryConfig, logger interfaces.Logger) interfaces.TelemetrySink {
	if !cfg.Enabled {
		return telemetry.NoOpSink{}
	}
	var sink interfaces.TelemetrySink
	switch runtimeconfig.NormalizeSink(cfg.Sink) {
	case runtimeconfig.SinkMemory:
		sink = telemetry.NewMemorySink(telemetry.WithCapacity(cfg.Capacity))
	case runtimeconfig.SinkLogging:
		sink = telemetry.NewLoggingSink(logger)
	default:
		return telemetry.NoOpSink{}
	}
	if cfg.SampleEvery > 1 {
		sink = telemetry.NewSampledSink(sink, cfg.SampleEvery)
	}
	return sink
}
