package documents

import (
	"context"
	"time"

	"github.com/goliatone/go-localize/internal/i18n"
	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/internal/telemetry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Defaults are applied to every call made through a Localizer.
type Defaults struct {
	FallbackLocale  string
	TrackFallbacks  bool
	IncludeMetadata bool
}

// Localizer applies module defaults, a telemetry sink and logging around the
// package-level localize functions.
type Localizer struct {
	defaults Defaults
	sink     interfaces.TelemetrySink
	logger   interfaces.Logger
	clock    func() time.Time
}

// LocalizerOption customises a Localizer.
type LocalizerOption func(*Localizer)

// WithSink sets the module-wide sink. A sink attached to the request context
// takes precedence.
func WithSink(sink interfaces.TelemetrySink) LocalizerOption {
	return func(l *Localizer) {
		if sink != nil {
			l.sink = sink
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger interfaces.Logger) LocalizerOption {
	return func(l *Localizer) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithClock overrides the timestamp source for telemetry entries.
func WithClock(clock func() time.Time) LocalizerOption {
	return func(l *Localizer) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// NewLocalizer constructs a Localizer. Without options it records nothing and
// logs nothing.
func NewLocalizer(defaults Defaults, opts ...LocalizerOption) *Localizer {
	l := &Localizer{
		defaults: defaults,
		sink:     telemetry.NoOpSink{},
		logger:   logging.NoOp(),
		clock:    time.Now,
	}
	l.defaults.FallbackLocale = i18n.NormalizeFallback(l.defaults.FallbackLocale)
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Options returns the per-call options derived from the defaults and ctx.
func (l *Localizer) Options(ctx context.Context) Options {
	sink := telemetry.SinkFromContext(ctx)
	if sink == nil {
		sink = l.sink
	}
	return Options{
		FallbackLocale:  l.defaults.FallbackLocale,
		TrackFallbacks:  l.defaults.TrackFallbacks,
		IncludeMetadata: l.defaults.IncludeMetadata,
		Sink:            sink,
		Clock:           l.clock,
	}
}

// Post localizes a post with the localizer defaults.
func (l *Localizer) Post(ctx context.Context, raw *RawPost, locale string) *LocalizedPost {
	out := LocalizePost(raw, locale, l.Options(ctx))
	if out != nil {
		l.trace(ctx, raw, locale, out.Meta)
	}
	return out
}

// Category localizes a category with the localizer defaults.
func (l *Localizer) Category(ctx context.Context, raw *RawCategory, locale string) *LocalizedCategory {
	out := LocalizeCategory(raw, locale, l.Options(ctx))
	if out != nil {
		l.trace(ctx, raw, locale, out.Meta)
	}
	return out
}

// Author localizes an author with the localizer defaults.
func (l *Localizer) Author(ctx context.Context, raw *RawAuthor, locale string) *LocalizedAuthor {
	out := LocalizeAuthor(raw, locale, l.Options(ctx))
	if out != nil {
		l.trace(ctx, raw, locale, out.Meta)
	}
	return out
}

// Document localizes any supported document kind.
func (l *Localizer) Document(ctx context.Context, doc Document, locale string) any {
	switch typed := doc.(type) {
	case *RawPost:
		if typed != nil {
			return l.Post(ctx, typed, locale)
		}
	case *RawCategory:
		if typed != nil {
			return l.Category(ctx, typed, locale)
		}
	case *RawAuthor:
		if typed != nil {
			return l.Author(ctx, typed, locale)
		}
	}
	return nil
}

func (l *Localizer) trace(ctx context.Context, doc Document, locale string, meta *FallbackMeta) {
	logger := logging.WithDocumentContext(l.logger, doc.DocumentID(), string(doc.Kind()), locale)
	if ctx != nil {
		logger = logger.WithContext(ctx)
	}
	if issues := IssuesOf(doc); len(issues) > 0 {
		locations := make([]string, len(issues))
		for i, issue := range issues {
			locations[i] = issue.Location
		}
		logger.Warn("document.malformed_fields", "issues", locations)
	}
	if meta.HasFallbacks() {
		logger.Debug("document.localized", "fallback_fields", meta.FallbackFields)
		return
	}
	logger.Debug("document.localized")
}
