package i18n

import (
	"strings"
	"time"

	"github.com/goliatone/go-localize/internal/identity"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Source is the resolution tier that produced a value.
type Source = interfaces.ResolutionSource

const (
	SourceRequested      = interfaces.SourceRequested
	SourceFallback       = interfaces.SourceFallback
	SourceFirstAvailable = interfaces.SourceFirstAvailable
	SourceUndefined      = interfaces.SourceUndefined
)

// Result is a resolved value together with its provenance.
type Result[T any] struct {
	Value           T      `json:"value"`
	Source          Source `json:"source"`
	RequestedLocale string `json:"requestedLocale"`
	// ActualLocale is the key of the matched entry, empty when Source is
	// SourceUndefined.
	ActualLocale string `json:"actualLocale"`
}

// Found reports whether any entry produced the value.
func (r Result[T]) Found() bool {
	return r.Source != SourceUndefined
}

// Direct reports whether the requested locale matched.
func (r Result[T]) Direct() bool {
	return r.Source == SourceRequested
}

// MetadataOptions configure ResolveWithMetadata. FieldName and DocumentID are
// only used for telemetry.
type MetadataOptions struct {
	FieldName      string
	DocumentID     string
	FallbackLocale string
	// Sink receives one entry per non-direct resolution. nil disables recording.
	Sink interfaces.TelemetrySink
	// SuppressLog skips recording even when Sink is set.
	SuppressLog bool
	Clock       func() time.Time
}

// ResolveWithMetadata runs the same scan as ResolveFallback and reports which
// tier matched. The returned value never depends on whether telemetry is recorded.
func ResolveWithMetadata[T any](field Field[T], locale string, opts MetadataOptions) Result[T] {
	fallback := NormalizeFallback(opts.FallbackLocale)
	idx, source := pick(field, locale, fallback)

	result := Result[T]{
		Source:          source,
		RequestedLocale: locale,
	}
	if idx >= 0 {
		result.Value = field[idx].Value
		result.ActualLocale = field[idx].Locale
	}

	if source != SourceRequested && opts.Sink != nil && !opts.SuppressLog {
		opts.Sink.Record(missingEntry(result, fallback, opts))
	}
	return result
}

func missingEntry[T any](result Result[T], fallback string, opts MetadataOptions) interfaces.MissingTranslation {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return interfaces.MissingTranslation{
		ID:              identity.MissingTranslationUUID(opts.DocumentID, opts.FieldName, result.RequestedLocale),
		DocumentID:      strings.TrimSpace(opts.DocumentID),
		FieldName:       strings.TrimSpace(opts.FieldName),
		RequestedLocale: result.RequestedLocale,
		FallbackLocale:  fallback,
		ActualLocale:    result.ActualLocale,
		Source:          result.Source,
		Timestamp:       clock().UTC(),
	}
}
