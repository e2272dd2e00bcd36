package interfaces

import (
	"time"

	"github.com/google/uuid"
)

// ResolutionSource classifies which resolution tier produced a value.
type ResolutionSource string

const (
	SourceRequested      ResolutionSource = "requested"
	SourceFallback       ResolutionSource = "fallback"
	SourceFirstAvailable ResolutionSource = "first_available"
	SourceUndefined      ResolutionSource = "undefined"
)

// MissingTranslation records a resolution that did not hit the requested
// locale directly.
type MissingTranslation struct {
	ID              uuid.UUID        `json:"id"`
	DocumentID      string           `json:"documentId,omitempty"`
	FieldName       string           `json:"fieldName,omitempty"`
	RequestedLocale string           `json:"requestedLocale"`
	FallbackLocale  string           `json:"fallbackLocale"`
	ActualLocale    string           `json:"actualLocale"`
	Source          ResolutionSource `json:"source"`
	Timestamp       time.Time        `json:"timestamp"`
}

// TelemetrySink receives missing translation events. Sinks are injected per
// module or per request; there is no process-wide log.
type TelemetrySink interface {
	Record(entry MissingTranslation)
	Log() []MissingTranslation
	Clear()
}
