package telemetry

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Entry aliases the shared telemetry record.
type Entry = interfaces.MissingTranslation

// NoOpSink drops every entry. It is the production default.
type NoOpSink struct{}

var _ interfaces.TelemetrySink = NoOpSink{}

func (NoOpSink) Record(Entry) {}
func (NoOpSink) Log() []Entry { return nil }
func (NoOpSink) Clear()       {}

// MemoryOption configures a MemorySink.
type MemoryOption func(*MemorySink)

// WithCapacity bounds the log to the newest n entries. n <= 0 keeps it unbounded.
func WithCapacity(n int) MemoryOption {
	return func(s *MemorySink) {
		if n < 0 {
			n = 0
		}
		s.capacity = n
	}
}

// MemorySink keeps entries in insertion order for development and tests. It
// is safe for concurrent use.
type MemorySink struct {
	mu       sync.RWMutex
	entries  []Entry
	capacity int
	dropped  int
}

var _ interfaces.TelemetrySink = (*MemorySink)(nil)

// NewMemorySink constructs an empty in-memory sink.
func NewMemorySink(opts ...MemoryOption) *MemorySink {
	s := &MemorySink{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record appends entry. No deduplication is performed.
func (s *MemorySink) Record(entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if s.capacity > 0 && len(s.entries) > s.capacity {
		overflow := len(s.entries) - s.capacity
		s.entries = append(s.entries[:0:0], s.entries[overflow:]...)
		s.dropped += overflow
	}
}

// Log returns a copy of the recorded entries.
func (s *MemorySink) Log() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return nil
	}
	return append([]Entry(nil), s.entries...)
}

// Clear resets the log.
func (s *MemorySink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.dropped = 0
}

// Dropped reports how many entries were evicted by the capacity bound since
// the last Clear.
func (s *MemorySink) Dropped() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dropped
}

// LoggingSink routes entries to a structured logger and keeps nothing in memory.
type LoggingSink struct {
	logger interfaces.Logger
}

var _ interfaces.TelemetrySink = (*LoggingSink)(nil)

// NewLoggingSink constructs a sink that writes one WARN entry per miss.
func NewLoggingSink(logger interfaces.Logger) *LoggingSink {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &LoggingSink{logger: logger}
}

func (s *LoggingSink) Record(entry Entry) {
	s.logger.Warn("translation.missing",
		"id", entry.ID.String(),
		"document_id", entry.DocumentID,
		"field", entry.FieldName,
		"requested_locale", entry.RequestedLocale,
		"fallback_locale", entry.FallbackLocale,
		"actual_locale", entry.ActualLocale,
		"source", string(entry.Source),
	)
}

func (s *LoggingSink) Log() []Entry { return nil }
func (s *LoggingSink) Clear()       {}

// SampledSink forwards every nth entry to the inner sink.
type SampledSink struct {
	inner interfaces.TelemetrySink
	every uint64
	seen  atomic.Uint64
}

var _ interfaces.TelemetrySink = (*SampledSink)(nil)

// NewSampledSink wraps inner. every <= 1 forwards all entries.
func NewSampledSink(inner interfaces.TelemetrySink, every int) *SampledSink {
	if inner == nil {
		inner = NoOpSink{}
	}
	if every < 1 {
		every = 1
	}
	return &SampledSink{inner: inner, every: uint64(every)}
}

func (s *SampledSink) Record(entry Entry) {
	if (s.seen.Add(1)-1)%s.every == 0 {
		s.inner.Record(entry)
	}
}

func (s *SampledSink) Log() []Entry { return s.inner.Log() }

func (s *SampledSink) Clear() {
	s.seen.Store(0)
	s.inner.Clear()
}

type sinkKey struct{}

// ContextWithSink scopes a sink to a request or task.
func ContextWithSink(ctx context.Context, sink interfaces.TelemetrySink) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sinkKey{}, sink)
}

// SinkFromContext returns the scoped sink, or nil when none was attached.
func SinkFromContext(ctx context.Context) interfaces.TelemetrySink {
	if ctx == nil {
		return nil
	}
	sink, _ := ctx.Value(sinkKey{}).(interfaces.TelemetrySink)
	return sink
}
