package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/goliatone/go-localize/pkg/interfaces"
)

func entry(field, locale string) Entry {
	return Entry{
		FieldName:       field,
		RequestedLocale: locale,
		FallbackLocale:  "en",
		ActualLocale:    "en",
		Source:          interfaces.SourceFallback,
	}
}

func TestMemorySinkRecordsInOrderWithoutDedup(t *testing.T) {
	sink := NewMemorySink()
	sink.Record(entry("title", "es"))
	sink.Record(entry("title", "es"))
	sink.Record(entry("body", "fr"))

	log := sink.Log()
	if len(log) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(log))
	}
	if log[2].FieldName != "body" {
		t.Fatalf("expected insertion order, got %+v", log)
	}

	log[0].FieldName = "mutated"
	if sink.Log()[0].FieldName != "title" {
		t.Fatal("expected Log to return a copy")
	}
}

func TestMemorySinkClear(t *testing.T) {
	sink := NewMemorySink()
	sink.Record(entry("title", "es"))
	sink.Clear()
	if got := sink.Log(); len(got) != 0 {
		t.Fatalf("expected empty log after clear, got %d", len(got))
	}
}

func TestMemorySinkCapacityKeepsNewest(t *testing.T) {
	sink := NewMemorySink(WithCapacity(2))
	sink.Record(entry("a", "es"))
	sink.Record(entry("b", "es"))
	sink.Record(entry("c", "es"))

	log := sink.Log()
	if len(log) != 2 || log[0].FieldName != "b" || log[1].FieldName != "c" {
		t.Fatalf("expected newest two entries, got %+v", log)
	}
	if sink.Dropped() != 1 {
		t.Fatalf("expected one dropped entry, got %d", sink.Dropped())
	}
}

func TestMemorySinkConcurrentRecord(t *testing.T) {
	sink := NewMemorySink()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.Record(entry("title", "es"))
		}()
	}
	wg.Wait()
	if got := len(sink.Log()); got != 50 {
		t.Fatalf("expected 50 entries, got %d", got)
	}
}

func TestNoOpSink(t *testing.T) {
	var sink interfaces.TelemetrySink = NoOpSink{}
	sink.Record(entry("title", "es"))
	if sink.Log() != nil {
		t.Fatal("expected noop sink to keep nothing")
	}
}

func TestSampledSinkForwardsEveryNth(t *testing.T) {
	inner := NewMemorySink()
	sink := NewSampledSink(inner, 3)
	for i := 0; i < 7; i++ {
		sink.Record(entry("title", "es"))
	}
	if got := len(inner.Log()); got != 3 {
		t.Fatalf("expected entries 1, 4, 7 to be forwarded, got %d", got)
	}
	sink.Clear()
	if len(sink.Log()) != 0 {
		t.Fatal("expected clear to reach inner sink")
	}
}

type captureLogger struct {
	warnings []string
	args     [][]any
}

func (c *captureLogger) Trace(string, ...any)                          {}
func (c *captureLogger) Debug(string, ...any)                          {}
func (c *captureLogger) Info(string, ...any)                           {}
func (c *captureLogger) Error(string, ...any)                          {}
func (c *captureLogger) Fatal(string, ...any)                          {}
func (c *captureLogger) WithContext(context.Context) interfaces.Logger { return c }

func (c *captureLogger) Warn(msg string, args ...any) {
	c.warnings = append(c.warnings, msg)
	c.args = append(c.args, args)
}

func TestLoggingSinkWritesWarnings(t *testing.T) {
	logger := &captureLogger{}
	sink := NewLoggingSink(logger)
	sink.Record(entry("title", "es"))

	if len(logger.warnings) != 1 || logger.warnings[0] != "translation.missing" {
		t.Fatalf("expected one warning, got %v", logger.warnings)
	}
	if sink.Log() != nil {
		t.Fatal("expected logging sink to keep nothing in memory")
	}
}

func TestContextSinkScoping(t *testing.T) {
	if SinkFromContext(context.Background()) != nil {
		t.Fatal("expected no sink on bare context")
	}
	sink := NewMemorySink()
	ctx := ContextWithSink(context.Background(), sink)
	if SinkFromContext(ctx) != sink {
		t.Fatal("expected scoped sink to be returned")
	}
}
