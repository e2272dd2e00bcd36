package documents

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-localize/internal/telemetry"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

type recordingLogger struct {
	messages []string
	fields   []map[string]any
}

func (l *recordingLogger) Trace(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Debug(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Fatal(msg string, _ ...any) { l.messages = append(l.messages, msg) }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	l.fields = append(l.fields, fields)
	return l
}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func TestLocalizerDefaultsRecordNothing(t *testing.T) {
	localizer := NewLocalizer(Defaults{})
	opts := localizer.Options(context.Background())
	if opts.FallbackLocale != "en" {
		t.Fatalf("expected default fallback en, got %q", opts.FallbackLocale)
	}
	if _, ok := opts.Sink.(telemetry.NoOpSink); !ok {
		t.Fatalf("expected no-op sink, got %T", opts.Sink)
	}
	out := localizer.Post(context.Background(), englishOnlyPost(), "es")
	if out.Title != "Hello" {
		t.Fatalf("expected fallback title, got %q", out.Title)
	}
}

func TestLocalizerPrefersContextSink(t *testing.T) {
	moduleSink := telemetry.NewMemorySink()
	requestSink := telemetry.NewMemorySink()
	localizer := NewLocalizer(Defaults{TrackFallbacks: true}, WithSink(moduleSink))

	ctx := telemetry.ContextWithSink(context.Background(), requestSink)
	localizer.Post(ctx, englishOnlyPost(), "es")

	if len(moduleSink.Log()) != 0 {
		t.Fatalf("expected module sink to stay empty, got %d", len(moduleSink.Log()))
	}
	if len(requestSink.Log()) != 3 {
		t.Fatalf("expected three entries on request sink, got %d", len(requestSink.Log()))
	}

	localizer.Post(context.Background(), englishOnlyPost(), "es")
	if len(moduleSink.Log()) != 3 {
		t.Fatalf("expected module sink to record without request scope, got %d", len(moduleSink.Log()))
	}
}

func TestLocalizerTracesDocuments(t *testing.T) {
	logger := &recordingLogger{}
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	sink := telemetry.NewMemorySink()
	localizer := NewLocalizer(
		Defaults{TrackFallbacks: true, IncludeMetadata: true},
		WithSink(sink),
		WithLogger(logger),
		WithClock(func() time.Time { return now }),
	)

	docs, err := DefaultFixture()
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	for _, doc := range docs {
		if localizer.Document(context.Background(), doc, "es") == nil {
			t.Fatalf("expected localized %s", doc.DocumentID())
		}
	}
	if len(logger.messages) != len(docs) {
		t.Fatalf("expected one trace per document, got %v", logger.messages)
	}
	for _, msg := range logger.messages {
		if msg != "document.localized" {
			t.Fatalf("unexpected log message %q", msg)
		}
	}
	for _, entry := range sink.Log() {
		if !entry.Timestamp.Equal(now) {
			t.Fatalf("expected injected clock, got %v", entry.Timestamp)
		}
	}
}

func TestLocalizerDocumentNil(t *testing.T) {
	localizer := NewLocalizer(Defaults{})
	if localizer.Document(context.Background(), nil, "en") != nil {
		t.Fatal("expected nil for nil document")
	}
	if localizer.Document(context.Background(), (*RawAuthor)(nil), "en") != nil {
		t.Fatal("expected nil for typed nil document")
	}
	if localizer.Post(context.Background(), nil, "en") != nil {
		t.Fatal("expected nil post")
	}
}

func TestLocalizerWarnsOnMalformedFields(t *testing.T) {
	logger := &recordingLogger{}
	localizer := NewLocalizer(Defaults{}, WithLogger(logger))

	post, err := DecodePost([]byte(`{"_id": "p1", "_type": "post", "title": "Hello"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out := localizer.Post(context.Background(), post, "es")
	if out.Title != UntitledPlaceholder {
		t.Fatalf("expected placeholder title, got %q", out.Title)
	}
	if len(logger.messages) != 2 || logger.messages[0] != "document.malformed_fields" || logger.messages[1] != "document.localized" {
		t.Fatalf("expected malformed warning before trace, got %v", logger.messages)
	}
}
