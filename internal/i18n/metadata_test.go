package i18n

import (
	"testing"
	"time"

	"github.com/goliatone/go-localize/pkg/interfaces"
)

type recordingSink struct {
	entries []interfaces.MissingTranslation
}

func (s *recordingSink) Record(entry interfaces.MissingTranslation) {
	s.entries = append(s.entries, entry)
}

func (s *recordingSink) Log() []interfaces.MissingTranslation {
	return append([]interfaces.MissingTranslation(nil), s.entries...)
}

func (s *recordingSink) Clear() { s.entries = nil }

func TestResolveWithMetadataSources(t *testing.T) {
	cases := []struct {
		name       string
		field      Field[string]
		locale     string
		wantSource Source
		wantActual string
		wantValue  string
	}{
		{"requested", greeting(), "es", SourceRequested, "es", "Hola"},
		{"fallback", greeting(), "fr", SourceFallback, "en", "Hello"},
		{"first available", FieldOf(Entry[string]{Locale: "fr", Value: "Bonjour"}), "es", SourceFirstAvailable, "fr", "Bonjour"},
		{"undefined", nil, "es", SourceUndefined, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ResolveWithMetadata(tc.field, tc.locale, MetadataOptions{})
			if res.Source != tc.wantSource {
				t.Fatalf("expected source %q, got %q", tc.wantSource, res.Source)
			}
			if res.ActualLocale != tc.wantActual {
				t.Fatalf("expected actual locale %q, got %q", tc.wantActual, res.ActualLocale)
			}
			if res.Value != tc.wantValue {
				t.Fatalf("expected value %q, got %q", tc.wantValue, res.Value)
			}
			if res.RequestedLocale != tc.locale {
				t.Fatalf("expected requested locale %q, got %q", tc.locale, res.RequestedLocale)
			}
			if res.Found() != (tc.wantSource != SourceUndefined) {
				t.Fatalf("unexpected Found() for %q", tc.wantSource)
			}
		})
	}
}

func TestResolveWithMetadataMatchesResolve(t *testing.T) {
	fields := []Field[string]{
		nil,
		{},
		greeting(),
		FieldOf(Entry[string]{Locale: "fr", Value: "Bonjour"}),
		FieldOf(Entry[string]{Locale: "", Value: "unkeyed"}, Entry[string]{Locale: "de", Value: "Hallo"}),
	}
	locales := []string{"en", "es", "fr", "de", "", "pt-BR"}
	fallbacks := []string{"", "en", "de"}

	sink := &recordingSink{}
	for _, field := range fields {
		for _, locale := range locales {
			for _, fallback := range fallbacks {
				want, _ := ResolveFallback(field, locale, fallback)
				logged := ResolveWithMetadata(field, locale, MetadataOptions{FallbackLocale: fallback, Sink: sink})
				silent := ResolveWithMetadata(field, locale, MetadataOptions{FallbackLocale: fallback})
				if logged.Value != want || silent.Value != want {
					t.Fatalf("field %v locale %q fallback %q: expected %q, got logged=%q silent=%q",
						field, locale, fallback, want, logged.Value, silent.Value)
				}
			}
		}
	}
}

func TestResolveWithMetadataRecordsNonDirectResolutions(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	sink := &recordingSink{}
	opts := MetadataOptions{
		FieldName:  "title",
		DocumentID: "post-1",
		Sink:       sink,
		Clock:      func() time.Time { return now },
	}

	ResolveWithMetadata(greeting(), "es", opts)
	if len(sink.entries) != 0 {
		t.Fatalf("expected direct resolution not to be logged, got %d entries", len(sink.entries))
	}

	ResolveWithMetadata(greeting(), "fr", opts)
	if len(sink.entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(sink.entries))
	}
	entry := sink.entries[0]
	if entry.DocumentID != "post-1" || entry.FieldName != "title" {
		t.Fatalf("unexpected identity fields %+v", entry)
	}
	if entry.RequestedLocale != "fr" || entry.FallbackLocale != "en" || entry.ActualLocale != "en" {
		t.Fatalf("unexpected locales %+v", entry)
	}
	if entry.Source != SourceFallback || !entry.Timestamp.Equal(now) {
		t.Fatalf("unexpected source/timestamp %+v", entry)
	}

	ResolveWithMetadata(Field[string](nil), "fr", opts)
	if len(sink.entries) != 2 || sink.entries[1].Source != SourceUndefined {
		t.Fatalf("expected undefined resolution to be logged, got %+v", sink.entries)
	}
	if sink.entries[0].ID != sink.entries[1].ID {
		t.Fatal("expected repeated misses for the same field and locale to share an id")
	}
}

func TestResolveWithMetadataSuppressLog(t *testing.T) {
	sink := &recordingSink{}
	res := ResolveWithMetadata(greeting(), "fr", MetadataOptions{Sink: sink, SuppressLog: true})
	if res.Value != "Hello" {
		t.Fatalf("expected fallback value, got %q", res.Value)
	}
	if len(sink.entries) != 0 {
		t.Fatalf("expected suppressed logging, got %d entries", len(sink.entries))
	}
}
