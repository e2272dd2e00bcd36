package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := MissingTranslationUUID("post-1", "title", "es")
	second := MissingTranslationUUID(" post-1 ", "title", "es")
	if first == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
	if first != second {
		t.Fatalf("expected trimmed keys to share an id, got %s and %s", first, second)
	}
}

func TestUUIDSeparatesFieldsAndLocales(t *testing.T) {
	base := MissingTranslationUUID("post-1", "title", "es")
	if base == MissingTranslationUUID("post-1", "body", "es") {
		t.Fatal("expected different fields to produce different ids")
	}
	if base == MissingTranslationUUID("post-1", "title", "fr") {
		t.Fatal("expected different locales to produce different ids")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := UUID("   "); got != uuid.Nil {
		t.Fatalf("expected nil uuid for blank key, got %s", got)
	}
}

func TestCorpusRunUUIDDependsOnDocuments(t *testing.T) {
	a := CorpusRunUUID("es", []string{"a", "b"})
	b := CorpusRunUUID("es", []string{"a"})
	if a == b {
		t.Fatal("expected corpus run id to depend on document set")
	}
}
