package documents

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-localize/internal/i18n"
	"github.com/goliatone/go-localize/internal/validation"
)

func TestDecodePostNormalizesMixedKeys(t *testing.T) {
	post, err := DecodePost([]byte(`{
		"_id": "p1",
		"_type": "post",
		"publishedAt": "2024-01-01",
		"title": [{"_key": "en", "value": "Hello"}, {"language": "es", "value": "Hola"}]
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if post.ID != "p1" {
		t.Fatalf("expected id p1, got %q", post.ID)
	}
	if got := post.Title.Locales(); len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Fatalf("expected normalized locales [en es], got %v", got)
	}
	if _, ok := post.Attributes["title"]; ok {
		t.Fatal("expected schema fields to be excluded from attributes")
	}
	if post.Attributes["publishedAt"] != "2024-01-01" || post.Attributes["_id"] != "p1" {
		t.Fatalf("expected pass-through attributes, got %v", post.Attributes)
	}
	if post.Body != nil || post.SmallDescription != nil {
		t.Fatal("expected absent fields to stay empty")
	}
}

func TestDecodeDispatchesOnType(t *testing.T) {
	cases := map[string]Kind{
		`{"_type": "post"}`:     KindPost,
		`{"_type": "category"}`: KindCategory,
		`{"_type": "author"}`:   KindAuthor,
	}
	for payload, want := range cases {
		doc, err := Decode([]byte(payload))
		if err != nil {
			t.Fatalf("decode %s: %v", payload, err)
		}
		if doc.Kind() != want {
			t.Fatalf("expected kind %s, got %s", want, doc.Kind())
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte(`{"_type": "page"}`)); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := Decode([]byte(`  `)); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
	if _, err := Decode([]byte(`null`)); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload for null, got %v", err)
	}
	if _, err := DecodeCategory([]byte(`{"_type": "post"}`)); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}

	_, err := Decode([]byte(`{"_id": 7, "_type": "post"}`))
	if !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected envelope validation error, got %v", err)
	}
	if len(validation.Issues(err)) == 0 {
		t.Fatal("expected schema issues to be reported")
	}
}

func TestDecodeDegradesMalformedFields(t *testing.T) {
	cases := []struct {
		name      string
		payload   string
		wantTitle []string
		wantBody  int
	}{
		{name: "title as string", payload: `{"_id": "p1", "_type": "post", "title": "Hello"}`},
		{name: "numeric value", payload: `{"_id": "p1", "_type": "post", "title": [{"_key": "en", "value": 42}]}`},
		{name: "non object entry", payload: `{"_id": "p1", "_type": "post", "title": ["Hello"]}`},
		{
			name:      "bad entry among good ones",
			payload:   `{"_id": "p1", "_type": "post", "title": [{"_key": "en", "value": 42}, {"_key": "es", "value": "Hola"}]}`,
			wantTitle: []string{"es"},
		},
		{
			name:     "body value not blocks",
			payload:  `{"_id": "p1", "_type": "post", "body": [{"_key": "en", "value": "plain"}, {"_key": "es", "value": [{"_type": "block"}]}]}`,
			wantBody: 1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			post, err := DecodePost([]byte(tc.payload))
			if err != nil {
				t.Fatalf("expected malformed fields to degrade, got %v", err)
			}
			if got := post.Title.Locales(); len(got) != len(tc.wantTitle) || (len(got) > 0 && got[0] != tc.wantTitle[0]) {
				t.Fatalf("expected title locales %v, got %v", tc.wantTitle, got)
			}
			if len(post.Body) != tc.wantBody {
				t.Fatalf("expected %d body entries, got %+v", tc.wantBody, post.Body)
			}
			if len(post.Issues) == 0 {
				t.Fatal("expected dropped entries to be recorded as issues")
			}
			if len(IssuesOf(post)) != len(post.Issues) {
				t.Fatal("expected IssuesOf to return the post issues")
			}
		})
	}
}

func TestDecodeMalformedFieldLocalizesToSentinels(t *testing.T) {
	post, err := DecodePost([]byte(`{"_id": "p1", "_type": "post", "title": "Hello", "smallDescription": [{"_key": "es", "value": 1}], "body": {"_key": "es"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	out := LocalizePost(post, "es", Options{IncludeMetadata: true})
	if out.Title != UntitledPlaceholder || out.SmallDescription != "" || out.Body == nil || len(out.Body) != 0 {
		t.Fatalf("expected sentinel values, got %+v", out)
	}
	for _, field := range []string{FieldTitle, FieldSmallDescription, FieldBody} {
		if out.Meta.Sources[field] != i18n.SourceUndefined {
			t.Fatalf("expected %s to be undefined, got %q", field, out.Meta.Sources[field])
		}
	}
}

func TestDecodeWellFormedHasNoIssues(t *testing.T) {
	author, err := DecodeAuthor([]byte(`{"_type": "author", "bio": [{"language": "fr", "value": "Bio"}]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(author.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", author.Issues)
	}
}

func TestDecodeBlocksBody(t *testing.T) {
	post, err := DecodePost([]byte(`{
		"_type": "post",
		"body": [{"_key": "en", "value": [{"_type": "block", "children": [{"text": "Hi"}]}]}]
	}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(post.Body) != 1 || len(post.Body[0].Value) != 1 || post.Body[0].Value[0]["_type"] != "block" {
		t.Fatalf("unexpected body %+v", post.Body)
	}
}

func TestDecodeCorpusSkipsInvalidItems(t *testing.T) {
	docs, err := DecodeCorpus([]byte(`[{"_type": "post"}, {"_type": "widget"}, {"_id": "c1", "_type": "category", "title": "bad"}]`))
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if err.Error() != `documents: corpus item 1: documents: unknown document type: "widget"` {
		t.Fatalf("unexpected error message %q", err.Error())
	}
	if len(docs) != 2 || docs[0].Kind() != KindPost || docs[1].DocumentID() != "c1" {
		t.Fatalf("expected the valid documents to be kept, got %+v", docs)
	}

	skipped := SkippedItems(err)
	if len(skipped) != 1 || skipped[0].Index != 1 {
		t.Fatalf("expected item 1 to be skipped, got %+v", skipped)
	}
}

func TestDecodeCorpusCollectsEveryFailure(t *testing.T) {
	docs, err := DecodeCorpus([]byte(`["junk", {"_type": "author"}, null, {"_type": "post", "_id": 3}]`))
	if len(docs) != 1 || docs[0].Kind() != KindAuthor {
		t.Fatalf("expected one author, got %+v", docs)
	}
	skipped := SkippedItems(err)
	if len(skipped) != 3 || skipped[0].Index != 0 || skipped[1].Index != 2 || skipped[2].Index != 3 {
		t.Fatalf("unexpected skipped items %+v", skipped)
	}
	if !errors.Is(err, ErrEmptyPayload) || !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected wrapped item causes, got %v", err)
	}
	if !strings.Contains(err.Error(), "corpus item 3") {
		t.Fatalf("expected message to name item 3, got %q", err.Error())
	}

	if _, err := DecodeCorpus([]byte(`[{"_type": "post"}]`)); err != nil || SkippedItems(err) != nil {
		t.Fatalf("expected clean corpus, got %v", err)
	}
}

func TestFromMapMatchesDecode(t *testing.T) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(`{"_type": "author", "_id": "a1", "bio": [{"_key": "en", "value": "Writer"}]}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	doc, err := FromMap(payload)
	if err != nil {
		t.Fatalf("from map: %v", err)
	}
	author := doc.(*RawAuthor)
	if author.ID != "a1" || !author.HasTranslation(FieldBio, "en") {
		t.Fatalf("unexpected author %+v", author)
	}
	if _, err := FromMap(nil); !errors.Is(err, ErrEmptyPayload) {
		t.Fatalf("expected ErrEmptyPayload, got %v", err)
	}
}
