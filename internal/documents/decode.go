package documents

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-localize/internal/i18n"
	"github.com/goliatone/go-localize/internal/validation"
)

var (
	// ErrUnknownKind is returned for payloads whose `_type` has no schema.
	ErrUnknownKind = errors.New("documents: unknown document type")
	// ErrKindMismatch is returned by the typed decoders when `_type` names another kind.
	ErrKindMismatch = errors.New("documents: document type mismatch")
	// ErrEmptyPayload is returned for blank or null input.
	ErrEmptyPayload = errors.New("documents: empty payload")
)

// Decode validates the envelope of a raw CMS document and returns the typed
// document. Both `_key` and `language` entry attributes are normalized here so
// nothing downstream checks for them again. Malformed localized fields never
// fail decoding: bad entries are dropped, a field that is not an array is
// empty, and the problems are kept on the document's Issues.
func Decode(data []byte) (Document, error) {
	payload, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	return FromMap(payload)
}

// FromMap is Decode for payloads that were already unmarshalled.
func FromMap(payload map[string]any) (Document, error) {
	if payload == nil {
		return nil, ErrEmptyPayload
	}
	kind := Kind(strings.TrimSpace(stringAttr(payload, "_type")))
	validator, ok := validators[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err := validator.envelope.Validate(payload); err != nil {
		return nil, fmt.Errorf("documents: validate %s %q: %w", kind, stringAttr(payload, "_id"), err)
	}
	issues := validation.Issues(validator.fields.Validate(payload))

	switch kind {
	case KindPost:
		return &RawPost{
			ID:               stringAttr(payload, "_id"),
			Title:            i18n.FieldFromAny[string](payload[FieldTitle]),
			SmallDescription: i18n.FieldFromAny[string](payload[FieldSmallDescription]),
			Body:             i18n.FieldFromAny[[]Block](payload[FieldBody]),
			Attributes:       attributesOf(payload, PostSchema),
			Issues:           issues,
		}, nil
	case KindCategory:
		return &RawCategory{
			ID:          stringAttr(payload, "_id"),
			Title:       i18n.FieldFromAny[string](payload[FieldTitle]),
			Description: i18n.FieldFromAny[string](payload[FieldDescription]),
			Attributes:  attributesOf(payload, CategorySchema),
			Issues:      issues,
		}, nil
	default:
		return &RawAuthor{
			ID:         stringAttr(payload, "_id"),
			Bio:        i18n.FieldFromAny[string](payload[FieldBio]),
			Attributes: attributesOf(payload, AuthorSchema),
			Issues:     issues,
		}, nil
	}
}

// DecodePost decodes a payload that must be a post.
func DecodePost(data []byte) (*RawPost, error) {
	return decodeAs[*RawPost](data, KindPost)
}

// DecodeCategory decodes a payload that must be a category.
func DecodeCategory(data []byte) (*RawCategory, error) {
	return decodeAs[*RawCategory](data, KindCategory)
}

// DecodeAuthor decodes a payload that must be an author.
func DecodeAuthor(data []byte) (*RawAuthor, error) {
	return decodeAs[*RawAuthor](data, KindAuthor)
}

// ItemError reports one corpus entry that could not be decoded.
type ItemError struct {
	Index int
	Err   error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("documents: corpus item %d: %v", e.Index, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

// CorpusError lists the entries DecodeCorpus skipped.
type CorpusError struct {
	Items []ItemError
}

func (e *CorpusError) Error() string {
	parts := make([]string, len(e.Items))
	for i, item := range e.Items {
		parts[i] = item.Error()
	}
	return strings.Join(parts, "; ")
}

func (e *CorpusError) Unwrap() []error {
	errs := make([]error, len(e.Items))
	for i, item := range e.Items {
		errs[i] = item
	}
	return errs
}

// SkippedItems returns the entries skipped by a partial corpus decode.
func SkippedItems(err error) []ItemError {
	var corpusErr *CorpusError
	if errors.As(err, &corpusErr) && corpusErr != nil {
		return corpusErr.Items
	}
	return nil
}

// DecodeCorpus decodes a JSON array of documents of mixed kinds. Entries that
// cannot be decoded are skipped; the remaining documents are returned together
// with a *CorpusError naming each skipped index. A payload that is not an
// array fails outright.
func DecodeCorpus(data []byte) ([]Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyPayload
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("documents: decode corpus: %w", err)
	}
	docs := make([]Document, 0, len(items))
	var skipped []ItemError
	for idx, item := range items {
		doc, err := Decode(item)
		if err != nil {
			skipped = append(skipped, ItemError{Index: idx, Err: err})
			continue
		}
		docs = append(docs, doc)
	}
	if len(skipped) > 0 {
		return docs, &CorpusError{Items: skipped}
	}
	return docs, nil
}

func decodeAs[D Document](data []byte, kind Kind) (D, error) {
	var zero D
	doc, err := Decode(data)
	if err != nil {
		return zero, err
	}
	typed, ok := doc.(D)
	if !ok {
		return zero, fmt.Errorf("%w: expected %s, got %s", ErrKindMismatch, kind, doc.Kind())
	}
	return typed, nil
}

func decodeObject(data []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrEmptyPayload
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("documents: decode: %w", err)
	}
	return payload, nil
}

func attributesOf(payload map[string]any, schema Schema) Attributes {
	attrs := make(Attributes, len(payload))
	for key, value := range payload {
		if schema.Has(key) {
			continue
		}
		attrs[key] = value
	}
	return attrs
}

func stringAttr(payload map[string]any, key string) string {
	value, _ := payload[key].(string)
	return value
}
