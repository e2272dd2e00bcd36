package i18n

import "encoding/json"

// Entry is one per-locale value of a localized field.
type Entry[T any] struct {
	Locale string
	Value  T
}

// Field is an ordered list of per-locale entries as stored by the CMS. Order
// is preserved from the source and only matters for first-available
// resolution. Locales are not guaranteed unique; the first match wins.
type Field[T any] []Entry[T]

// FieldOf builds a field from entries, keeping their order.
func FieldOf[T any](entries ...Entry[T]) Field[T] {
	return Field[T](entries)
}

// Locales returns the entry locales in order, including duplicates and empty keys.
func (f Field[T]) Locales() []string {
	if len(f) == 0 {
		return nil
	}
	out := make([]string, len(f))
	for i, entry := range f {
		out[i] = entry.Locale
	}
	return out
}

// UnmarshalJSON normalizes either key attribute into Entry.Locale. It follows
// FieldFromAny: bad entries are dropped and a payload that is not an array,
// including JSON null, decodes to an empty field. It never fails.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = nil
		return nil
	}
	*f = FieldFromAny[T](raw)
	return nil
}

// MarshalJSON writes entries back using the primary `_key` attribute.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	type outEntry struct {
		Key   string `json:"_key"`
		Value T      `json:"value"`
	}
	out := make([]outEntry, len(f))
	for i, entry := range f {
		out[i] = outEntry{Key: entry.Locale, Value: entry.Value}
	}
	return json.Marshal(out)
}

// FieldFromAny normalizes a loosely typed payload (the shape produced by
// decoding CMS JSON into map[string]any) into a Field. Items that are not
// objects, or whose value is not a T, are skipped. Anything other than a
// slice yields an empty field.
func FieldFromAny[T any](raw any) Field[T] {
	items, ok := raw.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	out := make(Field[T], 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		value, ok := coerce[T](obj["value"])
		if !ok {
			continue
		}
		out = append(out, Entry[T]{Locale: localeOf(obj), Value: value})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// localeOf accepts both historical key attributes. `_key` is the primary
// name, `language` the secondary one still produced by older datasets.
func localeOf(obj map[string]any) string {
	if key, ok := obj["_key"].(string); ok && key != "" {
		return key
	}
	if lang, ok := obj["language"].(string); ok {
		return lang
	}
	return ""
}

func coerce[T any](value any) (T, bool) {
	var zero T
	if value == nil {
		return zero, true
	}
	if typed, ok := value.(T); ok {
		return typed, true
	}
	// Structured values (e.g. block arrays) arrive as []any and need a
	// round trip to reach the target type.
	encoded, err := json.Marshal(value)
	if err != nil {
		return zero, false
	}
	var out T
	if err := json.Unmarshal(encoded, &out); err != nil {
		return zero, false
	}
	return out, true
}
