package validation

// ValueKind describes the value type carried by a localized field entry.
type ValueKind string

const (
	// ValueString entries carry plain text.
	ValueString ValueKind = "string"
	// ValueBlocks entries carry structured rich text blocks.
	ValueBlocks ValueKind = "blocks"
)

// LocalizedField names a per-locale array attribute on a document.
type LocalizedField struct {
	Name string
	Kind ValueKind
}

// LocalizedFieldSchema returns the JSON schema for a per-locale array. Entries
// may be keyed by `_key` or `language`; neither is required so unkeyed entries
// still count toward first-available resolution.
func LocalizedFieldSchema(kind ValueKind) map[string]any {
	return map[string]any{
		"type": []any{"array", "null"},
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"_key":     map[string]any{"type": "string"},
				"language": map[string]any{"type": "string"},
				"value":    valueSchema(kind),
			},
		},
	}
}

// DocumentSchema returns the envelope schema for a raw CMS document of the
// given type. Only `_type` and `_id` are constrained; every other attribute,
// localized fields included, passes through.
func DocumentSchema(docType string) map[string]any {
	return map[string]any{
		"$schema":  "https://json-schema.org/draft/2020-12/schema",
		"type":     "object",
		"required": []any{"_type"},
		"properties": map[string]any{
			"_id":   map[string]any{"type": "string"},
			"_type": map[string]any{"const": docType},
		},
		"additionalProperties": true,
	}
}

// FieldsSchema returns a schema describing the expected shape of fields. It is
// used for diagnostics: a payload failing it is still ingested, with the
// offending entries dropped.
func FieldsSchema(fields []LocalizedField) map[string]any {
	properties := make(map[string]any, len(fields))
	for _, field := range fields {
		properties[field.Name] = LocalizedFieldSchema(field.Kind)
	}
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": true,
	}
}

func valueSchema(kind ValueKind) map[string]any {
	switch kind {
	case ValueBlocks:
		return map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": "object"},
		}
	default:
		return map[string]any{"type": []any{"string", "null"}}
	}
}
