package documents

import (
	"github.com/goliatone/go-localize/internal/validation"
)

// Kind discriminates raw documents by their `_type` attribute.
type Kind string

const (
	KindPost     Kind = "post"
	KindCategory Kind = "category"
	KindAuthor   Kind = "author"
)

// Localized field names per document kind.
const (
	FieldTitle            = "title"
	FieldSmallDescription = "smallDescription"
	FieldBody             = "body"
	FieldDescription      = "description"
	FieldBio              = "bio"
)

// MetadataKey is the reserved attribute carrying per-document fallback metadata.
const MetadataKey = "_localeMeta"

// UntitledPlaceholder is used when no title can be resolved.
const UntitledPlaceholder = "Untitled"

// Schema lists the localized fields of a document kind, in report order.
type Schema struct {
	Kind   Kind
	Fields []validation.LocalizedField
}

// FieldNames returns the localized field names in schema order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		names[i] = field.Name
	}
	return names
}

// Has reports whether name is a localized field of the schema.
func (s Schema) Has(name string) bool {
	for _, field := range s.Fields {
		if field.Name == name {
			return true
		}
	}
	return false
}

var (
	PostSchema = Schema{
		Kind: KindPost,
		Fields: []validation.LocalizedField{
			{Name: FieldTitle, Kind: validation.ValueString},
			{Name: FieldSmallDescription, Kind: validation.ValueString},
			{Name: FieldBody, Kind: validation.ValueBlocks},
		},
	}
	CategorySchema = Schema{
		Kind: KindCategory,
		Fields: []validation.LocalizedField{
			{Name: FieldTitle, Kind: validation.ValueString},
			{Name: FieldDescription, Kind: validation.ValueString},
		},
	}
	AuthorSchema = Schema{
		Kind: KindAuthor,
		Fields: []validation.LocalizedField{
			{Name: FieldBio, Kind: validation.ValueString},
		},
	}
)

// SchemaFor returns the schema registered for kind.
func SchemaFor(kind Kind) (Schema, bool) {
	switch kind {
	case KindPost:
		return PostSchema, true
	case KindCategory:
		return CategorySchema, true
	case KindAuthor:
		return AuthorSchema, true
	default:
		return Schema{}, false
	}
}

// Kinds lists the supported document kinds.
func Kinds() []Kind {
	return []Kind{KindPost, KindCategory, KindAuthor}
}

type kindValidators struct {
	envelope *validation.Validator
	fields   *validation.Validator
}

func compileKind(schema Schema) kindValidators {
	name := string(schema.Kind)
	return kindValidators{
		envelope: validation.MustCompile(name, validation.DocumentSchema(name)),
		fields:   validation.MustCompile(name+"_fields", validation.FieldsSchema(schema.Fields)),
	}
}

var validators = map[Kind]kindValidators{
	KindPost:     compileKind(PostSchema),
	KindCategory: compileKind(CategorySchema),
	KindAuthor:   compileKind(AuthorSchema),
}
