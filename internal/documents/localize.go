package documents

import (
	"time"

	"github.com/goliatone/go-localize/internal/i18n"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

// Options control a single localization call.
type Options struct {
	// FallbackLocale defaults to i18n.DefaultFallbackLocale.
	FallbackLocale string
	// TrackFallbacks records non-direct resolutions to Sink.
	TrackFallbacks bool
	// IncludeMetadata attaches FallbackMeta to the result.
	IncludeMetadata bool
	Sink            interfaces.TelemetrySink
	Clock           func() time.Time
}

// LocalizePost resolves every post field for locale. A nil post yields nil.
func LocalizePost(raw *RawPost, locale string, opts Options) *LocalizedPost {
	if raw == nil {
		return nil
	}
	r := newFieldResolver(raw.ID, locale, opts)
	out := &LocalizedPost{
		ID:               raw.ID,
		Locale:           locale,
		Title:            titleOr(resolveField(r, FieldTitle, raw.Title)),
		SmallDescription: resolveField(r, FieldSmallDescription, raw.SmallDescription),
		Body:             blocksOr(resolveField(r, FieldBody, raw.Body)),
		Attributes:       raw.Attributes.Clone(),
		Meta:             r.metadata(),
	}
	out.Slug = slugFor(raw.Attributes, out.Title)
	return out
}

// LocalizeCategory resolves every category field for locale. A nil category yields nil.
func LocalizeCategory(raw *RawCategory, locale string, opts Options) *LocalizedCategory {
	if raw == nil {
		return nil
	}
	r := newFieldResolver(raw.ID, locale, opts)
	out := &LocalizedCategory{
		ID:          raw.ID,
		Locale:      locale,
		Title:       titleOr(resolveField(r, FieldTitle, raw.Title)),
		Description: resolveField(r, FieldDescription, raw.Description),
		Attributes:  raw.Attributes.Clone(),
		Meta:        r.metadata(),
	}
	out.Slug = slugFor(raw.Attributes, out.Title)
	return out
}

// LocalizeAuthor resolves the author bio for locale. A nil author yields nil.
func LocalizeAuthor(raw *RawAuthor, locale string, opts Options) *LocalizedAuthor {
	if raw == nil {
		return nil
	}
	r := newFieldResolver(raw.ID, locale, opts)
	return &LocalizedAuthor{
		ID:         raw.ID,
		Locale:     locale,
		Bio:        resolveField(r, FieldBio, raw.Bio),
		Attributes: raw.Attributes.Clone(),
		Meta:       r.metadata(),
	}
}

// Localize dispatches on the document kind. It returns nil for nil or
// unsupported documents.
func Localize(doc Document, locale string, opts Options) any {
	switch typed := doc.(type) {
	case *RawPost:
		if typed == nil {
			return nil
		}
		return LocalizePost(typed, locale, opts)
	case *RawCategory:
		if typed == nil {
			return nil
		}
		return LocalizeCategory(typed, locale, opts)
	case *RawAuthor:
		if typed == nil {
			return nil
		}
		return LocalizeAuthor(typed, locale, opts)
	default:
		return nil
	}
}

type fieldResolver struct {
	documentID string
	locale     string
	opts       Options
	withMeta   bool
	meta       *FallbackMeta
}

func newFieldResolver(documentID, locale string, opts Options) *fieldResolver {
	r := &fieldResolver{
		documentID: documentID,
		locale:     locale,
		opts:       opts,
		withMeta:   opts.TrackFallbacks || opts.IncludeMetadata,
	}
	if opts.IncludeMetadata {
		r.meta = &FallbackMeta{
			Locale:         locale,
			FallbackFields: []string{},
			Sources:        map[string]i18n.Source{},
		}
	}
	return r
}

func (r *fieldResolver) metadata() *FallbackMeta {
	return r.meta
}

func resolveField[T any](r *fieldResolver, name string, field i18n.Field[T]) T {
	if !r.withMeta {
		value, _ := i18n.ResolveFallback(field, r.locale, r.opts.FallbackLocale)
		return value
	}

	opts := i18n.MetadataOptions{
		FieldName:      name,
		DocumentID:     r.documentID,
		FallbackLocale: r.opts.FallbackLocale,
		Clock:          r.opts.Clock,
	}
	if r.opts.TrackFallbacks {
		opts.Sink = r.opts.Sink
	}
	res := i18n.ResolveWithMetadata(field, r.locale, opts)
	if r.meta != nil {
		r.meta.Sources[name] = res.Source
		if !res.Direct() {
			r.meta.FallbackFields = append(r.meta.FallbackFields, name)
		}
	}
	return res.Value
}

func titleOr(title string) string {
	if title == "" {
		return UntitledPlaceholder
	}
	return title
}

func blocksOr(blocks []Block) []Block {
	if blocks == nil {
		return []Block{}
	}
	return blocks
}
