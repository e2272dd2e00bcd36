package i18n

// Resolve returns the value for locale, falling back to DefaultFallbackLocale
// and then to the first entry. The boolean is false only when the field is empty.
func Resolve[T any](field Field[T], locale string) (T, bool) {
	return ResolveFallback(field, locale, DefaultFallbackLocale)
}

// ResolveFallback resolves field for locale using the three tier chain:
// requested locale, fallback locale, then the first entry regardless of its
// key. An empty fallback means DefaultFallbackLocale. Any non-empty field
// resolves to a value.
func ResolveFallback[T any](field Field[T], locale, fallback string) (T, bool) {
	res := ResolveWithMetadata(field, locale, MetadataOptions{FallbackLocale: fallback})
	return res.Value, res.Found()
}

// ResolveOr resolves field and returns def when the field is empty.
func ResolveOr[T any](field Field[T], locale, fallback string, def T) T {
	if value, ok := ResolveFallback(field, locale, fallback); ok {
		return value
	}
	return def
}

// HasTranslation reports whether field carries an entry keyed exactly by
// locale. It never consults fallbacks, which makes it the right check for
// coverage reporting.
func HasTranslation[T any](field Field[T], locale string) bool {
	return indexOf(field, locale) >= 0
}

// pick runs the resolution scan and reports the chosen index with its tier.
func pick[T any](field Field[T], locale, fallback string) (int, Source) {
	if len(field) == 0 {
		return -1, SourceUndefined
	}
	if idx := indexOf(field, locale); idx >= 0 {
		return idx, SourceRequested
	}
	if idx := indexOf(field, fallback); idx >= 0 {
		return idx, SourceFallback
	}
	return 0, SourceFirstAvailable
}

func indexOf[T any](field Field[T], locale string) int {
	for idx, entry := range field {
		if entry.Locale == locale {
			return idx
		}
	}
	return -1
}
