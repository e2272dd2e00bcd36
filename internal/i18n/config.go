package i18n

import "strings"

// DefaultFallbackLocale is consulted when a requested locale has no direct entry
// and the caller did not configure a fallback.
const DefaultFallbackLocale = "en"

// Config carries the locale settings shared by localizers and analyzers.
type Config struct {
	FallbackLocale string
	Locales        []string
}

// FromModuleConfig builds a Config from runtime settings, defaulting the
// fallback locale when empty.
func FromModuleConfig(fallbackLocale string, locales []string) Config {
	return Config{
		FallbackLocale: NormalizeFallback(fallbackLocale),
		Locales:        append([]string(nil), locales...),
	}
}

// NormalizeFallback trims the fallback locale and substitutes
// DefaultFallbackLocale when nothing is left.
func NormalizeFallback(locale string) string {
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		return trimmed
	}
	return DefaultFallbackLocale
}
