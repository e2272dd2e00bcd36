package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by LoadFromEnv.
const EnvPrefix = "LOCALIZE_"

// Telemetry sink identifiers.
const (
	SinkNoOp    = "noop"
	SinkMemory  = "memory"
	SinkLogging = "logging"
)

var ErrFallbackLocaleRequired = errors.New("localize config: fallback locale is required")
var ErrDefaultLocaleRequired = errors.New("localize config: default locale is required")
var ErrTelemetrySinkUnknown = errors.New("localize config: telemetry sink is invalid")
var ErrTelemetryCapacityInvalid = errors.New("localize config: telemetry capacity must be zero or positive")
var ErrTelemetrySampleInvalid = errors.New("localize config: telemetry sample rate must be zero or positive")
var ErrTrackFallbacksRequiresTelemetry = errors.New("localize config: tracking fallbacks requires telemetry to be enabled")
var ErrTrackFallbacksRequiresSink = errors.New("localize config: tracking fallbacks requires a recording telemetry sink")
var ErrLoggingProviderRequired = errors.New("localize config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("localize config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("localize config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("localize config: logging format is invalid")

// Config aggregates locale defaults, telemetry routing and logging options
// for the localization module.
type Config struct {
	DefaultLocale  string             `env:"DEFAULT_LOCALE"`
	FallbackLocale string             `env:"FALLBACK_LOCALE"`
	Locales        []string           `env:"LOCALES" envSeparator:","`
	Telemetry      TelemetryConfig    `envPrefix:"TELEMETRY_"`
	Localization   LocalizationConfig `envPrefix:"LOCALIZATION_"`
	Features       Features           `envPrefix:"FEATURES_"`
	Logging        LoggingConfig      `envPrefix:"LOGGING_"`
}

// TelemetryConfig selects where non-direct resolutions are recorded.
type TelemetryConfig struct {
	Enabled bool   `env:"ENABLED"`
	Sink    string `env:"SINK"`
	// Capacity bounds the memory sink. Zero keeps every entry.
	Capacity int `env:"CAPACITY"`
	// SampleEvery forwards one in N entries. Zero or one records all.
	SampleEvery int `env:"SAMPLE_EVERY"`
}

// LocalizationConfig holds the defaults applied by the module localizer.
type LocalizationConfig struct {
	TrackFallbacks  bool `env:"TRACK_FALLBACKS"`
	IncludeMetadata bool `env:"INCLUDE_METADATA"`
}

// Features toggles module functionality.
type Features struct {
	Logger bool `env:"LOGGER"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `env:"PROVIDER"`
	Level     string   `env:"LEVEL"`
	Format    string   `env:"FORMAT"`
	AddSource bool     `env:"ADD_SOURCE"`
	Focus     []string `env:"FOCUS" envSeparator:","`
}

// DefaultConfig returns production defaults: english fallback, telemetry off.
func DefaultConfig() Config {
	return Config{
		DefaultLocale:  "en",
		FallbackLocale: "en",
		Locales:        []string{"en"},
		Telemetry: TelemetryConfig{
			Sink: SinkNoOp,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// LoadFromEnv overlays LOCALIZE_* environment variables on DefaultConfig.
func LoadFromEnv() (Config, error) {
	return load(env.Options{Prefix: EnvPrefix})
}

// LoadFromMap is LoadFromEnv over an explicit environment.
func LoadFromMap(environ map[string]string) (Config, error) {
	return load(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func load(opts env.Options) (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("localize config: parse env: %w", err)
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	return cfg.validate(false)
}

// ValidateInjectedSink is Validate for runtimes whose telemetry sink is
// supplied by the caller, so Telemetry.Sink is never consulted.
func (cfg Config) ValidateInjectedSink() error {
	return cfg.validate(true)
}

func (cfg Config) validate(sinkInjected bool) error {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if strings.TrimSpace(cfg.FallbackLocale) == "" {
		return ErrFallbackLocaleRequired
	}
	if cfg.Telemetry.Enabled {
		if sink := NormalizeSink(cfg.Telemetry.Sink); !isSupportedSink(sink) {
			return fmt.Errorf("%w: %s", ErrTelemetrySinkUnknown, sink)
		}
	}
	if cfg.Telemetry.Capacity < 0 {
		return fmt.Errorf("%w: %d", ErrTelemetryCapacityInvalid, cfg.Telemetry.Capacity)
	}
	if cfg.Telemetry.SampleEvery < 0 {
		return fmt.Errorf("%w: %d", ErrTelemetrySampleInvalid, cfg.Telemetry.SampleEvery)
	}
	if cfg.Localization.TrackFallbacks {
		if !cfg.Telemetry.Enabled {
			return ErrTrackFallbacksRequiresTelemetry
		}
		if !sinkInjected && NormalizeSink(cfg.Telemetry.Sink) == SinkNoOp {
			return ErrTrackFallbacksRequiresSink
		}
	}
	if cfg.Features.Logger {
		provider := NormalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// NormalizeProvider lowercases and trims a logging provider name.
func NormalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

// NormalizeSink lowercases a sink name; empty means SinkNoOp.
func NormalizeSink(sink string) string {
	sink = strings.ToLower(strings.TrimSpace(sink))
	if sink == "" {
		return SinkNoOp
	}
	return sink
}

func isSupportedSink(sink string) bool {
	switch sink {
	case SinkNoOp, SinkMemory, SinkLogging:
		return true
	default:
		return false
	}
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
