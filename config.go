package localize

import "github.com/goliatone/go-localize/internal/runtimeconfig"

var (
	ErrDefaultLocaleRequired           = runtimeconfig.ErrDefaultLocaleRequired
	ErrFallbackLocaleRequired          = runtimeconfig.ErrFallbackLocaleRequired
	ErrTelemetrySinkUnknown            = runtimeconfig.ErrTelemetrySinkUnknown
	ErrTelemetryCapacityInvalid        = runtimeconfig.ErrTelemetryCapacityInvalid
	ErrTelemetrySampleInvalid          = runtimeconfig.ErrTelemetrySampleInvalid
	ErrTrackFallbacksRequiresTelemetry = runtimeconfig.ErrTrackFallbacksRequiresTelemetry
	ErrTrackFallbacksRequiresSink      = runtimeconfig.ErrTrackFallbacksRequiresSink
	ErrLoggingProviderRequired         = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown          = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid             = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid            = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config             = runtimeconfig.Config
	TelemetryConfig    = runtimeconfig.TelemetryConfig
	LocalizationConfig = runtimeconfig.LocalizationConfig
	Features           = runtimeconfig.Features
	LoggingConfig      = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfigFromEnv overlays LOCALIZE_* environment variables on DefaultConfig.
func LoadConfigFromEnv() (Config, error) {
	return runtimeconfig.LoadFromEnv()
}
