package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-localize/pkg/interfaces"
)

const (
	rootModule      = "localize"
	documentsModule = "localize.documents"
	coverageModule  = "localize.coverage"
	telemetryModule = "localize.telemetry"
)

const (
	fieldDocumentID   = "document_id"
	fieldDocumentType = "document_type"
	fieldLocale       = "locale"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// DocumentsLogger returns the logger namespace reserved for document localizers.
func DocumentsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, documentsModule)
}

// CoverageLogger returns the logger namespace reserved for coverage analysis.
func CoverageLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, coverageModule)
}

// TelemetryLogger returns the logger namespace used by logging telemetry sinks.
func TelemetryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, telemetryModule)
}

// WithDocumentContext enriches the logger with document identity and the
// requested locale. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, id, kind, locale string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(id); trimmed != "" {
		fields[fieldDocumentID] = trimmed
	}
	if trimmed := strings.TrimSpace(kind); trimmed != "" {
		fields[fieldDocumentType] = trimmed
	}
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		fields[fieldLocale] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
