package commands

import (
	"context"
	"testing"

	"github.com/goliatone/go-localize/pkg/interfaces"
)

type fieldsLogger struct {
	fields map[string]any
}

func (l *fieldsLogger) Trace(string, ...any) {}
func (l *fieldsLogger) Debug(string, ...any) {}
func (l *fieldsLogger) Info(string, ...any)  {}
func (l *fieldsLogger) Warn(string, ...any)  {}
func (l *fieldsLogger) Error(string, ...any) {}
func (l *fieldsLogger) Fatal(string, ...any) {}

func (l *fieldsLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &fieldsLogger{fields: merged}
}

func (l *fieldsLogger) WithContext(context.Context) interfaces.Logger { return l }

type namedProvider struct {
	names []string
}

func (p *namedProvider) GetLogger(name string) interfaces.Logger {
	p.names = append(p.names, name)
	return &fieldsLogger{}
}

func TestCommandLoggerScopesModule(t *testing.T) {
	provider := &namedProvider{}
	logger := CommandLogger(provider, " coverage ")

	if len(provider.names) != 1 || provider.names[0] != "localize.commands.coverage" {
		t.Fatalf("unexpected logger names %v", provider.names)
	}
	fl, ok := logger.(*fieldsLogger)
	if !ok {
		t.Fatalf("expected fields logger, got %T", logger)
	}
	if fl.fields["component"] != "command" || fl.fields["command_module"] != "coverage" {
		t.Fatalf("unexpected fields %v", fl.fields)
	}
}

func TestCommandLoggerDefaultsModule(t *testing.T) {
	provider := &namedProvider{}
	CommandLogger(provider, "")
	if provider.names[0] != "localize.commands.core" {
		t.Fatalf("expected core module, got %v", provider.names)
	}
}
