package coveragecmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-localize/internal/commands"
	"github.com/goliatone/go-localize/internal/coverage"
	"github.com/goliatone/go-localize/internal/documents"
	"github.com/goliatone/go-localize/internal/logging"
	"github.com/goliatone/go-localize/pkg/interfaces"
)

const auditOperation = "coverage.audit"

var (
	// ErrCoverageBelowThreshold is returned when a run misses MinimumCoverage.
	ErrCoverageBelowThreshold = errors.New("coverage command: coverage below threshold")
	// ErrSourceRequired is returned when the handler has no corpus source.
	ErrSourceRequired = errors.New("coverage command: corpus source required")
)

var _ command.Commander[AuditCoverageCommand] = (*AuditCoverageHandler)(nil)

// CorpusSource enumerates the raw documents to audit.
type CorpusSource interface {
	List(ctx context.Context) ([]documents.Document, error)
}

// ReportFunc receives the finished corpus report.
type ReportFunc func(ctx context.Context, report coverage.CorpusReport) error

// AuditCoverageHandler runs coverage audits via the shared command handler foundation.
type AuditCoverageHandler struct {
	inner *commands.Handler[AuditCoverageCommand]
}

// NewAuditCoverageHandler creates a handler reading documents from source and
// passing each report to sink. A nil sink discards reports.
func NewAuditCoverageHandler(source CorpusSource, logger interfaces.Logger, sink ReportFunc, opts ...commands.HandlerOption[AuditCoverageCommand]) *AuditCoverageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg AuditCoverageCommand) error {
		if source == nil {
			return ErrSourceRequired
		}
		docs, listErr := source.List(ctx)
		if listErr != nil && documents.SkippedItems(listErr) == nil {
			return fmt.Errorf("coverage command: list corpus: %w", listErr)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		analyzer := coverage.NewAnalyzer(
			coverage.WithLogger(baseLogger),
			coverage.WithKinds(msg.DocumentKinds()...),
		)
		report := analyzer.Analyze(ctx, docs, strings.TrimSpace(msg.Locale)).WithSkipped(listErr)
		if len(report.Skipped) > 0 {
			logging.WithFields(baseLogger, map[string]any{
				"skipped_count": len(report.Skipped),
				"locale":        report.Locale,
			}).Warn("coverage.command.audit.skipped_documents")
		}

		if sink != nil {
			if err := sink(ctx, report); err != nil {
				return fmt.Errorf("coverage command: report: %w", err)
			}
		}
		if msg.MinimumCoverage > 0 && report.CoveragePercentage < msg.MinimumCoverage {
			return fmt.Errorf("%w: %.1f%% < %.1f%%", ErrCoverageBelowThreshold, report.CoveragePercentage, msg.MinimumCoverage)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[AuditCoverageCommand]{
		commands.WithLogger[AuditCoverageCommand](baseLogger),
		commands.WithOperation[AuditCoverageCommand](auditOperation),
		commands.WithMessageFields(func(msg AuditCoverageCommand) map[string]any {
			fields := map[string]any{
				"locale": msg.Locale,
			}
			if len(msg.Kinds) > 0 {
				fields["kinds"] = strings.Join(msg.Kinds, ",")
			}
			if msg.MinimumCoverage > 0 {
				fields["minimum_coverage"] = msg.MinimumCoverage
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &AuditCoverageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[AuditCoverageCommand].
func (h *AuditCoverageHandler) Execute(ctx context.Context, msg AuditCoverageCommand) error {
	return h.inner.Execute(ctx, msg)
}
