package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/goliatone/go-localize"
	"github.com/goliatone/go-localize/cmd/internal/bootstrap"
	coveragecmd "github.com/goliatone/go-localize/internal/commands/coverage"
	"github.com/goliatone/go-localize/internal/coverage"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runCoverage(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("coverage: %v", err)
	}
}

func runCoverage(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("coverage", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("file", "", "Path to a JSON array of raw CMS documents (defaults to the sample corpus)")
	locale := fs.String("locale", "", "Locale to audit for direct translations")
	types := fs.String("types", "", "Comma separated document types to include (post,category,author)")
	format := fs.String("format", "text", "Output format: text or json")
	minimum := fs.Float64("min", 0, "Fail when corpus coverage is below this percentage")
	envFile := fs.String("env", ".env", "Environment file loaded before LOCALIZE_* variables")

	if err := fs.Parse(args); err != nil {
		return err
	}

	render, err := rendererFor(*format, out)
	if err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		EnvFile:    *envFile,
		CorpusFile: *file,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	report, err := module.Module.AuditCoverage(context.Background(), localize.AuditCoverageCommand{
		Locale:          strings.TrimSpace(*locale),
		Kinds:           bootstrap.SplitList(*types),
		MinimumCoverage: *minimum,
	}, localize.WithAuditTimeout(0))
	if err != nil && !errors.Is(err, coveragecmd.ErrCoverageBelowThreshold) {
		return err
	}
	if renderErr := render(report); renderErr != nil {
		return renderErr
	}
	return err
}

func rendererFor(format string, out io.Writer) (func(coverage.CorpusReport) error, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return func(report coverage.CorpusReport) error {
			return writeText(out, report)
		}, nil
	case "json":
		return func(report coverage.CorpusReport) error {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func writeText(out io.Writer, report coverage.CorpusReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Translation coverage for %s\n", bootstrap.LocaleName(report.Locale))
	fmt.Fprintf(&b, "  documents: %d (%d fully translated)\n", report.TotalDocuments, report.FullyTranslated)
	fmt.Fprintf(&b, "  fields:    %d/%d (%.1f%%)\n", report.TranslatedFields, report.TotalFields, report.CoveragePercentage)
	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "  skipped:   %d unreadable corpus entries\n", len(report.Skipped))
		for _, skipped := range report.Skipped {
			fmt.Fprintf(&b, "    #%d %s\n", skipped.Index, skipped.Reason)
		}
	}

	incomplete := report.Incomplete()
	if len(incomplete) == 0 {
		b.WriteString("\nAll documents are fully translated.\n")
		_, err := io.WriteString(out, b.String())
		return err
	}

	b.WriteString("\nMissing translations:\n")
	for _, doc := range incomplete {
		fmt.Fprintf(&b, "  %-8s %-24s %5.1f%%  %s\n", doc.Kind, doc.DocumentID, doc.CoveragePercentage, strings.Join(doc.MissingFields, ", "))
	}

	b.WriteString("\nMissing by field:\n")
	fields := make([]string, 0, len(report.MissingByField))
	for field := range report.MissingByField {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	for _, field := range fields {
		fmt.Fprintf(&b, "  %-18s %d\n", field, report.MissingByField[field])
	}

	_, err := io.WriteString(out, b.String())
	return err
}
