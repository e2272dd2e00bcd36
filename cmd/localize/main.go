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
	"strings"

	"github.com/goliatone/go-localize"
	"github.com/goliatone/go-localize/cmd/internal/bootstrap"
	"github.com/goliatone/go-localize/internal/documents"
	"github.com/goliatone/go-localize/internal/runtimeconfig"
)

var moduleBuilder = bootstrap.BuildModule

var errDocumentNotFound = errors.New("document not found")

func main() {
	if err := runLocalize(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("localize: %v", err)
	}
}

func runLocalize(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("localize", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	file := fs.String("file", "", "Path to a JSON array of raw CMS documents (defaults to the sample corpus)")
	id := fs.String("id", "", "Document _id to preview (defaults to every document)")
	locale := fs.String("locale", "", "Locale to localize into")
	fallback := fs.String("fallback", "", "Fallback locale (defaults to config, then en)")
	metadata := fs.Bool("metadata", true, "Attach _localeMeta to the output")
	envFile := fs.String("env", ".env", "Environment file loaded before LOCALIZE_* variables")

	if err := fs.Parse(args); err != nil {
		return err
	}
	target := strings.TrimSpace(*locale)
	if target == "" {
		return errors.New("locale is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		EnvFile:        *envFile,
		CorpusFile:     *file,
		FallbackLocale: *fallback,
		Configure: func(cfg *localize.Config) {
			cfg.Telemetry.Enabled = true
			cfg.Telemetry.Sink = runtimeconfig.SinkMemory
			cfg.Telemetry.SampleEvery = 0
			cfg.Localization.TrackFallbacks = true
			cfg.Localization.IncludeMetadata = *metadata
		},
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()
	docs, err := module.Corpus.List(ctx)
	if skipped := documents.SkippedItems(err); len(skipped) > 0 {
		for _, item := range skipped {
			module.Logger.Warn("corpus.entry_skipped", "index", item.Index, "error", item.Err)
		}
	} else if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	localized := make([]any, 0, len(docs))
	for _, doc := range docs {
		if *id != "" && doc.DocumentID() != *id {
			continue
		}
		if result := module.Module.Localize(ctx, doc, target); result != nil {
			localized = append(localized, result)
		}
	}
	if len(localized) == 0 {
		return fmt.Errorf("%w: %q", errDocumentNotFound, *id)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	for _, doc := range localized {
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("encode document: %w", err)
		}
	}
	return writeSummary(out, target, module.Module.TelemetrySummary())
}

func writeSummary(out io.Writer, locale string, summary localize.TelemetrySummary) error {
	rows := summary.Rows()
	if len(rows) == 0 {
		_, err := fmt.Fprintf(out, "\nNo fallbacks for %s.\n", bootstrap.LocaleName(locale))
		return err
	}
	if _, err := fmt.Fprintf(out, "\nFallbacks for %s (%d):\n", bootstrap.LocaleName(locale), summary.Total()); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(out, "  %-18s %-8s %d\n", row.FieldName, row.RequestedLocale, row.Count); err != nil {
			return err
		}
	}
	return nil
}
