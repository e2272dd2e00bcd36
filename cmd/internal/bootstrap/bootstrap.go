package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-localize"
	"github.com/goliatone/go-localize/internal/di"
	"github.com/goliatone/go-localize/internal/documents"
	"github.com/goliatone/go-localize/pkg/interfaces"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Options captures configuration shared by the localize CLIs.
type Options struct {
	// EnvFile is loaded before reading LOCALIZE_* variables. A missing file is ignored.
	EnvFile string
	// CorpusFile is a JSON array of raw documents. Empty uses the built-in sample corpus.
	CorpusFile     string
	FallbackLocale string
	Configure      func(*localize.Config)
	LoggerProvider interfaces.LoggerProvider
}

// Module bundles the runtime module with the corpus it was built over.
type Module struct {
	Module *localize.Module
	Corpus CorpusSource
	Logger interfaces.Logger
}

// CorpusSource enumerates raw documents.
type CorpusSource interface {
	List(ctx context.Context) ([]documents.Document, error)
}

// LoadConfig reads the env file, then LOCALIZE_* variables over the defaults.
func LoadConfig(envFile string) (localize.Config, error) {
	if path := strings.TrimSpace(envFile); path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return localize.Config{}, fmt.Errorf("load env file %q: %w", path, err)
		}
	}
	return localize.LoadConfigFromEnv()
}

// BuildModule constructs a module bound to the corpus described by opts.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := LoadConfig(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	if fallback := strings.TrimSpace(opts.FallbackLocale); fallback != "" {
		cfg.FallbackLocale = fallback
	}
	if opts.Configure != nil {
		opts.Configure(&cfg)
	}

	source, err := OpenCorpus(opts.CorpusFile)
	if err != nil {
		return nil, err
	}

	diOpts := []di.Option{di.WithCorpusSource(source)}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}
	module, err := localize.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise localize module: %w", err)
	}
	return &Module{
		Module: module,
		Corpus: source,
		Logger: module.Container().Logger("cli"),
	}, nil
}

// OpenCorpus returns a file loader for path, or the sample corpus when path is empty.
func OpenCorpus(path string) (CorpusSource, error) {
	if path = strings.TrimSpace(path); path != "" {
		return documents.NewLoader(path), nil
	}
	docs, err := documents.DefaultFixture()
	if err != nil {
		return nil, fmt.Errorf("load sample corpus: %w", err)
	}
	return documents.StaticSource(docs), nil
}

// LocaleName renders a locale as "Spanish (es)". Unparseable codes are
// returned unchanged.
func LocaleName(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return locale
	}
	return fmt.Sprintf("%s (%s)", name, locale)
}

// SplitList splits a comma separated flag value, dropping blanks.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
