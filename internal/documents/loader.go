package documents

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:embed testdata/corpus_fixture.json
var defaultFixtureData embed.FS

// DefaultFixture decodes the built-in sample corpus.
func DefaultFixture() ([]Document, error) {
	data, err := defaultFixtureData.ReadFile("testdata/corpus_fixture.json")
	if err != nil {
		return nil, fmt.Errorf("documents: read embedded fixture: %w", err)
	}
	return DecodeCorpus(data)
}

// Loader reads a corpus file (a JSON array of raw documents) from disk.
type Loader struct {
	path string
}

// NewLoader constructs a loader for path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and decodes the configured corpus file. Like DecodeCorpus it
// returns the decodable documents together with a *CorpusError when some
// entries were skipped.
func (l *Loader) Load(ctx context.Context) ([]Document, error) {
	if l == nil || l.path == "" {
		return nil, errors.New("documents: loader path cannot be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("documents: open corpus %q: %w", l.path, err)
	}
	defer file.Close()

	return ReadCorpus(file)
}

// List satisfies corpus source contracts that enumerate documents.
func (l *Loader) List(ctx context.Context) ([]Document, error) {
	return l.Load(ctx)
}

// ReadCorpus decodes a corpus from r.
func ReadCorpus(r io.Reader) ([]Document, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("documents: read corpus: %w", err)
	}
	return DecodeCorpus(buf.Bytes())
}

// StaticSource serves a fixed document slice.
type StaticSource []Document

// List returns the documents.
func (s StaticSource) List(context.Context) ([]Document, error) {
	return append([]Document(nil), s...), nil
}
