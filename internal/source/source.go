// Package source defines the Source interface and file/stdin inputs.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Source reads raw log lines from an input and emits them on a channel.
// Implementations must close the returned channel when the source is
// exhausted or the context is cancelled.
type Source interface {
	// Start begins reading from the source. The returned channel receives
	// lines until the source is exhausted or ctx is cancelled.
	Start(ctx context.Context) (<-chan string, error)

	// Name returns a human-readable identifier for this source.
	Name() string
}

// gzipReadCloser closes both the gzip stream and the underlying file.
type gzipReadCloser struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipReadCloser) Close() error {
	if err := g.Reader.Close(); err != nil {
		g.f.Close()
		return err
	}
	return g.f.Close()
}

// Open returns a reader over the file at path, transparently decompressing
// gzip input by extension. The os error is returned unwrapped for missing
// files so callers can report them distinctly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open gzip %s: %w", path, err)
	}
	return &gzipReadCloser{Reader: zr, f: f}, nil
}
