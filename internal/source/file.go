package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// FileSource reads log lines from a file, optionally following new writes
// (tail -f). Following is not supported for gzip input.
type FileSource struct {
	path   string
	follow bool
}

// NewFileSource creates a source that reads from a file.
// If follow is true, it continues reading as new lines are appended.
func NewFileSource(path string, follow bool) *FileSource {
	return &FileSource{path: path, follow: follow}
}

// Name returns the source identifier.
func (s *FileSource) Name() string {
	return fmt.Sprintf("file:%s", s.path)
}

// Start opens the file and returns a channel of raw lines.
func (s *FileSource) Start(ctx context.Context) (<-chan string, error) {
	if s.follow && strings.HasSuffix(s.path, ".gz") {
		return nil, fmt.Errorf("cannot follow gzip file %s", s.path)
	}

	rc, err := Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", s.path, err)
	}

	ch := make(chan string, 256)

	go func() {
		defer close(ch)
		defer rc.Close()

		scanner := newLineScanner(rc)
		for {
			for scanner.Scan() {
				select {
				case <-ctx.Done():
					return
				case ch <- scanner.Text():
				}
			}

			if !s.follow {
				return
			}

			// Poll for appended data when following.
			select {
			case <-ctx.Done():
				return
			case <-time.After(100 * time.Millisecond):
				scanner = newLineScanner(rc)
			}
		}
	}()

	return ch, nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return sc
}
