package source

import (
	"context"
	"os"
)

// StdinSource reads log lines from os.Stdin (pipe mode).
type StdinSource struct{}

// NewStdinSource creates a source that reads from stdin.
func NewStdinSource() *StdinSource {
	return &StdinSource{}
}

// Name returns the source identifier.
func (s *StdinSource) Name() string {
	return "stdin"
}

// Start reads from stdin and returns a channel of raw lines.
func (s *StdinSource) Start(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 256)

	go func() {
		defer close(ch)

		scanner := newLineScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case <-ctx.Done():
				return
			case ch <- scanner.Text():
			}
		}
	}()

	return ch, nil
}
