// Package sink defines the Sink interface for record output.
package sink

import (
	"github.com/minjae-dev/logsift/internal/record"
)

// Sink receives records and writes them to an output destination.
type Sink interface {
	// Write outputs a single record.
	Write(r *record.Record) error

	// Flush ensures all buffered output is written.
	Flush() error

	// Close releases resources held by the sink.
	Close() error

	// Name returns a human-readable identifier for this sink.
	Name() string
}
