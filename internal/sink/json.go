package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/minjae-dev/logsift/internal/record"
)

// JSONSink collects records and emits them as one pretty-printed JSON
// array on Flush. The document is written once; later flushes are no-ops.
type JSONSink struct {
	w       io.Writer
	recs    []record.Record
	flushed bool
}

// NewJSONSink creates a JSON document sink writing to the given writer.
func NewJSONSink(w io.Writer) *JSONSink {
	if w == nil {
		w = os.Stdout
	}
	return &JSONSink{w: w, recs: make([]record.Record, 0, 64)}
}

// Write buffers one record for the document.
func (s *JSONSink) Write(r *record.Record) error {
	s.recs = append(s.recs, *r)
	return nil
}

// Flush marshals and writes the collected document.
func (s *JSONSink) Flush() error {
	if s.flushed {
		return nil
	}
	s.flushed = true

	data, err := json.MarshalIndent(s.recs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	data = append(data, '\n')
	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

// Close flushes the document.
func (s *JSONSink) Close() error { return s.Flush() }

// Name returns the sink identifier.
func (s *JSONSink) Name() string { return "json" }
