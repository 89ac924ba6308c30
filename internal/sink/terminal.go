package sink

import (
	"fmt"
	"io"
	"os"

	"github.com/minjae-dev/logsift/internal/record"
)

// color ANSI escape codes.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// TerminalSink writes records as human-readable lines with optional ANSI
// color keyed off the canonical level.
type TerminalSink struct {
	w     io.Writer
	color bool
}

// NewTerminalSink creates a sink that writes to the given writer.
// If color is true, output includes ANSI color codes based on severity.
func NewTerminalSink(w io.Writer, color bool) *TerminalSink {
	if w == nil {
		w = os.Stdout
	}
	return &TerminalSink{w: w, color: color}
}

// Write outputs one formatted record line.
func (s *TerminalSink) Write(r *record.Record) error {
	level := r.CanonicalLevel()

	if !s.color {
		if r.Timestamp != "" {
			_, err := fmt.Fprintf(s.w, "[%s][%s]: %s\n", r.Timestamp, level, r.Message)
			return err
		}
		_, err := fmt.Fprintf(s.w, "[%s]: %s\n", level, r.Message)
		return err
	}

	lc := levelColor(level)
	if r.Timestamp != "" {
		_, err := fmt.Fprintf(s.w, "%s[%s]%s%s[%s]%s: %s\n",
			colorGray, r.Timestamp, colorReset,
			lc, level, colorReset,
			r.Message,
		)
		return err
	}
	_, err := fmt.Fprintf(s.w, "%s[%s]%s: %s\n", lc, level, colorReset, r.Message)
	return err
}

// Flush is a no-op for terminal output.
func (s *TerminalSink) Flush() error { return nil }

// Close is a no-op for terminal output.
func (s *TerminalSink) Close() error { return nil }

// Name returns the sink identifier.
func (s *TerminalSink) Name() string { return "terminal" }

func levelColor(level string) string {
	switch record.Ordinal(level) {
	case record.OrdinalError, record.OrdinalFatal:
		return colorBold + colorRed
	case record.OrdinalWarn:
		return colorYellow
	case record.OrdinalDebug:
		return colorGray
	default:
		return colorCyan
	}
}
