// Package parser turns raw log input into sequences of records. Three
// variants exist: a JSON document parser with a JSON-lines fallback, a
// strict JSON document loader, and a regex-based text parser.
package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/minjae-dev/logsift/internal/record"
)

// Format classifies raw log input.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Parser produces records from raw input in a single pass.
type Parser interface {
	Parse(r io.Reader) ([]record.Record, error)
}

// LineParser parses one log line at a time, for streaming sources.
// The second return value is false when the line produced no record.
type LineParser interface {
	ParseLine(line string) (record.Record, bool)
}

// DetectFormat inspects the first non-empty line of the input: if it begins
// with '{' or '[' the input is classified as JSON, otherwise as text. This
// is a heuristic, not a validator; downstream parsers tolerate
// misclassification.
func DetectFormat(r io.Reader) Format {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			return FormatJSON
		}
		return FormatText
	}
	return FormatText
}

// AutoLine parses one line at a time, trying JSON for lines that look
// structured and falling back to the text pattern. Used by streaming
// sources where the whole input cannot be inspected up front.
type AutoLine struct {
	json *JSONParser
	text *TextParser
}

// NewAutoLine creates a per-line auto parser with the given text pattern
// (empty selects the default).
func NewAutoLine(pattern string) (*AutoLine, error) {
	text, err := NewTextParser(pattern)
	if err != nil {
		return nil, err
	}
	return &AutoLine{json: NewJSONParser(), text: text}, nil
}

// ParseLine implements LineParser.
func (a *AutoLine) ParseLine(line string) (record.Record, bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "{") {
		if rec, ok := a.json.ParseLine(trimmed); ok {
			return rec, true
		}
	}
	return a.text.ParseLine(line)
}

// ForFormat returns the parser for a detected or requested format.
// The pattern is only consulted for text input; an empty pattern selects
// the default.
func ForFormat(f Format, pattern string) (Parser, error) {
	if f == FormatJSON {
		return NewJSONParser(), nil
	}
	return NewTextParser(pattern)
}
