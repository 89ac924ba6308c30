package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/minjae-dev/logsift/internal/record"
)

// DefaultTextPattern matches "timestamp level message" lines, with the
// timestamp optionally bracketed.
const DefaultTextPattern = `^\[?(?P<timestamp>[\d\-T:\.]+)\]?\s+(?P<level>\w+)\s+(?P<message>.+)$`

// requiredGroups are the named capture groups a text pattern must define.
var requiredGroups = []string{"timestamp", "level", "message"}

// isoLayout mirrors the timestamp shape emitted for fallback records.
const isoLayout = "2006-01-02T15:04:05.000000"

// TextParser parses free-text logs line by line with a compiled regular
// expression. The pattern is validated at construction: it must define the
// named groups timestamp, level, and message, making a misconfigured
// pattern an explicit startup error rather than silent data loss.
type TextParser struct {
	re     *regexp.Regexp
	groups map[string]int

	// now is the clock for fallback timestamps; swappable in tests.
	now func() time.Time
}

// NewTextParser compiles a text parser. An empty pattern selects
// DefaultTextPattern.
func NewTextParser(pattern string) (*TextParser, error) {
	if pattern == "" {
		pattern = DefaultTextPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid text pattern %q: %w", pattern, err)
	}

	groups := make(map[string]int)
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups[name] = i
		}
	}
	for _, name := range requiredGroups {
		if _, ok := groups[name]; !ok {
			return nil, fmt.Errorf("text pattern %q missing named group %q", pattern, name)
		}
	}

	return &TextParser{
		re:     re,
		groups: groups,
		now:    time.Now,
	}, nil
}

// Parse reads the input line by line, skipping blank lines.
func (p *TextParser) Parse(r io.Reader) ([]record.Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var recs []record.Record
	for sc.Scan() {
		if rec, ok := p.ParseLine(sc.Text()); ok {
			recs = append(recs, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return recs, nil
}

// ParseLine parses a single line. On a pattern match the named groups
// populate the record; a group that did not participate stays absent. A
// non-matching line yields the fallback record: the whole trimmed line as
// the message, level INFO, and the current time as the timestamp.
func (p *TextParser) ParseLine(line string) (record.Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return record.Record{}, false
	}

	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return record.Record{
			Timestamp: p.now().Format(isoLayout),
			Level:     "INFO",
			Message:   line,
		}, true
	}
	return record.Record{
		Timestamp: m[p.groups["timestamp"]],
		Level:     m[p.groups["level"]],
		Message:   m[p.groups["message"]],
	}, true
}
