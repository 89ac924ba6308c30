package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextParserDefaultPattern(t *testing.T) {
	p, err := NewTextParser("")
	require.NoError(t, err)

	input := `2024-01-15T10:00:00 ERROR Timeout: db
[2024-01-15T10:00:01] WARN disk almost full

2024-01-15T10:00:02.123 INFO started`

	recs, err := p.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 3, "blank lines are skipped")

	assert.Equal(t, "2024-01-15T10:00:00", recs[0].Timestamp)
	assert.Equal(t, "ERROR", recs[0].Level)
	assert.Equal(t, "Timeout: db", recs[0].Message)

	assert.Equal(t, "2024-01-15T10:00:01", recs[1].Timestamp)
	assert.Equal(t, "WARN", recs[1].Level)
	assert.Equal(t, "disk almost full", recs[1].Message)

	assert.Equal(t, "2024-01-15T10:00:02.123", recs[2].Timestamp)
}

func TestTextParserFallbackRecord(t *testing.T) {
	p, err := NewTextParser("")
	require.NoError(t, err)
	fixed := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	rec, ok := p.ParseLine("  something that matches no pattern  ")
	require.True(t, ok)
	assert.Equal(t, "something that matches no pattern", rec.Message, "message is the trimmed line")
	assert.Equal(t, "INFO", rec.Level)
	assert.Equal(t, "2024-01-15T10:00:00.000000", rec.Timestamp, "fallback fabricates a parse-time timestamp")
}

func TestTextParserCustomPattern(t *testing.T) {
	p, err := NewTextParser(`^(?P<level>\w+)\|(?P<timestamp>[\d\-T:]+)\|(?P<message>.+)$`)
	require.NoError(t, err)

	rec, ok := p.ParseLine("ERROR|2024-01-15T10:00:00|boom")
	require.True(t, ok)
	assert.Equal(t, "ERROR", rec.Level)
	assert.Equal(t, "2024-01-15T10:00:00", rec.Timestamp)
	assert.Equal(t, "boom", rec.Message)
}

func TestTextParserPatternValidation(t *testing.T) {
	// Missing named groups fail at construction, not at first match.
	_, err := NewTextParser(`^(?P<timestamp>\S+) (?P<level>\w+)$`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message")

	_, err = NewTextParser(`([`)
	require.Error(t, err)
}

func TestAutoLine(t *testing.T) {
	a, err := NewAutoLine("")
	require.NoError(t, err)

	rec, ok := a.ParseLine(`{"level":"ERROR","message":"json line"}`)
	require.True(t, ok)
	assert.Equal(t, "ERROR", rec.Level)
	assert.Equal(t, "json line", rec.Message)

	rec, ok = a.ParseLine("2024-01-15T10:00:00 WARN text line")
	require.True(t, ok)
	assert.Equal(t, "WARN", rec.Level)

	// A brace-prefixed line that is not valid JSON falls back to text.
	rec, ok = a.ParseLine("{ not json")
	require.True(t, ok)
	assert.Equal(t, "{ not json", rec.Message)

	_, ok = a.ParseLine("   ")
	assert.False(t, ok)
}
