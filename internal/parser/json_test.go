package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Format
	}{
		{"array", `[{"level":"INFO"}]`, FormatJSON},
		{"object", `{"level":"INFO"}`, FormatJSON},
		{"text", "2024-01-15T10:00:00 INFO started", FormatText},
		{"leading blank lines", "\n\n  \n{\"a\":1}", FormatJSON},
		{"empty input", "", FormatText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(strings.NewReader(tt.input)))
		})
	}
}

func TestJSONParserArray(t *testing.T) {
	input := `[
		{"timestamp":"2024-01-15T10:00:00","level":"ERROR","service":"api","host":"web-1","message":"Timeout: db"},
		{"level":"INFO","message":"ok"}
	]`

	recs, err := NewJSONParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "2024-01-15T10:00:00", recs[0].Timestamp)
	assert.Equal(t, "ERROR", recs[0].Level)
	assert.Equal(t, "api", recs[0].Service)
	assert.Equal(t, "web-1", recs[0].Host)
	assert.Equal(t, "Timeout: db", recs[0].Message)

	assert.Equal(t, "INFO", recs[1].Level)
	assert.Empty(t, recs[1].Timestamp)
}

func TestJSONParserSingleObject(t *testing.T) {
	recs, err := NewJSONParser().Parse(strings.NewReader(`{"level":"WARN","message":"disk"}`))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "WARN", recs[0].Level)
}

func TestJSONParserLinesFallback(t *testing.T) {
	input := `{"level":"INFO","message":"one"}
{"level":"ERROR","message":"two"}

not json at all
{"level":"DEBUG","message":"three"}`

	recs, err := NewJSONParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 3, "the malformed line is skipped, not fatal")
	assert.Equal(t, "one", recs[0].Message)
	assert.Equal(t, "two", recs[1].Message)
	assert.Equal(t, "three", recs[2].Message)
}

func TestJSONParserArrayLinesEquivalence(t *testing.T) {
	objects := []string{
		`{"level":"INFO","message":"a"}`,
		`{"level":"ERROR","message":"b","service":"svc"}`,
		`{"level":"WARN","message":"c","extra":42}`,
	}

	asArray := "[" + strings.Join(objects, ",") + "]"
	asLines := strings.Join(objects, "\n")

	p := NewJSONParser()
	fromArray, err := p.Parse(strings.NewReader(asArray))
	require.NoError(t, err)
	fromLines, err := p.Parse(strings.NewReader(asLines))
	require.NoError(t, err)

	assert.Equal(t, fromArray, fromLines)
}

func TestJSONParserPreservesExtraFields(t *testing.T) {
	input := `{"level":"INFO","message":"hi","request_id":"req_1","count":2,"ok":true,"nothing":null,"nested":{"a":1}}`

	recs, err := NewJSONParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	fields := recs[0].Fields
	assert.Equal(t, "req_1", fields["request_id"])
	assert.Equal(t, float64(2), fields["count"])
	assert.Equal(t, true, fields["ok"])
	assert.Contains(t, fields, "nothing")
	assert.Nil(t, fields["nothing"])
	assert.Contains(t, fields, "nested")
}

func TestJSONParserMistypedKnownKeys(t *testing.T) {
	input := `{"level":"ERROR","message":42,"timestamp":1700000000,"service":"api"}`

	recs, err := NewJSONParser().Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// Non-string values under known keys land in Fields so the record
	// still serializes the way it arrived.
	assert.Equal(t, "ERROR", recs[0].Level)
	assert.Equal(t, "api", recs[0].Service)
	assert.Empty(t, recs[0].Message)
	assert.Equal(t, float64(42), recs[0].Fields["message"])
	assert.Equal(t, float64(1700000000), recs[0].Fields["timestamp"])

	data, err := recs[0].MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":42`)
}

func TestJSONParserEmptyResult(t *testing.T) {
	// All lines malformed: the best-effort policy yields an empty result,
	// not an error.
	recs, err := NewJSONParser().Parse(strings.NewReader("garbage\nmore garbage"))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestLoadDocumentStrict(t *testing.T) {
	recs, err := LoadDocument(strings.NewReader(`[{"level":"INFO","message":"a"}]`))
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	recs, err = LoadDocument(strings.NewReader(`{"level":"INFO","message":"a"}`))
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	_, err = LoadDocument(strings.NewReader(`{"level": oops`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")

	_, err = LoadDocument(strings.NewReader(`"just a string"`))
	require.Error(t, err)
}
