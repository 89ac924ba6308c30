package filter

import (
	"testing"

	"github.com/minjae-dev/logsift/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordsWithLevels(levels ...string) []record.Record {
	recs := make([]record.Record, len(levels))
	for i, l := range levels {
		recs[i] = record.Record{Level: l, Message: "msg " + l}
	}
	return recs
}

func TestMinLevel(t *testing.T) {
	recs := recordsWithLevels("DEBUG", "info", "WARN", "WARNING", "ERROR", "FATAL", "")

	got := Apply(recs, NewMinLevel("WARN"))
	require.Len(t, got, 4)
	assert.Equal(t, "WARN", got[0].Level)
	assert.Equal(t, "WARNING", got[1].Level)
	assert.Equal(t, "ERROR", got[2].Level)
	assert.Equal(t, "FATAL", got[3].Level)
}

func TestMinLevelPassThrough(t *testing.T) {
	recs := recordsWithLevels("DEBUG", "ERROR")
	got := Apply(recs, NewMinLevel(""))
	assert.Equal(t, recs, got)
}

func TestMinLevelUnknownLevels(t *testing.T) {
	recs := recordsWithLevels("TRACE", "ERROR")

	// Unknown levels rank with DEBUG: they pass a DEBUG threshold but not
	// an INFO one.
	assert.Len(t, Apply(recs, NewMinLevel("DEBUG")), 2)
	got := Apply(recs, NewMinLevel("INFO"))
	require.Len(t, got, 1)
	assert.Equal(t, "ERROR", got[0].Level)

	// An unknown threshold ranks at zero too, passing everything.
	assert.Len(t, Apply(recs, NewMinLevel("BOGUS")), 2)
}

func TestMinLevelMonotonic(t *testing.T) {
	recs := recordsWithLevels("DEBUG", "INFO", "WARN", "ERROR", "FATAL", "INFO", "ERROR")

	// Filtering at INFO then at ERROR equals filtering once at ERROR.
	twice := Apply(Apply(recs, NewMinLevel("INFO")), NewMinLevel("ERROR"))
	once := Apply(recs, NewMinLevel("ERROR"))
	assert.Equal(t, once, twice)
}

func TestMinLevelDoesNotMutate(t *testing.T) {
	recs := recordsWithLevels("error")
	got := Apply(recs, NewMinLevel("WARN"))
	require.Len(t, got, 1)
	assert.Equal(t, "error", got[0].Level, "filters select, never canonicalize")
}

func TestChainModes(t *testing.T) {
	rec := record.Record{Level: "ERROR", Message: "connection refused"}

	and := NewChain(MatchAll, NewMinLevel("ERROR"), NewKeywordFilter("refused"))
	assert.True(t, and.Match(&rec))
	and.Add(NewKeywordFilter("absent"))
	assert.False(t, and.Match(&rec))

	or := NewChain(MatchAny, NewKeywordFilter("absent"), NewKeywordFilter("refused"))
	assert.True(t, or.Match(&rec))

	empty := NewChain(MatchAll)
	assert.True(t, empty.Match(&rec), "empty chain is a pass-through")
	assert.Equal(t, 0, empty.Len())
}

func TestKeywordAndExclude(t *testing.T) {
	recs := []record.Record{
		{Message: "user login ok"},
		{Message: "health check passed"},
		{Message: "user logout"},
	}

	got := Apply(recs, NewKeywordFilter("user"))
	assert.Len(t, got, 2)

	got = Apply(recs, NewExcludeFilter("health", "logout"))
	require.Len(t, got, 1)
	assert.Equal(t, "user login ok", got[0].Message)
}

func TestRegexFilter(t *testing.T) {
	f, err := NewRegexFilter(`5\d{2}`)
	require.NoError(t, err)

	assert.True(t, f.Match(&record.Record{Message: "status 503"}))
	assert.False(t, f.Match(&record.Record{Message: "status 200"}))

	_, err = NewRegexFilter(`([`)
	assert.Error(t, err)
}
