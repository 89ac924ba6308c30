package analyze

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/minjae-dev/logsift/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternsDistributions(t *testing.T) {
	recs := []record.Record{
		{Level: "info", Service: "api", Message: "request handled"},
		{Level: "ERROR", Service: "api", Message: "Timeout: db"},
		{Message: "no level or service"},
	}

	rep := Patterns(recs)
	assert.Equal(t, map[string]int{"INFO": 2, "ERROR": 1}, rep.LevelDistribution)
	assert.Equal(t, map[string]int{"api": 2, "unknown": 1}, rep.ServiceDistribution)
}

func TestPatternsMessagePrefix(t *testing.T) {
	long := strings.Repeat("a", 60)
	recs := []record.Record{
		{Message: long},
		{Message: long + "-different-suffix"},
		{Message: "short"},
	}

	rep := Patterns(recs)
	require.Len(t, rep.TopPatterns, 2)
	assert.Equal(t, RankedCount{Key: strings.Repeat("a", 50), Count: 2}, rep.TopPatterns[0], "messages sharing a 50-char prefix group together")
	assert.Equal(t, RankedCount{Key: "short", Count: 1}, rep.TopPatterns[1])
}

func TestPatternsHourlyDistribution(t *testing.T) {
	recs := []record.Record{
		{Timestamp: "2024-01-15T09:10:00"},
		{Timestamp: "2024-01-15T09:59:59Z"},
		{Timestamp: "2024-01-15T23:00:00"},
		{Timestamp: "totally invalid"},
		{}, // absent timestamp
	}

	rep := Patterns(recs)
	assert.Equal(t, HourCounts{9: 2, 23: 1}, rep.HourlyDistribution, "unparseable and absent timestamps are excluded, never fatal")
}

func TestHourCountsMarshalOrder(t *testing.T) {
	h := HourCounts{23: 1, 2: 5, 10: 3, 0: 2}
	data, err := json.Marshal(h)
	require.NoError(t, err)
	assert.Equal(t, `{"0":2,"2":5,"10":3,"23":1}`, string(data), "hours sort numerically, not lexically")
}

func TestRankedCountMarshal(t *testing.T) {
	data, err := json.Marshal(RankedCount{Key: "Timeout", Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `["Timeout",3]`, string(data))
}
