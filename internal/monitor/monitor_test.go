package monitor

import (
	"strings"
	"testing"
	"time"

	"github.com/minjae-dev/logsift/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordLevels(s *Stats, levels ...string) {
	for _, l := range levels {
		s.Record(&record.Record{Level: l, Message: "x"})
	}
}

func TestStatsCounts(t *testing.T) {
	s := NewStats()
	recordLevels(s, "INFO", "info", "WARN", "warning", "ERROR", "FATAL", "DEBUG", "")

	assert.Equal(t, uint64(8), s.Total())
	assert.Equal(t, uint64(2), s.Errors())
	// WARNING keeps its own key and stays out of the warn count, matching
	// the batch warn-rate contract.
	assert.Equal(t, uint64(1), s.Warns())
}

func TestStatsRates(t *testing.T) {
	s := NewStats()
	recordLevels(s, "ERROR", "WARN", "INFO", "INFO")

	assert.InDelta(t, 25.0, s.ErrorRate(), 0.001)
	assert.InDelta(t, 25.0, s.WarnRate(), 0.001)
}

func TestStatsZeroTotal(t *testing.T) {
	s := NewStats()
	assert.Zero(t, s.ErrorRate())
	assert.Zero(t, s.WarnRate())
}

func TestStatsHealthMirrorsBatchVerdict(t *testing.T) {
	s := NewStats()
	recordLevels(s, "ERROR", "INFO", "INFO", "INFO") // 25% errors
	assert.Equal(t, "CRITICAL", s.Health())

	s2 := NewStats()
	recordLevels(s2, "INFO", "INFO", "INFO", "INFO")
	assert.Equal(t, "HEALTHY", s2.Health())
}

func TestStatsSummaryContents(t *testing.T) {
	s := NewStats()
	recordLevels(s, "ERROR", "INFO")
	s.RecordMatch()

	out := s.Summary()
	assert.Contains(t, out, "Total records:   2")
	assert.Contains(t, out, "Matched records: 1 (50.0%)")
	assert.Contains(t, out, "Errors:          1 (50.00%)")
	assert.Contains(t, out, "CRITICAL")
}

func TestRateDetectorBelowThreshold(t *testing.T) {
	r := NewRateDetector(0, 0) // both fall back to defaults
	assert.Equal(t, false, r.Record())
	assert.Equal(t, false, r.Record())
}

func TestRateDetectorCurrentRate(t *testing.T) {
	r := NewRateDetector(10*time.Second, 3.0)
	for i := 0; i < 20; i++ {
		r.Record()
	}
	assert.InDelta(t, 2.0, r.CurrentRate(), 0.001)
}

func TestAlertEngineMatches(t *testing.T) {
	e, err := NewAlertEngine([]string{`timeout`, `(?i)panic`})
	require.NoError(t, err)

	hits := e.Check(&record.Record{Message: "upstream timeout after PANIC"})
	assert.Equal(t, []string{"timeout", "(?i)panic"}, hits)
	assert.Nil(t, e.Check(&record.Record{Message: "all good"}))
	assert.Equal(t, 2, e.TotalAlerts())

	sum := e.Summary()
	assert.True(t, strings.Contains(sum, "timeout"))
	assert.True(t, strings.Contains(sum, "1 hits"))
}

func TestAlertEngineInvalidPattern(t *testing.T) {
	_, err := NewAlertEngine([]string{`(`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid alert pattern")
}

func TestAlertEngineNoRules(t *testing.T) {
	e, err := NewAlertEngine(nil)
	require.NoError(t, err)
	assert.Nil(t, e.Check(&record.Record{Message: "anything"}))
	assert.Equal(t, "", e.Summary())
}
