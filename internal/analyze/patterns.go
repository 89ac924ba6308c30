package analyze

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/minjae-dev/logsift/internal/record"
)

// topRankLimit caps ranked listings in reports.
const topRankLimit = 10

// messagePrefixLen is the number of leading characters used as a message
// pattern key.
const messagePrefixLen = 50

// HourCounts maps hour-of-day (0–23) to record counts. It serializes as an
// object with hours in ascending order.
type HourCounts map[int]int

// MarshalJSON emits hours numerically sorted; encoding/json would order the
// stringified keys lexically.
func (h HourCounts) MarshalJSON() ([]byte, error) {
	hours := make([]int, 0, len(h))
	for hr := range h {
		hours = append(hours, hr)
	}
	sort.Ints(hours)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, hr := range hours {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "\"%d\":%d", hr, h[hr])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PatternReport holds the distributions computed over the full, unfiltered
// record sequence.
type PatternReport struct {
	LevelDistribution   map[string]int `json:"level_distribution"`
	ServiceDistribution map[string]int `json:"service_distribution"`
	TopPatterns         []RankedCount  `json:"top_patterns"`
	HourlyDistribution  HourCounts     `json:"hourly_distribution"`
}

// Patterns computes level, service, message-prefix and hour-of-day
// distributions. Records with absent or unparseable timestamps are
// excluded from the hourly buckets only.
func Patterns(recs []record.Record) *PatternReport {
	levels := make(map[string]int)
	services := make(map[string]int)
	messages := newCounter()
	hours := make(HourCounts)

	for i := range recs {
		levels[recs[i].CanonicalLevel()]++
		services[recs[i].ServiceOrUnknown()]++
		messages.Add(truncate(recs[i].Message, messagePrefixLen))
		if t, ok := record.ParseTimestamp(recs[i].Timestamp); ok {
			hours[t.Hour()]++
		}
	}

	return &PatternReport{
		LevelDistribution:   levels,
		ServiceDistribution: services,
		TopPatterns:         messages.Top(topRankLimit),
		HourlyDistribution:  hours,
	}
}
