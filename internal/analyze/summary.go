package analyze

import (
	"fmt"

	"github.com/minjae-dev/logsift/internal/record"
)

// SummaryReport is the overall health summary of a record sequence.
type SummaryReport struct {
	TotalLogs      int            `json:"total_logs"`
	Status         string         `json:"status,omitempty"`
	LevelBreakdown map[string]int `json:"level_breakdown,omitempty"`
	ErrorRate      string         `json:"error_rate,omitempty"`
	WarnRate       string         `json:"warn_rate,omitempty"`
	HealthStatus   string         `json:"health_status,omitempty"`
	Recommendation string         `json:"recommendation,omitempty"`
}

// HealthVerdict maps error/warn percentages to a health status and its
// recommendation. Thresholds are checked in fixed order; the first match
// wins, so a 50% error rate is CRITICAL, not WARNING.
func HealthVerdict(errorRate, warnRate float64) (status, recommendation string) {
	switch {
	case errorRate > 10:
		return "CRITICAL", "High error rate detected. Immediate investigation required."
	case errorRate > 5:
		return "WARNING", "Elevated error rate. Review error logs for patterns."
	case warnRate > 20:
		return "ATTENTION", "High warning rate. Monitor for escalation."
	}
	return "HEALTHY", "System operating normally."
}

// Summary consumes the record sequence once and computes counts, rates and
// the health verdict. An empty sequence yields the terminal zero shape with
// no rate computation.
func Summary(recs []record.Record) *SummaryReport {
	total := len(recs)
	if total == 0 {
		return &SummaryReport{TotalLogs: 0, Status: "No logs to analyze"}
	}

	counts := make(map[string]int)
	for i := range recs {
		counts[recs[i].CanonicalLevel()]++
	}

	// The warn rate counts WARN only; WARNING records appear in the
	// breakdown under their own key.
	errorRate := float64(counts["ERROR"]+counts["FATAL"]) / float64(total) * 100
	warnRate := float64(counts["WARN"]) / float64(total) * 100
	health, recommendation := HealthVerdict(errorRate, warnRate)

	return &SummaryReport{
		TotalLogs:      total,
		LevelBreakdown: counts,
		ErrorRate:      fmt.Sprintf("%.2f%%", errorRate),
		WarnRate:       fmt.Sprintf("%.2f%%", warnRate),
		HealthStatus:   health,
		Recommendation: recommendation,
	}
}
