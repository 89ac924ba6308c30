// Package monitor provides live statistics collection for streamed logs.
package monitor

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/minjae-dev/logsift/internal/analyze"
	"github.com/minjae-dev/logsift/internal/record"
)

// Stats collects per-level counters in a lock-free manner and derives the
// same health verdict the batch summary uses.
type Stats struct {
	total     atomic.Uint64
	matched   atomic.Uint64
	errors    atomic.Uint64 // ERROR + FATAL
	warns     atomic.Uint64 // WARN only, per the warn-rate contract
	startTime time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return &Stats{startTime: time.Now()}
}

// Record counts one record by canonical severity.
func (s *Stats) Record(r *record.Record) {
	s.total.Add(1)
	switch r.CanonicalLevel() {
	case "ERROR", "FATAL":
		s.errors.Add(1)
	case "WARN":
		s.warns.Add(1)
	}
}

// RecordMatch increments the matched counter.
func (s *Stats) RecordMatch() {
	s.matched.Add(1)
}

// Total returns the total number of processed records.
func (s *Stats) Total() uint64 {
	return s.total.Load()
}

// Matched returns the number of records that passed the filters.
func (s *Stats) Matched() uint64 {
	return s.matched.Load()
}

// Errors returns the ERROR+FATAL count.
func (s *Stats) Errors() uint64 {
	return s.errors.Load()
}

// Warns returns the WARN count.
func (s *Stats) Warns() uint64 {
	return s.warns.Load()
}

// ErrorRate returns the ERROR+FATAL percentage of the total.
func (s *Stats) ErrorRate() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Errors()) / float64(total) * 100
}

// WarnRate returns the WARN percentage of the total.
func (s *Stats) WarnRate() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Warns()) / float64(total) * 100
}

// Health returns the current health verdict for the stream.
func (s *Stats) Health() string {
	status, _ := analyze.HealthVerdict(s.ErrorRate(), s.WarnRate())
	return status
}

// Elapsed returns the time since monitoring started.
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Rate returns the current records per second.
func (s *Stats) Rate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed == 0 {
		return 0
	}
	return float64(s.Total()) / elapsed
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	total := s.Total()
	matched := s.Matched()

	matchRate := float64(0)
	if total > 0 {
		matchRate = float64(matched) / float64(total) * 100
	}

	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Total records:   %d\n"+
			"  Matched records: %d (%.1f%%)\n"+
			"  Errors:          %d (%.2f%%)\n"+
			"  Health:          %s\n"+
			"  Duration:        %s\n"+
			"  Throughput:      %.0f records/s\n"+
			"─────────────",
		total, matched, matchRate,
		s.Errors(), s.ErrorRate(),
		s.Health(),
		s.Elapsed().Round(time.Millisecond),
		s.Rate(),
	)
}
