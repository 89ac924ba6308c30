package monitor

import (
	"sync"
	"time"
)

// rateBucket is one second of event counts.
type rateBucket struct {
	sec int64 // unix second
	n   int64
}

// RateDetector tracks event rates and detects spikes over a sliding
// window of per-second buckets.
type RateDetector struct {
	mu        sync.Mutex
	window    time.Duration
	buckets   []rateBucket
	threshold float64 // spike multiplier over the window average
}

// NewRateDetector creates a rate detector. threshold is the multiplier
// over the moving average that triggers a spike, e.g. 3.0 means alert when
// the current second exceeds 3x the average.
func NewRateDetector(window time.Duration, threshold float64) *RateDetector {
	if window < time.Second {
		window = 10 * time.Second
	}
	if threshold <= 0 {
		threshold = 3.0
	}
	return &RateDetector{window: window, threshold: threshold}
}

// Record adds an event at the current time.
// Returns true if a spike is detected.
func (r *RateDetector) Record() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.prune(now)

	sec := now.Unix()
	if n := len(r.buckets); n > 0 && r.buckets[n-1].sec == sec {
		r.buckets[n-1].n++
	} else {
		r.buckets = append(r.buckets, rateBucket{sec: sec, n: 1})
	}

	return r.isSpiking()
}

// CurrentRate returns events per second over the window.
func (r *RateDetector) CurrentRate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune(time.Now())

	var total int64
	for _, b := range r.buckets {
		total += b.n
	}
	return float64(total) / r.window.Seconds()
}

// prune drops buckets older than the window. Caller holds the lock.
func (r *RateDetector) prune(now time.Time) {
	cutoff := now.Add(-r.window).Unix()
	i := 0
	for i < len(r.buckets) && r.buckets[i].sec < cutoff {
		i++
	}
	if i > 0 {
		r.buckets = r.buckets[i:]
	}
}

// isSpiking reports whether the latest bucket exceeds threshold * average
// of the preceding buckets. Caller holds the lock.
func (r *RateDetector) isSpiking() bool {
	if len(r.buckets) < 3 {
		return false
	}

	var sum int64
	for _, b := range r.buckets[:len(r.buckets)-1] {
		sum += b.n
	}
	avg := float64(sum) / float64(len(r.buckets)-1)
	if avg == 0 {
		return false
	}
	return float64(r.buckets[len(r.buckets)-1].n) > avg*r.threshold
}
