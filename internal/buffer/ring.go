// Package buffer provides a bounded scrollback buffer for the watch
// dashboard.
package buffer

import (
	"sync"

	"github.com/minjae-dev/logsift/internal/record"
)

// Ring is a fixed-capacity circular buffer of records. When full, the
// oldest entries are silently evicted. All operations are goroutine-safe.
type Ring struct {
	mu       sync.RWMutex
	recs     []record.Record
	head     int // next write position
	count    int
	capacity int
	dropped  uint64
}

// NewRing creates a ring buffer with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Ring{
		recs:     make([]record.Record, capacity),
		capacity: capacity,
	}
}

// Push adds a record. If full, the oldest record is evicted.
func (r *Ring) Push(rec record.Record) {
	r.mu.Lock()
	r.recs[r.head] = rec
	r.head = (r.head + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	} else {
		r.dropped++
	}
	r.mu.Unlock()
}

// Snapshot returns a copy of all buffered records in arrival order.
func (r *Ring) Snapshot() []record.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]record.Record, r.count)
	if r.count < r.capacity {
		copy(out, r.recs[:r.count])
		return out
	}
	n := copy(out, r.recs[r.head:])
	copy(out[n:], r.recs[:r.head])
	return out
}

// Len returns the current number of buffered records.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Dropped returns the total number of evicted records.
func (r *Ring) Dropped() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dropped
}

// Cap returns the buffer capacity.
func (r *Ring) Cap() int {
	return r.capacity
}
