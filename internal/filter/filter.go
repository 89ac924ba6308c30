// Package filter defines the Filter interface and Chain for selecting
// records. Filters only select; they never mutate a record.
package filter

import (
	"github.com/minjae-dev/logsift/internal/record"
)

// Filter determines whether a Record matches a filtering criterion.
type Filter interface {
	// Match returns true if the record passes this filter.
	Match(r *record.Record) bool

	// Name returns a human-readable description of this filter.
	Name() string
}

// MatchMode controls how multiple filters are combined.
type MatchMode int

const (
	// MatchAll passes only if ALL filters match (AND logic).
	MatchAll MatchMode = iota
	// MatchAny passes if ANY filter matches (OR logic).
	MatchAny
)

// Chain combines multiple filters with a configurable match mode.
type Chain struct {
	filters []Filter
	mode    MatchMode
}

// NewChain creates a Chain with the given mode.
func NewChain(mode MatchMode, filters ...Filter) *Chain {
	return &Chain{filters: filters, mode: mode}
}

// Add appends a filter to the chain.
func (c *Chain) Add(f Filter) {
	c.filters = append(c.filters, f)
}

// Match evaluates the chain against a record.
// Returns true if no filters are configured (pass-through).
func (c *Chain) Match(r *record.Record) bool {
	if len(c.filters) == 0 {
		return true
	}
	if c.mode == MatchAll {
		for _, f := range c.filters {
			if !f.Match(r) {
				return false
			}
		}
		return true
	}
	for _, f := range c.filters {
		if f.Match(r) {
			return true
		}
	}
	return false
}

// Name returns a description of the chain.
func (c *Chain) Name() string {
	if c.mode == MatchAll {
		return "chain(AND)"
	}
	return "chain(OR)"
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}

// Apply selects the records passing f, preserving order. The input slice
// is never modified.
func Apply(recs []record.Record, f Filter) []record.Record {
	out := make([]record.Record, 0, len(recs))
	for i := range recs {
		if f.Match(&recs[i]) {
			out = append(out, recs[i])
		}
	}
	return out
}
