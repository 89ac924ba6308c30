package filter

import (
	"strings"

	"github.com/minjae-dev/logsift/internal/record"
)

// ExcludeFilter rejects records whose message contains any of the given
// patterns. Match returns true if the record should PASS.
type ExcludeFilter struct {
	patterns []string
}

// NewExcludeFilter creates a filter that rejects records containing any of
// the patterns.
func NewExcludeFilter(patterns ...string) *ExcludeFilter {
	return &ExcludeFilter{patterns: patterns}
}

// Match returns true if the record does NOT contain any excluded pattern.
func (f *ExcludeFilter) Match(r *record.Record) bool {
	for _, p := range f.patterns {
		if strings.Contains(r.Message, p) {
			return false
		}
	}
	return true
}

// Name returns the filter description.
func (f *ExcludeFilter) Name() string {
	return "exclude:" + strings.Join(f.patterns, ",")
}
