package filter

import (
	"strings"

	"github.com/minjae-dev/logsift/internal/record"
)

// MinLevel passes records whose canonical severity ordinal is at or above
// the threshold's ordinal. An empty threshold is a pass-through. Records
// with unknown levels rank at the DEBUG ordinal, so they pass any
// DEBUG-or-unset threshold rather than being silently dropped.
type MinLevel struct {
	level string
	min   int
}

// NewMinLevel creates a minimum-severity filter. Case-insensitive.
func NewMinLevel(level string) *MinLevel {
	return &MinLevel{
		level: level,
		min:   record.Ordinal(level),
	}
}

// Match returns true if the record's severity meets the threshold.
func (f *MinLevel) Match(r *record.Record) bool {
	if f.level == "" {
		return true
	}
	return record.Ordinal(r.CanonicalLevel()) >= f.min
}

// Name returns the filter description.
func (f *MinLevel) Name() string {
	if f.level == "" {
		return "level:any"
	}
	return "level>=" + strings.ToUpper(f.level)
}
