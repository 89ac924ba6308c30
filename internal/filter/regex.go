package filter

import (
	"fmt"
	"regexp"

	"github.com/minjae-dev/logsift/internal/record"
)

// RegexFilter matches record messages against a pre-compiled regular
// expression. The regex is compiled once at construction.
type RegexFilter struct {
	pattern string
	re      *regexp.Regexp
}

// NewRegexFilter creates a filter with a pre-compiled regex pattern.
// Returns an error if the pattern is invalid.
func NewRegexFilter(pattern string) (*RegexFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", pattern, err)
	}
	return &RegexFilter{pattern: pattern, re: re}, nil
}

// Match returns true if the record message matches the regex.
func (f *RegexFilter) Match(r *record.Record) bool {
	return f.re.MatchString(r.Message)
}

// Name returns the filter description.
func (f *RegexFilter) Name() string {
	return "regex:" + f.pattern
}
