package filter

import (
	"strings"

	"github.com/minjae-dev/logsift/internal/record"
)

// KeywordFilter matches records whose message contains a keyword.
type KeywordFilter struct {
	keyword string
}

// NewKeywordFilter creates a filter that matches records containing the keyword.
func NewKeywordFilter(keyword string) *KeywordFilter {
	return &KeywordFilter{keyword: keyword}
}

// Match returns true if the record message contains the keyword.
func (f *KeywordFilter) Match(r *record.Record) bool {
	return strings.Contains(r.Message, f.keyword)
}

// Name returns the filter description.
func (f *KeywordFilter) Name() string {
	return "keyword:" + f.keyword
}
