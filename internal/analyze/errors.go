package analyze

import (
	"strings"

	"github.com/minjae-dev/logsift/internal/record"
)

// sampleErrorLimit caps the verbatim error records carried in the report.
const sampleErrorLimit = 5

// ErrorReport clusters and ranks the ERROR/FATAL subset of a sequence.
type ErrorReport struct {
	TotalErrors  int             `json:"total_errors"`
	UniqueErrors int             `json:"unique_errors"`
	TopErrors    []RankedCount   `json:"top_errors"`
	ByService    map[string]int  `json:"errors_by_service"`
	ByHost       map[string]int  `json:"errors_by_host"`
	Samples      []record.Record `json:"sample_errors"`
}

// errorType derives the grouping key for an error message: the prefix
// before the first colon when one is present, otherwise the first 50
// characters. Empty messages group under "Unknown error".
func errorType(msg string) string {
	if msg == "" {
		return "Unknown error"
	}
	if i := strings.Index(msg, ":"); i >= 0 {
		return msg[:i]
	}
	return truncate(msg, 50)
}

// Errors selects records whose canonical level is ERROR or FATAL and
// computes frequency clusters, per-service and per-host counts, and the
// first few matching records verbatim.
func Errors(recs []record.Record) *ErrorReport {
	types := newCounter()
	byService := make(map[string]int)
	byHost := make(map[string]int)
	samples := make([]record.Record, 0, sampleErrorLimit)
	total := 0

	for i := range recs {
		lvl := recs[i].CanonicalLevel()
		if lvl != "ERROR" && lvl != "FATAL" {
			continue
		}
		total++
		types.Add(errorType(recs[i].Message))
		byService[recs[i].ServiceOrUnknown()]++
		byHost[recs[i].HostOrUnknown()]++
		if len(samples) < sampleErrorLimit {
			samples = append(samples, recs[i])
		}
	}

	return &ErrorReport{
		TotalErrors:  total,
		UniqueErrors: types.Len(),
		TopErrors:    types.Top(topRankLimit),
		ByService:    byService,
		ByHost:       byHost,
		Samples:      samples,
	}
}
