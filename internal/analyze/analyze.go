// Package analyze derives summary statistics, error clusters, pattern
// distributions and heuristic diagnostics from record sequences. Each
// analysis pass is a pure function over an immutable input slice; the
// passes share no state and may run in any order.
package analyze

import (
	"encoding/json"
	"fmt"

	"github.com/minjae-dev/logsift/internal/record"
)

// Options selects which report sections to compute. The zero value selects
// all of them.
type Options struct {
	Summary     bool
	Errors      bool
	Patterns    bool
	Diagnostics bool
}

func (o Options) all() bool {
	return !o.Summary && !o.Errors && !o.Patterns && !o.Diagnostics
}

// Report is the combined analysis output. Only requested sections are
// present.
type Report struct {
	Summary     *SummaryReport `json:"summary,omitempty"`
	Errors      *ErrorReport   `json:"errors,omitempty"`
	Patterns    *PatternReport `json:"patterns,omitempty"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
}

// Run executes the selected analysis passes over the sequence.
func Run(recs []record.Record, opts Options) *Report {
	all := opts.all()
	rep := &Report{}
	if all || opts.Summary {
		rep.Summary = Summary(recs)
	}
	if all || opts.Errors {
		rep.Errors = Errors(recs)
	}
	if all || opts.Patterns {
		rep.Patterns = Patterns(recs)
	}
	if all || opts.Diagnostics {
		rep.Diagnostics = Diagnostics(recs)
	}
	return rep
}

// Render pretty-prints the report as a single JSON document.
func (r *Report) Render() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return data, nil
}
