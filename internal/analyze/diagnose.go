package analyze

import (
	"strings"

	"github.com/minjae-dev/logsift/internal/record"
)

// Diagnostic is one prioritized remediation suggestion.
type Diagnostic struct {
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"`
}

// diagnosticRules are substring-membership rules over the lower-cased error
// corpus. They are evaluated in this order and fire independently; the
// order is fixed so report output stays reproducible.
var diagnosticRules = []struct {
	match func(corpus string) bool
	diag  Diagnostic
}{
	{
		match: func(c string) bool { return strings.Contains(c, "timeout") },
		diag: Diagnostic{
			Issue:      "Timeout errors detected",
			Suggestion: "Check network connectivity and service response times",
			Priority:   "HIGH",
		},
	},
	{
		match: func(c string) bool {
			return strings.Contains(c, "connection") &&
				(strings.Contains(c, "failed") || strings.Contains(c, "refused"))
		},
		diag: Diagnostic{
			Issue:      "Connection failures detected",
			Suggestion: "Verify dependent services are running and accessible",
			Priority:   "HIGH",
		},
	},
	{
		match: func(c string) bool {
			return strings.Contains(c, "memory") || strings.Contains(c, "oom")
		},
		diag: Diagnostic{
			Issue:      "Memory issues detected",
			Suggestion: "Check memory usage and consider increasing limits",
			Priority:   "HIGH",
		},
	},
	{
		match: func(c string) bool {
			return strings.Contains(c, "ssl") || strings.Contains(c, "certificate")
		},
		diag: Diagnostic{
			Issue:      "SSL/Certificate issues detected",
			Suggestion: "Review SSL certificates and expiration dates",
			Priority:   "MEDIUM",
		},
	},
	{
		match: func(c string) bool { return strings.Contains(c, "rate limit") },
		diag: Diagnostic{
			Issue:      "Rate limiting detected",
			Suggestion: "Review API usage patterns and rate limit configurations",
			Priority:   "MEDIUM",
		},
	},
}

// Diagnostics scans the messages of records at canonical level ERROR
// (FATAL is deliberately excluded here) and evaluates the rule table over
// their joined, lower-cased text. When nothing fires, a single LOW entry is
// emitted so the section is never empty.
func Diagnostics(recs []record.Record) []Diagnostic {
	var msgs []string
	for i := range recs {
		if recs[i].CanonicalLevel() == "ERROR" {
			msgs = append(msgs, recs[i].Message)
		}
	}
	corpus := strings.ToLower(strings.Join(msgs, " "))

	var out []Diagnostic
	for _, rule := range diagnosticRules {
		if rule.match(corpus) {
			out = append(out, rule.diag)
		}
	}
	if len(out) == 0 {
		out = append(out, Diagnostic{
			Issue:      "No critical patterns detected",
			Suggestion: "Review individual error messages for specifics",
			Priority:   "LOW",
		})
	}
	return out
}
