package analyze

import (
	"testing"

	"github.com/minjae-dev/logsift/internal/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorRecords(messages ...string) []record.Record {
	recs := make([]record.Record, len(messages))
	for i, m := range messages {
		recs[i] = record.Record{Level: "ERROR", Message: m}
	}
	return recs
}

func issues(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Issue
	}
	return out
}

func TestDiagnosticsSingleRule(t *testing.T) {
	diags := Diagnostics(errorRecords("Connection failed: refused"))
	require.Len(t, diags, 1)
	assert.Equal(t, "Connection failures detected", diags[0].Issue)
	assert.Equal(t, "HIGH", diags[0].Priority)
}

func TestDiagnosticsRuleTable(t *testing.T) {
	tests := []struct {
		message  string
		issue    string
		priority string
	}{
		{"Request Timeout after 30s", "Timeout errors detected", "HIGH"},
		{"connection refused by upstream", "Connection failures detected", "HIGH"},
		{"process OOM killed", "Memory issues detected", "HIGH"},
		{"memory limit exceeded", "Memory issues detected", "HIGH"},
		{"SSL handshake error", "SSL/Certificate issues detected", "MEDIUM"},
		{"certificate expired yesterday", "SSL/Certificate issues detected", "MEDIUM"},
		{"rate limit exceeded for key", "Rate limiting detected", "MEDIUM"},
	}
	for _, tt := range tests {
		diags := Diagnostics(errorRecords(tt.message))
		require.Len(t, diags, 1, "message %q", tt.message)
		assert.Equal(t, tt.issue, diags[0].Issue, "message %q", tt.message)
		assert.Equal(t, tt.priority, diags[0].Priority)
	}
}

func TestDiagnosticsConnectionNeedsFailureWord(t *testing.T) {
	// "connection" alone is not enough; it needs "failed" or "refused".
	diags := Diagnostics(errorRecords("connection pool exhausted"))
	require.Len(t, diags, 1)
	assert.Equal(t, "No critical patterns detected", diags[0].Issue)
}

func TestDiagnosticsMultipleRulesKeepOrder(t *testing.T) {
	diags := Diagnostics(errorRecords(
		"rate limit hit",
		"upstream timeout",
		"ssl negotiation broke",
	))
	// Output order follows the rule table, not message order.
	assert.Equal(t, []string{
		"Timeout errors detected",
		"SSL/Certificate issues detected",
		"Rate limiting detected",
	}, issues(diags))
}

func TestDiagnosticsCorpusSpansRecords(t *testing.T) {
	// The AND condition may be satisfied across different records since
	// rules run over the joined corpus.
	diags := Diagnostics(errorRecords("connection dropped", "request failed"))
	assert.Contains(t, issues(diags), "Connection failures detected")
}

func TestDiagnosticsExcludesFatal(t *testing.T) {
	recs := []record.Record{
		{Level: "FATAL", Message: "timeout during shutdown"},
		{Level: "WARN", Message: "timeout warning"},
	}
	diags := Diagnostics(recs)
	require.Len(t, diags, 1)
	assert.Equal(t, "No critical patterns detected", diags[0].Issue)
	assert.Equal(t, "LOW", diags[0].Priority)
}

func TestDiagnosticsEmptyInput(t *testing.T) {
	diags := Diagnostics(nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "No critical patterns detected", diags[0].Issue)
	assert.Equal(t, "Review individual error messages for specifics", diags[0].Suggestion)
	assert.Equal(t, "LOW", diags[0].Priority)
}
