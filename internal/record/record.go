// Package record defines the normalized log record passed through the
// logsift pipeline.
package record

import (
	"encoding/json"
	"strings"
	"time"
)

// Severity ordinals for the fixed level ordering. WARNING is an alias of
// WARN; any other level string ranks with DEBUG so that ambiguous levels
// are never silently dropped by a filter.
const (
	OrdinalDebug = 0
	OrdinalInfo  = 1
	OrdinalWarn  = 2
	OrdinalError = 3
	OrdinalFatal = 4
)

// Ordinal returns the severity rank of a level string. Case-insensitive.
func Ordinal(level string) int {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return OrdinalDebug
	case "INFO":
		return OrdinalInfo
	case "WARN", "WARNING":
		return OrdinalWarn
	case "ERROR":
		return OrdinalError
	case "FATAL":
		return OrdinalFatal
	default:
		return OrdinalDebug
	}
}

// CanonicalLevel uppercases a level string, defaulting to INFO when unset.
func CanonicalLevel(level string) string {
	if level == "" {
		return "INFO"
	}
	return strings.ToUpper(level)
}

// Record is one normalized log entry. Typed fields are preserved exactly as
// parsed; canonicalization (uppercasing the level, defaulting missing
// fields) happens at the point of use, not here. Extra keys from structured
// input land in Fields and are carried through untouched.
//
// A Record is immutable once produced by a parser.
type Record struct {
	Timestamp string
	Level     string
	Service   string
	Host      string
	Message   string
	Fields    map[string]any
}

// CanonicalLevel returns the record's severity uppercased, INFO if absent.
func (r *Record) CanonicalLevel() string {
	return CanonicalLevel(r.Level)
}

// ServiceOrUnknown returns the service name, "unknown" if absent.
func (r *Record) ServiceOrUnknown() string {
	if r.Service == "" {
		return "unknown"
	}
	return r.Service
}

// HostOrUnknown returns the host name, "unknown" if absent.
func (r *Record) HostOrUnknown() string {
	if r.Host == "" {
		return "unknown"
	}
	return r.Host
}

// MarshalJSON merges the typed fields and the extra Fields into a single
// object so a record serializes the way it arrived. Unset typed fields are
// omitted rather than emitted as empty strings.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Fields)+5)
	for k, v := range r.Fields {
		m[k] = v
	}
	if r.Timestamp != "" {
		m["timestamp"] = r.Timestamp
	}
	if r.Level != "" {
		m["level"] = r.Level
	}
	if r.Service != "" {
		m["service"] = r.Service
	}
	if r.Host != "" {
		m["host"] = r.Host
	}
	if r.Message != "" {
		m["message"] = r.Message
	}
	return json.Marshal(m)
}

// timestampLayouts covers the ISO-8601 shapes the analyzer accepts: with or
// without fractional seconds, with or without a zone offset, T or space
// separated, and bare dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp string. A trailing "Z" is
// treated as the +00:00 offset. Returns false for absent or unparseable
// values; callers exclude those from temporal aggregation.
func ParseTimestamp(ts string) (time.Time, bool) {
	if ts == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
