package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/minjae-dev/logsift/internal/record"
	"github.com/valyala/fastjson"
)

// JSONParser parses a JSON document into records. The whole input is tried
// as one JSON value first: an array yields one record per element, a single
// object yields a one-element sequence. If top-level parsing fails the
// input is re-read as JSON lines, one object per non-blank line; a line
// that fails to parse is skipped so one malformed line never aborts the
// batch. Zero usable records is an empty result, not an error.
type JSONParser struct{}

// NewJSONParser creates a lenient JSON document parser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse reads the input fully and decodes it as described above.
func (p *JSONParser) Parse(r io.Reader) ([]record.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	content := strings.TrimSpace(string(data))

	var par fastjson.Parser
	if v, err := par.Parse(content); err == nil {
		switch v.Type() {
		case fastjson.TypeArray:
			elems, _ := v.Array()
			recs := make([]record.Record, 0, len(elems))
			for _, el := range elems {
				if el.Type() == fastjson.TypeObject {
					recs = append(recs, fromValue(el))
				}
			}
			return recs, nil
		case fastjson.TypeObject:
			return []record.Record{fromValue(v)}, nil
		}
	}

	// JSON-lines fallback.
	var recs []record.Record
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if rec, ok := p.ParseLine(line); ok {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

// ParseLine decodes a single JSON object line. Malformed or non-object
// lines are reported as no-record.
func (p *JSONParser) ParseLine(line string) (record.Record, bool) {
	var par fastjson.Parser
	v, err := par.Parse(line)
	if err != nil || v.Type() != fastjson.TypeObject {
		return record.Record{}, false
	}
	return fromValue(v), true
}

// LoadDocument parses the entire input strictly as one JSON document.
// Unlike Parse there is no line-oriented fallback: invalid JSON is an
// error for the caller to report. Used by the analyze path, which consumes
// pre-parsed record documents.
func LoadDocument(r io.Reader) ([]record.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var par fastjson.Parser
	v, err := par.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON in log file: %w", err)
	}
	switch v.Type() {
	case fastjson.TypeArray:
		elems, _ := v.Array()
		recs := make([]record.Record, 0, len(elems))
		for _, el := range elems {
			if el.Type() == fastjson.TypeObject {
				recs = append(recs, fromValue(el))
			}
		}
		return recs, nil
	case fastjson.TypeObject:
		return []record.Record{fromValue(v)}, nil
	default:
		return nil, fmt.Errorf("invalid JSON in log file: expected an array or object, got %s", v.Type())
	}
}

// fromValue builds a Record from a parsed JSON object. String-valued known
// keys populate the typed fields; everything else, including a known key
// carrying a non-string value, is preserved in Fields so the record
// re-serializes the way it arrived. All data is copied out of the fastjson
// value so the record outlives the parser.
func fromValue(v *fastjson.Value) record.Record {
	var rec record.Record
	obj, _ := v.Object()
	obj.Visit(func(key []byte, val *fastjson.Value) {
		if val.Type() == fastjson.TypeString {
			s := string(val.GetStringBytes())
			switch string(key) {
			case "timestamp":
				rec.Timestamp = s
				return
			case "level":
				rec.Level = s
				return
			case "service":
				rec.Service = s
				return
			case "host":
				rec.Host = s
				return
			case "message":
				rec.Message = s
				return
			}
		}
		if rec.Fields == nil {
			rec.Fields = make(map[string]any, 4)
		}
		rec.Fields[string(key)] = goValue(val)
	})
	return rec
}

// goValue converts a fastjson value into a plain Go value for the Fields
// map. Objects and arrays are kept as raw JSON so they re-serialize
// verbatim.
func goValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeNull:
		return nil
	default:
		return json.RawMessage(v.MarshalTo(nil))
	}
}
