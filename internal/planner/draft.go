package planner

import "context"

// Draft is the in-progress trip configuration accumulated across wizard
// steps. Keys follow the wire names of the trip payload (from_location,
// start_date, travel_preferences, ...). Values are stored as the step
// submitted them; numbers coming back from JSON land as float64.
type Draft map[string]any

// DraftStore persists one draft per session id.
//
// Load returns the previously persisted draft, or an empty draft when
// nothing was stored or the stored payload fails to parse. Merge is
// read-modify-write with shallow semantics and must be durable before it
// returns. Two writers on the same id are not synchronized; the last
// write wins.
type DraftStore interface {
	Load(ctx context.Context, id string) (Draft, error)
	Merge(ctx context.Context, id string, partial Draft) error
	Clear(ctx context.Context, id string) error
}

// Apply returns a copy of d with the partial shallow-merged on top.
// The receiver is never mutated.
func (d Draft) Apply(partial Draft) Draft {
	out := make(Draft, len(d)+len(partial))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range partial {
		out[k] = v
	}
	return out
}

// String reads a string field, returning "" for absent or mistyped values.
func (d Draft) String(key string) string {
	s, _ := d[key].(string)
	return s
}

// Int reads a numeric field. JSON decoding produces float64, so both
// representations are accepted.
func (d Draft) Int(key string) int {
	switch v := d[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Bool reads a boolean field, returning false for absent or mistyped values.
func (d Draft) Bool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// Strings reads a string-list field. JSON decoding produces []any, so
// both representations are accepted.
func (d Draft) Strings(key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Has reports whether the field is present with a non-empty value.
// Empty strings and empty lists count as absent so that validators treat
// a cleared form field the same as one never filled in.
func (d Draft) Has(key string) bool {
	v, ok := d[key]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	}
	return true
}
