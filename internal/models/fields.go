package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Wire names of the fields the store owns. Everything else is payload.
const (
	KeyID        = "Id"
	KeyGroupID   = "groupId"
	KeyGroups    = "groups"
	KeyItems     = "items"
	KeyCreatedAt = "createdAt"
	KeyUpdatedAt = "updatedAt"

	KeyTitle       = "title"
	KeyDescription = "description"
)

// Fields is the opaque payload carried by a board, group or item.
// The store never interprets payload values; it only copies and merges them.
type Fields map[string]any

// Clone returns a deep copy of f. Nested maps and slices are copied so the
// result shares no mutable state with f.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

// String returns the value at key when it is a string, or "" otherwise.
func (f Fields) String(key string) string {
	if s, ok := f[key].(string); ok {
		return s
	}
	return ""
}

// Int returns the value at key as an int. Numbers decoded from JSON or YAML
// (float64, json.Number, int64) and numeric strings are accepted.
func (f Fields) Int(key string) (int, bool) {
	v, ok := f[key]
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// Has reports whether key is present, even with a nil value.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int64ToInt(n)
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int64ToInt(i)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

func int64ToInt(n int64) (int, bool) {
	if n < math.MinInt || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// floatToInt accepts whole numbers in int range. -MinInt is the first power
// of two past MaxInt, so the upper bound is exclusive.
func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	if f < math.MinInt || f >= -float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = cloneValue(inner)
		}
		return out
	case Fields:
		return t.Clone()
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case []int:
		return append([]int(nil), t...)
	default:
		if n, err := NormalizeValue(v); err == nil {
			return n
		}
		return v
	}
}

// NormalizeValue returns a deep copy of v built only from JSON shapes:
// map[string]any, []any, strings, bools, json.Number and Go scalars. Any other
// value is round-tripped through encoding/json, so typed maps, slices and
// pointers come back as fresh maps and lists.
func NormalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return t, nil
	case map[string]any:
		return normalizeMap(t)
	case Fields:
		return normalizeMap(t)
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			n, err := NormalizeValue(inner)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("value of type %T is not JSON encodable: %w", v, err)
	}
	return DecodeValue(data)
}

func normalizeMap(m map[string]any) (any, error) {
	out := make(map[string]any, len(m))
	for k, inner := range m {
		n, err := NormalizeValue(inner)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = n
	}
	return out, nil
}

// decodePayload decodes raw JSON values into payload fields, keeping numbers as
// json.Number so integers round-trip without float conversion.
func decodePayload(raw map[string]json.RawMessage) (Fields, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(Fields, len(raw))
	for k, msg := range raw {
		var v any
		if err := unmarshalNumber(msg, &v); err != nil {
			return nil, fmt.Errorf("failed to decode field %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// encodePayload starts the wire object for a record from its payload.
func encodePayload(f Fields, extra int) map[string]any {
	out := make(map[string]any, len(f)+extra)
	for k, v := range f {
		out[k] = v
	}
	return out
}

// takeInt removes key from raw and decodes it as an int.
func takeInt(raw map[string]json.RawMessage, key string) (int, error) {
	msg, ok := raw[key]
	if !ok {
		return 0, nil
	}
	delete(raw, key)
	var v any
	if err := unmarshalNumber(msg, &v); err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	if v == nil {
		return 0, nil
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%s must be an integer, got %s", key, string(msg))
	}
	return n, nil
}

// take removes key from raw and decodes it into dst. Missing keys and JSON
// null leave dst untouched and report false.
func take(raw map[string]json.RawMessage, key string, dst any) (bool, error) {
	msg, ok := raw[key]
	if !ok {
		return false, nil
	}
	delete(raw, key)
	if string(msg) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(msg, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}
