// File: lixenwraith/parseit/helper.go
package parseit

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// normalizeMap rewrites parser output in place so every value is one of
// nil, bool, int64, float64, string, []any or map[string]any.
// Types outside that set (e.g. TOML datetimes) are kept as decoded.
func normalizeMap(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
	return m
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case gojson.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint:
		return int64(val)
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		// Out-of-range values lose integer precision rather than wrap
		if val > uint64(^uint64(0)>>1) {
			return float64(val)
		}
		return int64(val)
	case float32:
		return float64(val)
	case map[string]any:
		return normalizeMap(val)
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, sub := range val {
			out[fmt.Sprint(k)] = normalizeValue(sub)
		}
		return out
	case []any:
		for i := range val {
			val[i] = normalizeValue(val[i])
		}
		return val
	case []map[string]any:
		out := make([]any, len(val))
		for i, sub := range val {
			out[i] = normalizeMap(sub)
		}
		return out
	default:
		return v
	}
}

// cloneValue deep-copies the maps and slices of a normalized value.
// Scalars are returned as is.
func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, sub := range val {
			out[k] = cloneValue(sub)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, sub := range val {
			out[i] = cloneValue(sub)
		}
		return out
	default:
		return v
	}
}

// isValidFlagName checks a command-line key: ASCII letters, digits,
// underscores, dashes and dots, not starting with a dash.
func isValidFlagName(s string) bool {
	if len(s) == 0 || s[0] == '-' {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'

		if !(isLetter || isDigit || r == '_' || r == '-' || r == '.') {
			return false
		}
	}
	return true
}
