// FILE: lixenwraith/parseit/estimate.go
package parseit

import (
	"strconv"
	"strings"
)

// EstimateType converts a raw string value into the most specific scalar it
// spells: nil, bool, int64, float64, or the string itself.
// Values that are not strings are returned unchanged, so structured data from
// JSON, YAML, TOML, HCL or XML files passes through as parsed.
func EstimateType(v any) any {
	switch s := v.(type) {
	case string:
		return estimateString(s)
	case []byte:
		return estimateString(string(s))
	default:
		return v
	}
}

func estimateString(s string) any {
	switch strings.ToLower(s) {
	case "", "none", "null":
		return nil
	case "true":
		return true
	case "false":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Words like "inf" and "nan" stay strings
	if isFloatLiteral(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}

// isFloatLiteral rejects the named special values strconv.ParseFloat accepts
func isFloatLiteral(s string) bool {
	t := strings.TrimLeft(strings.ToLower(s), "+-")
	switch t {
	case "inf", "infinity", "nan":
		return false
	}
	return true
}
