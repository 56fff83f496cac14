// File: lixenwraith/parseit/type.go
package parseit

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// String resolves key and converts the value to a string.
// A nil value yields "".
func (r *Resolver) String(key string, opts ...ResolveOption) (string, error) {
	val, err := r.Resolve(key, opts...)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil // Treat nil as empty string for convenience
	}

	s, err := cast.ToStringE(val)
	if err != nil {
		return "", fmt.Errorf("cannot convert type %T to string for key %s: %w", val, key, err)
	}
	return s, nil
}

// Int64 resolves key and converts the value to an int64.
// Floats are truncated, booleans read as 0 or 1.
func (r *Resolver) Int64(key string, opts ...ResolveOption) (int64, error) {
	val, err := r.Resolve(key, opts...)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %s is nil, cannot convert to int64", key)
	}

	i, err := cast.ToInt64E(val)
	if err != nil {
		return 0, fmt.Errorf("cannot convert type %T to int64 for key %s: %w", val, key, err)
	}
	return i, nil
}

// Float64 resolves key and converts the value to a float64
func (r *Resolver) Float64(key string, opts ...ResolveOption) (float64, error) {
	val, err := r.Resolve(key, opts...)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %s is nil, cannot convert to float64", key)
	}

	f, err := cast.ToFloat64E(val)
	if err != nil {
		return 0, fmt.Errorf("cannot convert type %T to float64 for key %s: %w", val, key, err)
	}
	return f, nil
}

// Bool resolves key and converts the value to a bool.
// Numbers read as false when zero and true otherwise.
func (r *Resolver) Bool(key string, opts ...ResolveOption) (bool, error) {
	val, err := r.Resolve(key, opts...)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, fmt.Errorf("value for key %s is nil, cannot convert to bool", key)
	}

	b, err := cast.ToBoolE(val)
	if err != nil {
		return false, fmt.Errorf("cannot convert type %T to bool for key %s: %w", val, key, err)
	}
	return b, nil
}

// Duration resolves key and converts the value to a time.Duration.
// Strings use time.ParseDuration syntax, bare numbers are nanoseconds.
func (r *Resolver) Duration(key string, opts ...ResolveOption) (time.Duration, error) {
	val, err := r.Resolve(key, opts...)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %s is nil, cannot convert to duration", key)
	}

	d, err := cast.ToDurationE(val)
	if err != nil {
		return 0, fmt.Errorf("cannot convert type %T to duration for key %s: %w", val, key, err)
	}
	return d, nil
}

// StringSlice resolves key and converts the value to a []string.
// Strings are split on commas with surrounding space trimmed.
func (r *Resolver) StringSlice(key string, opts ...ResolveOption) ([]string, error) {
	val, err := r.Resolve(key, opts...)
	if err != nil {
		return nil, err
	}
	if val == nil {
		return nil, nil
	}

	if s, ok := val.(string); ok {
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}

	out, err := cast.ToStringSliceE(val)
	if err != nil {
		return nil, fmt.Errorf("cannot convert type %T to []string for key %s: %w", val, key, err)
	}
	return out, nil
}
