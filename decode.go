// FILE: lixenwraith/parseit/decode.go
package parseit

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan
const TagName = "parseit"

// Scan resolves one key per exported field of the struct pointed to by
// target and decodes the results into it.
//
// The key is the first element of the `parseit` tag, or the field name.
// A tag of "-" skips the field, and a ",required" option resolves the key
// with Required. Non-zero field values act as the per-call default.
// Fields whose key resolves to nil are left untouched. Every missing
// required key is reported in the returned error.
func (r *Resolver) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}
	v := rv.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("scan target must point to a struct, got %T", target)
	}

	t := v.Type()
	values := make(map[string]any)
	var missing []error

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		key, required, skip := parseFieldTag(field)
		if skip {
			continue
		}

		var opts []ResolveOption
		if required {
			opts = append(opts, Required())
		} else if fv := v.Field(i); !fv.IsZero() {
			opts = append(opts, WithDefault(fv.Interface()))
		}

		val, err := r.Resolve(key, opts...)
		if err != nil {
			if IsMissing(err) {
				missing = append(missing, err)
				continue
			}
			return fmt.Errorf("scan field %s: %w", field.Name, err)
		}
		if val == nil {
			continue
		}
		values[key] = val
	}

	if len(missing) > 0 {
		return errors.Join(missing...)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	return nil
}

// parseFieldTag extracts the key and options from a struct field
func parseFieldTag(field reflect.StructField) (key string, required bool, skip bool) {
	tag := field.Tag.Get(TagName)
	if tag == "-" {
		return "", false, true
	}

	key = field.Name
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		key = parts[0]
	}
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == "required" {
			required = true
		}
	}
	return key, required, false
}

// decodeHook returns the composite decode hook for all type conversions.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToAddressHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

var (
	ipType    = reflect.TypeOf(net.IP{})
	ipNetType = reflect.TypeOf(net.IPNet{})
	urlType   = reflect.TypeOf(url.URL{})
)

// Upper bounds on textual forms, checked before parsing
const (
	maxIPLen   = 45 // IPv6 with zone
	maxCIDRLen = 49
	maxURLLen  = 2048
)

// stringToAddressHookFunc parses strings into net.IP, net.IPNet and url.URL
// fields. IPNet and URL targets may be values or pointers.
func stringToAddressHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		str, ok := data.(string)
		if !ok || f.Kind() != reflect.String {
			return data, nil
		}

		target, isPtr := t, t.Kind() == reflect.Ptr
		if isPtr {
			target = t.Elem()
		}

		switch target {
		case ipType:
			if isPtr {
				return data, nil
			}
			if len(str) > maxIPLen {
				return nil, fmt.Errorf("invalid IP length: %d", len(str))
			}
			ip := net.ParseIP(str)
			if ip == nil {
				return nil, fmt.Errorf("invalid IP address: %q", str)
			}
			return ip, nil

		case ipNetType:
			if len(str) > maxCIDRLen {
				return nil, fmt.Errorf("invalid CIDR length: %d", len(str))
			}
			_, ipnet, err := net.ParseCIDR(str)
			if err != nil {
				return nil, fmt.Errorf("invalid CIDR %q: %w", str, err)
			}
			return addressOrPointer(ipnet, isPtr), nil

		case urlType:
			if len(str) > maxURLLen {
				return nil, fmt.Errorf("URL too long: %d bytes", len(str))
			}
			u, err := url.Parse(str)
			if err != nil {
				return nil, fmt.Errorf("invalid URL %q: %w", str, err)
			}
			return addressOrPointer(u, isPtr), nil
		}

		return data, nil
	}
}

// addressOrPointer returns p itself for pointer fields and *p otherwise
func addressOrPointer[T any](p *T, isPtr bool) any {
	if isPtr {
		return p
	}
	return *p
}
