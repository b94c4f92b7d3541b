package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Caster converts a raw decoded JSON value into the typed value of an attribute
type Caster func(attr Attribute, raw any) (any, error)

// DefaultCaster handles the attribute types declared in this package. A nil raw value
// always casts to nil.
func DefaultCaster(attr Attribute, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	switch attr.Type {
	case Any, "":
		return raw, nil
	case String:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case Number:
		if f, ok := toFloat(raw); ok {
			return f, nil
		}
	case Integer:
		return toInteger(attr, raw)
	case Boolean:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case Time:
		switch v := raw.(type) {
		case time.Time:
			return v, nil
		case string:
			t, err := time.Parse(time.RFC3339Nano, v)
			if err != nil {
				return nil, fmt.Errorf("attribute %s: %w", attr.Name, err)
			}
			return t, nil
		}
	default:
		return nil, fmt.Errorf("attribute %s has unsupported type %s", attr.Name, attr.Type)
	}

	return nil, fmt.Errorf("attribute %s: cannot cast %T to %s", attr.Name, raw, attr.Type)
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func toInteger(attr Attribute, raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
	}

	f, ok := toFloat(raw)
	if !ok {
		return nil, fmt.Errorf("attribute %s: cannot cast %T to %s", attr.Name, raw, attr.Type)
	}

	if f != math.Trunc(f) {
		return nil, fmt.Errorf("attribute %s: %v is not an integer", attr.Name, raw)
	}

	// float64(math.MaxInt64) rounds up to 2^63, which does not fit
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil, fmt.Errorf("attribute %s: %v is out of range for an integer", attr.Name, raw)
	}

	return int64(f), nil
}
