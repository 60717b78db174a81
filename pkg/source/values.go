package source

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Property returns the first property present among keys.
func (c Component) Property(keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := c.Properties[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// LayoutValue returns the first value present among keys, consulting the
// layout options before the properties.
func (c Component) LayoutValue(keys ...string) (any, bool) {
	if c.Layout != nil {
		for _, key := range keys {
			if value, ok := c.Layout.Options[key]; ok && value != nil {
				return value, true
			}
		}
	}
	return c.Property(keys...)
}

// StringProperty returns the first property among keys that reads as a string.
func (c Component) StringProperty(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := c.Property(key); ok {
			if s, ok := String(value); ok {
				return s, true
			}
		}
	}
	return "", false
}

// NumberProperty returns the first property among keys that reads as a number.
func (c Component) NumberProperty(keys ...string) (float64, bool) {
	for _, key := range keys {
		if value, ok := c.Property(key); ok {
			if n, ok := Number(value); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// LayoutNumber is NumberProperty over LayoutValue.
func (c Component) LayoutNumber(keys ...string) (float64, bool) {
	for _, key := range keys {
		if value, ok := c.LayoutValue(key); ok {
			if n, ok := Number(value); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// LayoutString is StringProperty over LayoutValue.
func (c Component) LayoutString(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := c.LayoutValue(key); ok {
			if s, ok := String(value); ok {
				return s, true
			}
		}
	}
	return "", false
}

// String converts scalars to their string form. Maps and slices are rejected.
func String(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// Number reads numeric values decoded by either JSON or YAML, plus numeric
// strings.
func Number(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// Bool reads booleans and the strings "true"/"false".
func Bool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	default:
		return false, false
	}
}

// Object reads nested objects, accepting the map shapes produced by both
// decoders.
func Object(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = item
		}
		return out, true
	default:
		return nil, false
	}
}
