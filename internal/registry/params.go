package registry

import "fmt"

// Params are the free-form script settings of a sprite in a scene file.
type Params map[string]any

// Float returns key as a float64, or def when missing or not numeric.
func (p Params) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}

// Int returns key as an int, truncating floats.
func (p Params) Int(key string, def int) int {
	return int(p.Float(key, float64(def)))
}

// String returns key formatted as a string, or def when missing.
func (p Params) String(key, def string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Bool returns key as a bool, or def when missing or not a bool.
func (p Params) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}
