package layers

import "math"

// KwargString returns a string kwarg or defaultVal.
func KwargString(kwargs map[string]any, name, defaultVal string) (string, bool) {
	v, ok := kwargs[name]
	if !ok || v == nil {
		return defaultVal, true
	}
	s, ok := v.(string)
	return s, ok
}

// KwargInt returns an integer kwarg or defaultVal. Integral floats are
// accepted since JSON decoders may produce them. Values outside the int
// range are rejected.
func KwargInt(kwargs map[string]any, name string, defaultVal int) (int, bool) {
	v, ok := kwargs[name]
	if !ok || v == nil {
		return defaultVal, true
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n >= math.MinInt && n <= math.MaxInt {
			return int(n), true
		}
	case uint64:
		if n <= math.MaxInt {
			return int(n), true
		}
	case float64:
		// -math.MinInt is 2^63, the first float past the int range.
		if n == math.Trunc(n) && n >= math.MinInt && n < -math.MinInt {
			return int(n), true
		}
	}
	return 0, false
}

// KwargFloat returns a float kwarg or defaultVal.
func KwargFloat(kwargs map[string]any, name string, defaultVal float64) (float64, bool) {
	v, ok := kwargs[name]
	if !ok || v == nil {
		return defaultVal, true
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
