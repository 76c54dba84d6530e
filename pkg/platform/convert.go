package platform

// Coercion helpers for channel payloads. Values arrive either as native Go
// types from in-process calls or as float64 after a JSON round trip, so
// each helper accepts both.

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func toUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case uint32:
		return n, true
	case int:
		return uint32(n), true
	case int64:
		return uint32(n), true
	case float64:
		return uint32(n), true
	}
	return 0, false
}

// paramString reads a string field from a decoded event payload.
func paramString(params map[string]any, key string) string {
	s, _ := params[key].(string)
	return s
}

// paramInt reads a numeric field from a decoded event payload.
func paramInt(params map[string]any, key string) int {
	n, _ := toInt(params[key])
	return n
}
