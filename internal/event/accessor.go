package event

// lookup walks obj along path through nested JSON objects.
// It reports false as soon as a key is absent or a value is not an object.
func lookup(obj map[string]any, path ...string) (any, bool) {
	var cur any = obj
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// stringOr returns the string at path, or def when it is absent or not a string.
func stringOr(obj map[string]any, def string, path ...string) string {
	v, ok := lookup(obj, path...)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

// objectsAt returns the JSON objects of the array at path. Non-object elements
// become empty objects so they still yield an entry with defaults.
func objectsAt(obj map[string]any, path ...string) []map[string]any {
	v, ok := lookup(obj, path...)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		out = append(out, m)
	}
	return out
}
