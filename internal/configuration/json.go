package configuration

// object is a decoded JSON object with lenient optional getters.
// A nil object behaves like an empty one.
type object map[string]any

// optString returns the string at key, or fallback when the key is absent,
// null, or not a string.
func (o object) optString(key, fallback string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return fallback
}

// optBool returns the boolean at key, or fallback when absent or not a boolean.
func (o object) optBool(key string, fallback bool) bool {
	if b, ok := o[key].(bool); ok {
		return b
	}
	return fallback
}

// optObject returns the nested object at key, or nil when absent or not an object.
func (o object) optObject(key string) object {
	if m, ok := o[key].(map[string]any); ok {
		return m
	}
	return nil
}

// optStrings returns the array at key as strings. Non-string entries become "".
// Returns nil when the key is absent or not an array.
func (o object) optStrings(key string) []string {
	arr, ok := o[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		s, _ := v.(string)
		out = append(out, s)
	}
	return out
}

// requireString returns the string at key or a ParseError naming the key.
func (o object) requireString(key string) (string, error) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", &ParseError{Field: key, Err: ErrMissingField}
	}
	s, ok := v.(string)
	if !ok {
		return "", &ParseError{Field: key, Err: ErrFieldType}
	}
	return s, nil
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// cloneStrings copies a slice so callers cannot mutate parsed state.
// Always returns a non-nil slice.
func cloneStrings(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	return out
}
