// Package fhir holds the untyped-resource probing helpers shared by the
// record and search domains. Upstream servers return arbitrary JSON;
// everything here treats a resource as a map[string]interface{} and
// degrades gracefully when fields are missing.
package fhir

import "strconv"

// The upstream payloads are decoded JSON, so nested objects are
// map[string]interface{} and arrays are []interface{}. Fixture data is
// written as Go literals, which may use the concrete slice types instead;
// the helpers below accept both so extractors behave identically against
// either source.

// Chain returns the first non-empty string produced by the attempts, or the
// placeholder when every attempt comes back empty. Extractors use it to
// express a field's fallback order as a flat list instead of nested
// conditionals.
func Chain(placeholder string, attempts ...func() string) string {
	for _, attempt := range attempts {
		if v := attempt(); v != "" {
			return v
		}
	}
	return placeholder
}

// Map returns the object stored under key, or nil.
func Map(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	v, ok := m[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return v
}

// List returns the array stored under key as a generic slice, or nil.
func List(m map[string]interface{}, key string) []interface{} {
	if m == nil {
		return nil
	}
	switch v := m[key].(type) {
	case []interface{}:
		return v
	case []map[string]interface{}:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out
	case []string:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out
	default:
		return nil
	}
}

// First returns the first element of the array under key when that element
// is an object, or nil.
func First(m map[string]interface{}, key string) map[string]interface{} {
	l := List(m, key)
	if len(l) == 0 {
		return nil
	}
	e, ok := l[0].(map[string]interface{})
	if !ok {
		return nil
	}
	return e
}

// Str walks the nested objects named by keys and returns the string at the
// final key, or "".
func Str(m map[string]interface{}, keys ...string) string {
	for i, k := range keys {
		if m == nil {
			return ""
		}
		if i == len(keys)-1 {
			s, _ := m[k].(string)
			return s
		}
		m = Map(m, k)
	}
	return ""
}

// Strings returns the array under key as strings, dropping non-string
// elements.
func Strings(m map[string]interface{}, key string) []string {
	var out []string
	for _, e := range List(m, key) {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Number formats the numeric value under key, or returns "". JSON numbers
// decode to float64; fixture literals may use int.
func Number(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return ""
	}
}

// CodingDisplay returns the display of the first coding of the
// CodeableConcept under key, or "".
func CodingDisplay(m map[string]interface{}, key string) string {
	return Str(First(Map(m, key), "coding"), "display")
}

// CodingCode returns the code of the first coding of the CodeableConcept
// under key, or "".
func CodingCode(m map[string]interface{}, key string) string {
	return Str(First(Map(m, key), "coding"), "code")
}

// QuantityString renders the Quantity under key as "value unit", or "".
func QuantityString(m map[string]interface{}, key string) string {
	q := Map(m, key)
	if q == nil {
		return ""
	}
	val := Number(q, "value")
	unit := Str(q, "unit")
	if val == "" && unit == "" {
		return ""
	}
	if unit == "" {
		return val
	}
	return val + " " + unit
}
