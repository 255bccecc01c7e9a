// Package validation holds the request validators for the public API.
// Each validator is a pure function from a request body to a per-field
// error map; a request is valid when the map has no keys.
package validation

import "reflect"

// Result is the outcome of validating a request body.
type Result struct {
	Errors  map[string]string
	IsValid bool
}

// IsEmpty reports whether a value is empty: nil, a nil pointer or
// interface, an exact empty string (no trimming), or a map/slice with
// no entries. Zero numbers and false are not empty.
func IsEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Map, reflect.Slice:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return IsEmpty(v.Elem().Interface())
	}
	return false
}
