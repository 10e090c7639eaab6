// Package nilcheck detects nil values hidden behind non-nil interfaces.
package nilcheck

import "reflect"

// IsNil reports whether v is nil or an interface holding a nil pointer,
// map, slice, channel or func.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
