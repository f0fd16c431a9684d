package units

import "reflect"

// Float returns the value of any Go integer or floating-point kind as a
// float64. Booleans and everything else report false.
func Float(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// Pair reads a two-element Go array or slice of numbers, as used for
// canvas sizes and coordinates.
func Pair(v any) (a, b float64, ok bool) {
	if v == nil {
		return 0, 0, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Array && rv.Kind() != reflect.Slice {
		return 0, 0, false
	}
	if rv.Len() != 2 {
		return 0, 0, false
	}
	a, okA := Float(rv.Index(0).Interface())
	b, okB := Float(rv.Index(1).Interface())
	return a, b, okA && okB
}
