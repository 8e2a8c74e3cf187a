package collections

import "reflect"

// Truthy reports whether a value is kept by a zero-argument Filter().
//
// The classification is a fixed table, part of the package's contract:
//
//	falsy:  nil, false, numeric zero of any kind, "", "0",
//	        empty slice/array/map, empty Collection, nil pointer
//	truthy: everything else
//
// The string "0" is falsy, matching the PHP coercion rules Laravel-style
// pipelines rely on when dropping empty pluck/map results.
func Truthy(v any) bool { return !Falsy(v) }

// Falsy is the complement of [Truthy].
func Falsy(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case bool:
		return !t
	case string:
		return t == "" || t == "0"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return true
		}
	}
	if nested, ok := v.(interface{ listValues() []any }); ok {
		return len(nested.listValues()) == 0
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() == 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	default:
		return false
	}
}
