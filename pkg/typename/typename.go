// Package typename extracts readable type names at runtime.
package typename

import "reflect"

// Of returns the name of type T, e.g. Of[map[string]int]() == "map[string]int".
func Of[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// For returns the dynamic type name of v. A nil interface yields "<nil>".
func For(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
