package utils

import (
	"fmt"
	"reflect"
)

// Ptr returns pointer to a copy of the input, nil for untyped nil.
func Ptr[T any](s T) *T {
	switch reflect.ValueOf(s).Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Pointer, reflect.UnsafePointer:
		panic("input is pointer")
	default:
		return &s
	}
}

// Coalesce returns the first non-nil.
// It panics if the input type is not nil-able.
func Coalesce[T any](first T, others ...T) T {
	switch reflect.ValueOf(first).Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
	default:
		panic(fmt.Sprintf("type can't be nil: %T", first))
	}

	isNil := func(in T) bool {
		return reflect.ValueOf(in).IsNil()
	}

	if !isNil(first) {
		return first
	}
	for _, other := range others {
		if !isNil(other) {
			return other
		}
	}
	var tNil T
	return tNil
}
