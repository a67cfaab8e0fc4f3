// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena64

import (
	"fmt"
	"reflect"
	"strconv"
)

// Slab cells live in manually mapped memory which the garbage collector
// never scans. A pointer stored in such a cell would not keep its referent
// alive, so allocators refuse to be built for any type which contains one,
// in any part of its type.
func containsNoPointers[T any]() error {
	t := reflect.TypeFor[T]()
	if path := findPointer(t, t.String()); path != "" {
		return fmt.Errorf("found pointer at %s", path)
	}
	return nil
}

func findPointer(t reflect.Type, path string) string {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return ""

	case reflect.Array:
		return findPointer(t.Elem(), path+"["+strconv.Itoa(t.Len())+"]")

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if path := findPointer(field.Type, path+"."+field.Name); path != "" {
				return path
			}
		}
		return ""

	default:
		// Strings, slices, maps, chans, funcs, interfaces and both
		// pointer kinds all smuggle pointers
		return path + "<" + t.String() + ">"
	}
}
