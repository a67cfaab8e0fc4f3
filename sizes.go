// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena64

import (
	"unsafe"

	"github.com/fmstephe/flib/fmath"
)

// The size of one cell for values of type T. Cells are rounded up to a
// power of two so that every cell in a slab starts at an address aligned
// for T, given that cell 0 starts on a cache line boundary.
func cellSize[T any]() uintptr {
	var t T

	size := int64(unsafe.Sizeof(t))
	if size == 0 {
		// Zero sized types still get distinct cell indexes
		return 1
	}
	return uintptr(fmath.NxtPowerOfTwo(size))
}
