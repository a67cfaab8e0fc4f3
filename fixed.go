// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena64

import (
	"fmt"

	"github.com/fmstephe/arena64/internal/slab"
)

// A Fixed is a single slab of exactly 64 cells. It never grows. When every
// cell is occupied GetUninitSlot reports saturation and the caller must
// wait for a cell to be released.
//
// The slab must outlive every slot acquired from it. Destroy unmaps the
// slab without scanning for occupied cells, using a slot after Destroy
// reads unmapped memory.
type Fixed[T any] struct {
	slab *slab.Slab
}

// Returns a new Fixed with capacity for 64 values of type T. Panics if T
// contains pointers in any part of its type.
func NewFixed[T any]() *Fixed[T] {
	if err := containsNoPointers[T](); err != nil {
		panic(fmt.Errorf("cannot create Fixed for type containing pointers: %w", err))
	}

	return &Fixed[T]{
		slab: slab.Map(cellSize[T](), false),
	}
}

// Reserves an unoccupied cell, returning an UninitSlot for it. Returns
// false if all 64 cells are currently occupied.
func (f *Fixed[T]) GetUninitSlot() (UninitSlot[T], bool) {
	idx, ok := f.slab.Acquire()
	if !ok {
		return UninitSlot[T]{}, false
	}

	return UninitSlot[T]{tagged: f.slab.Tag(idx)}, true
}

// Releases the slab's memory back to the operating system. Every slot
// acquired from this Fixed must have been released first.
func (f *Fixed[T]) Destroy() error {
	s := f.slab
	f.slab = nil
	return s.Unmap()
}
