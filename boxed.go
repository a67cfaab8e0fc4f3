// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena64

import (
	"fmt"

	"github.com/fmstephe/arena64/internal/slab"
)

// A Boxed is a single slab of 64 cells whose memory outlives the Boxed
// handle itself. The handle and the slots acquired from it may be released
// in any order, the slab's mapping is returned to the operating system by
// whichever of them lets go last.
type Boxed[T any] struct {
	slab *slab.Slab
}

// Returns a new Boxed with capacity for 64 values of type T. Panics if T
// contains pointers in any part of its type.
func NewBoxed[T any]() *Boxed[T] {
	if err := containsNoPointers[T](); err != nil {
		panic(fmt.Errorf("cannot create Boxed for type containing pointers: %w", err))
	}

	return &Boxed[T]{
		slab: slab.Map(cellSize[T](), true),
	}
}

// Reserves an unoccupied cell, returning an UninitSlot for it. Returns
// false if all 64 cells are currently occupied. Panics if the Boxed has
// been closed, the handle is the sole acquire gateway and no acquire may
// race with the seal.
func (b *Boxed[T]) GetUninitSlot() (UninitSlot[T], bool) {
	if b.slab == nil {
		panic("acquire from closed Boxed")
	}

	idx, ok := b.slab.Acquire()
	if !ok {
		return UninitSlot[T]{}, false
	}

	return UninitSlot[T]{tagged: b.slab.Tag(idx)}, true
}

// Releases the handle's ownership of the slab. If no slots are outstanding
// the slab's memory is returned to the operating system immediately.
// Otherwise the slab is sealed, the outstanding slots remain fully usable
// and the release of the last one unmaps the slab.
func (b *Boxed[T]) Close() {
	s := b.slab
	b.slab = nil

	if s.Seal() {
		if err := s.Unmap(); err != nil {
			panic(fmt.Errorf("cannot unmap drained slab because %s", err))
		}
	}
}
