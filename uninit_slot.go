// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena64

import (
	"fmt"

	"github.com/fmstephe/arena64/internal/slab"
)

// An UninitSlot grants exclusive access to a reserved but uninitialized
// cell. The cell's storage holds arbitrary bytes until Insert writes a
// value into it.
//
// Like Slot, an UninitSlot is a single tagged word and contains no
// conventional Go pointers. It is logically move-only, exactly one of
// Insert or Release must be called, exactly once. Copying an UninitSlot
// and using both copies is a bug. A double Release panics where the slab's
// discipline can detect it, any other misuse goes undetected.
type UninitSlot[T any] struct {
	tagged uintptr
}

// Writes value into the reserved cell, consuming the UninitSlot and
// producing the initialized Slot for the same cell.
func (u UninitSlot[T]) Insert(value T) Slot[T] {
	s, idx := slab.Untag(u.tagged)
	*(*T)(s.Cell(idx, cellSize[T]())) = value

	return Slot[T]{tagged: u.tagged}
}

// Abandons the reservation without initializing the cell. The cell's
// storage is untouched and its occupancy bit is released.
func (u UninitSlot[T]) Release() {
	s, idx := slab.Untag(u.tagged)
	releaseCell(s, idx)
}

// Releases the occupancy bit of cell idx under the slab's release
// discipline. In the deferred discipline the release may complete the
// seal handshake, making this caller responsible for unmapping the slab.
func releaseCell(s *slab.Slab, idx int) {
	if !s.Deferred() {
		s.ReleaseClear(idx)
		return
	}

	if s.ReleaseToggle(idx) {
		if err := s.Unmap(); err != nil {
			panic(fmt.Errorf("cannot unmap drained slab because %s", err))
		}
	}
}
