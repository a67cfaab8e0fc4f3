// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena64

import (
	"fmt"
	"math/bits"

	"github.com/fmstephe/arena64/internal/slab"
)

// A Bump is the single-caller specialization of Arena. One goroutine owns
// the Bump and performs all allocations, so occupancy bits are claimed in
// a local copy of the occupancy word with no atomic work on the insert
// path. Slots produced by a Bump may still be released from any goroutine.
//
// Because the owner is the only claimer, cells are handed out in index
// order and a Bump preserves per-caller insertion order within and across
// slabs.
type Bump[T any] struct {
	cur   *slab.Slab
	local uint64
}

// Returns a new empty Bump for values of type T. The first slab is mapped
// on first use. Panics if T contains pointers in any part of its type.
func NewBump[T any]() *Bump[T] {
	if err := containsNoPointers[T](); err != nil {
		panic(fmt.Errorf("cannot create Bump for type containing pointers: %w", err))
	}

	return &Bump[T]{}
}

// Inserts value into the next cell of the active slab, mapping a fresh
// slab if the active one is saturated, and returns the Slot holding it.
// Alloc must only be called by the owning goroutine.
func (b *Bump[T]) Alloc(value T) Slot[T] {
	if b.cur == nil || b.local == slab.Full {
		b.retire()
		b.cur = slab.Map(cellSize[T](), true)
		b.local = 0
	}

	// The local word is only ever written by this goroutine, claiming
	// the lowest clear bit needs no atomics
	bit := ^b.local & (b.local + 1)
	b.local |= bit
	idx := bits.TrailingZeros64(bit)

	*(*T)(b.cur.Cell(idx, cellSize[T]())) = value

	return Slot[T]{tagged: b.cur.Tag(idx)}
}

// Releases the Bump's ownership of its active slab. Outstanding slots
// remain fully usable, each slab is unmapped when its last slot is
// released. The Bump must not be used after Close.
func (b *Bump[T]) Close() {
	b.retire()
}

// Detaches the active slab, handing it over to its outstanding slots. The
// bits this Bump never claimed are toggled in, completing the same
// handshake a seal starts. If every slot has already been released the
// slab is unmapped here.
func (b *Bump[T]) retire() {
	if b.cur == nil {
		return
	}

	s := b.cur
	local := b.local
	b.cur = nil

	unoccupied := ^local
	if unoccupied == 0 {
		// Every cell is outstanding and the word already carries the
		// sealed encoding. There is nothing to toggle, and the last
		// slot may have unmapped the slab already, so it must not be
		// touched.
		return
	}

	if s.Toggle(unoccupied) == local {
		if err := s.Unmap(); err != nil {
			panic(fmt.Errorf("cannot unmap drained slab because %s", err))
		}
	}
}
