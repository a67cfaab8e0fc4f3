// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package arena64

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/fmstephe/arena64/internal/slab"
)

// An Arena is a growable allocator safe for concurrent use. It keeps a
// single active slab and installs a fresh one whenever the active slab
// saturates. Alloc never fails.
//
// Replaced slabs are not tracked by the Arena. Each one is sealed as it is
// detached and stays alive exactly as long as its own outstanding slots,
// the release of the last slot unmaps it. The chain of past slabs is never
// traversed.
type Arena[T any] struct {
	// The address of the active slab, zero before the first Alloc. The
	// slab lives outside the Go heap, so holding it as a uintptr loses
	// nothing, the collector would not scan it either way.
	head atomic.Uintptr
}

// Returns a new empty Arena for values of type T. The first slab is mapped
// on first use. Panics if T contains pointers in any part of its type.
func NewArena[T any]() *Arena[T] {
	if err := containsNoPointers[T](); err != nil {
		panic(fmt.Errorf("cannot create Arena for type containing pointers: %w", err))
	}

	return &Arena[T]{}
}

// Inserts value into an unoccupied cell, mapping a fresh slab if the
// active one is saturated, and returns the Slot holding it.
func (a *Arena[T]) Alloc(value T) Slot[T] {
	cur := (*slab.Slab)(unsafe.Pointer(a.head.Load()))

	for {
		if cur != nil {
			if idx, ok := cur.Acquire(); ok {
				uninit := UninitSlot[T]{tagged: cur.Tag(idx)}
				return uninit.Insert(value)
			}
		}

		cur = a.replaceHead(cur)
	}
}

// Installs a freshly mapped slab in place of expected. On a lost race the
// fresh slab is unmapped again and the winner's slab is returned. On a won
// race the detached slab is sealed, its outstanding slots will unmap it.
func (a *Arena[T]) replaceHead(expected *slab.Slab) *slab.Slab {
	fresh := slab.Map(cellSize[T](), true)

	expectedPtr := uintptr(unsafe.Pointer(expected))
	freshPtr := uintptr(unsafe.Pointer(fresh))

	if a.head.CompareAndSwap(expectedPtr, freshPtr) {
		if expected != nil {
			sealSlab(expected)
		}
		return fresh
	}

	if err := fresh.Unmap(); err != nil {
		panic(fmt.Errorf("cannot unmap unused slab because %s", err))
	}

	return (*slab.Slab)(unsafe.Pointer(a.head.Load()))
}

// Releases the Arena's ownership of its active slab. Outstanding slots
// from every slab the Arena ever mapped remain fully usable, each slab is
// unmapped when its last slot is released. The Arena must not be used
// after Close.
func (a *Arena[T]) Close() {
	if prev := a.head.Swap(0); prev != 0 {
		sealSlab((*slab.Slab)(unsafe.Pointer(prev)))
	}
}

func sealSlab(s *slab.Slab) {
	if s.Seal() {
		if err := s.Unmap(); err != nil {
			panic(fmt.Errorf("cannot unmap drained slab because %s", err))
		}
	}
}
