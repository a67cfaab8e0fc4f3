// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

// # Usage
//
// The arena64 package provides fixed-width slab allocators whose
// allocations are addressable as single machine words. Values live in
// slabs of 64 cells, each occupied cell is owned by exactly one Slot, and
// a Slot can be converted to and from a tagged pointer whose low 6 bits
// carry the cell index and whose remaining bits carry the slab address.
// This makes the allocators a natural backing store for handles that must
// pass through pointer-sized APIs, intrusive structures keyed by raw
// pointers, and similar designs.
//
// Four allocators share one cell protocol:
//
//   - Fixed is a single 64-cell slab which never grows. Acquisition
//     reports saturation when all 64 cells are held.
//   - Boxed is a single 64-cell slab whose memory outlives the Boxed
//     handle. The handle and its slots may be released in any order and
//     the memory is returned to the operating system by the last of them.
//   - Arena grows in increments of 64 cells and is safe for fully
//     concurrent allocation. Replaced slabs free themselves as their
//     slots drain.
//   - Bump is the single-caller specialization of Arena. It trades
//     concurrent allocation for claiming cells without atomic operations,
//     and it preserves insertion order.
//
// A cell is reserved as an UninitSlot, initialized by UninitSlot.Insert
// into a Slot, and finally released by Slot.Free, consumed by Slot.Take,
// or converted to a raw word by Slot.IntoRaw:
//
//	fixed := arena64.NewFixed[int]()
//
//	uninit, ok := fixed.GetUninitSlot()
//	if !ok {
//		// all 64 cells are occupied
//	}
//	slot := uninit.Insert(42)
//
//	raw := slot.IntoRaw()
//	slot = arena64.FromRaw[int](raw)
//
//	value := slot.Take() // 42
//
// # Pointer Free Types
//
// Slab memory is mapped manually and never scanned by the garbage
// collector. Any Go type can be stored in a slab so long as no part of the
// type contains pointers, this includes strings, slices, maps, channels,
// funcs and interfaces. Constructing an allocator for a type which
// contains pointers panics.
//
// The Slot and UninitSlot handles are themselves pointer free, so they can
// be stored inside other slab cells without being seen by the collector.
// The price of that property is that nothing roots a slab except its
// allocator handle and the protocol itself, a Slot used after its slab was
// unmapped reads unmapped memory.
//
// # Concurrency Guarantees
//
// Arena.Alloc may be called freely from any number of goroutines. Slots
// acquired from any allocator may be read, written, released and
// round-tripped through IntoRaw/FromRaw from any goroutine, provided each
// cell is touched only by the goroutine currently holding its Slot.
// Publishing a Slot to another goroutine needs the usual happens-before
// edge, a channel send or similar.
//
// Bump.Alloc must only be called by the owning goroutine. Slots produced
// by a Bump carry no such restriction.
//
// No operation in this package blocks. Allocation and release are bounded
// atomic work, retried only under contention for the same slab.
package arena64
