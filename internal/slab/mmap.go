// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slab

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func mapSlab(footprint int) []byte {
	data, err := unix.Mmap(-1, 0, footprint, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(fmt.Errorf("cannot map slab of %d bytes because %s", footprint, err))
	}
	return data
}

func unmapSlab(base uintptr, footprint int) error {
	b := pointerToBytes(base, footprint)
	return unix.Munmap(b)
}

func pointerToBytes(ptr uintptr, size int) []byte {
	return ([]byte)(unsafe.Slice((*byte)((unsafe.Pointer)(ptr)), size))
}
