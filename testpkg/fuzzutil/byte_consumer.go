// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package fuzzutil

import (
	"encoding/binary"
)

// A ByteConsumer chops a fuzzer-provided byte slice into the small typed
// values a test run needs. Once the bytes run out every read returns zero
// values, which keeps step construction total.
type ByteConsumer struct {
	bytes []byte
}

func NewByteConsumer(bytes []byte) *ByteConsumer {
	return &ByteConsumer{
		bytes: bytes,
	}
}

func (c *ByteConsumer) Len() int {
	return len(c.bytes)
}

func (c *ByteConsumer) Bytes(size int) []byte {
	consumed := make([]byte, size)
	copy(consumed, c.bytes)

	if len(c.bytes) <= size {
		c.bytes = c.bytes[:0]
	} else {
		c.bytes = c.bytes[size:]
	}
	return consumed
}

func (c *ByteConsumer) Byte() byte {
	return c.Bytes(1)[0]
}

func (c *ByteConsumer) Uint16() uint16 {
	return binary.LittleEndian.Uint16(c.Bytes(2))
}

func (c *ByteConsumer) Uint32() uint32 {
	return binary.LittleEndian.Uint32(c.Bytes(4))
}

func (c *ByteConsumer) Uint64() uint64 {
	return binary.LittleEndian.Uint64(c.Bytes(8))
}
