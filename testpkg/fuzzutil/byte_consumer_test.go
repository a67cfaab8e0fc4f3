// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package fuzzutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteConsumer_ConsumesInOrder(t *testing.T) {
	c := NewByteConsumer([]byte{1, 2, 0, 3, 0, 0, 0})

	assert.Equal(t, byte(1), c.Byte())
	assert.Equal(t, uint16(2), c.Uint16())
	assert.Equal(t, uint32(3), c.Uint32())
	assert.Equal(t, 0, c.Len())
}

func TestByteConsumer_ZeroFillsWhenExhausted(t *testing.T) {
	c := NewByteConsumer([]byte{0xFF})

	assert.Equal(t, uint32(0xFF), c.Uint32())
	assert.Equal(t, 0, c.Len())

	// Reads past the end produce zero values
	assert.Equal(t, byte(0), c.Byte())
	assert.Equal(t, uint64(0), c.Uint64())
}
