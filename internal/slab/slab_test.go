// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package slab

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireFillsInIndexOrder(t *testing.T) {
	s := Map(8, false)
	defer s.Unmap()

	for i := range SlotsPerSlab {
		idx, ok := s.Acquire()
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	assert.Equal(t, Full, s.Occupancy())

	_, ok := s.Acquire()
	assert.False(t, ok)
}

func TestAcquireReusesLowestReleasedCell(t *testing.T) {
	s := Map(8, false)
	defer s.Unmap()

	for range SlotsPerSlab {
		s.Acquire()
	}

	s.ReleaseClear(17)
	s.ReleaseClear(3)

	idx, ok := s.Acquire()
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	idx, ok = s.Acquire()
	require.True(t, ok)
	assert.Equal(t, 17, idx)
}

func TestReleaseClearPanicsOnUnoccupiedCell(t *testing.T) {
	s := Map(8, false)
	defer s.Unmap()

	idx, ok := s.Acquire()
	require.True(t, ok)

	s.ReleaseClear(idx)
	assert.Panics(t, func() {
		s.ReleaseClear(idx)
	})
}

func TestCellsAreSpacedAndAligned(t *testing.T) {
	for _, cellSize := range []uintptr{1, 2, 4, 8, 16, 64, 128, 1 << 10} {
		s := Map(cellSize, false)

		base := uintptr(unsafe.Pointer(s))
		assert.Zero(t, base&IndexMask)

		// Cell 0 starts on the cache line after the header
		first := uintptr(s.Cell(0, cellSize))
		assert.Equal(t, base+headerSize, first)

		for i := range SlotsPerSlab {
			cell := uintptr(s.Cell(i, cellSize))
			assert.Equal(t, first+uintptr(i)*cellSize, cell)
		}

		require.NoError(t, s.Unmap())
	}
}

func TestTagUntagRoundTrip(t *testing.T) {
	s := Map(8, false)
	defer s.Unmap()

	for i := range SlotsPerSlab {
		tagged := s.Tag(i)

		back, idx := Untag(tagged)
		assert.Same(t, s, back)
		assert.Equal(t, i, idx)
	}
}

func TestSealOnEmptySlab(t *testing.T) {
	s := Map(8, true)

	// No cells outstanding, the sealer owns the slab
	require.True(t, s.Seal())
	require.NoError(t, s.Unmap())
}

func TestSealHandshake(t *testing.T) {
	s := Map(8, true)

	idxA, ok := s.Acquire()
	require.True(t, ok)
	idxB, ok := s.Acquire()
	require.True(t, ok)

	// Two cells outstanding, the seal hands the slab to them
	require.False(t, s.Seal())

	// The occupancy word is now inverted, a set bit means released
	assert.Equal(t, Full&^(1<<idxA)&^(1<<idxB), s.Occupancy())

	require.False(t, s.ReleaseToggle(idxA))
	require.True(t, s.ReleaseToggle(idxB))

	// The final toggle made us the owner
	require.NoError(t, s.Unmap())
}

func TestToggleReportsPreviousWord(t *testing.T) {
	s := Map(8, true)
	defer s.Unmap()

	assert.Equal(t, uint64(0), s.Toggle(0b1010))
	assert.Equal(t, uint64(0b1010), s.Toggle(0b0110))
	assert.Equal(t, uint64(0b1100), s.Occupancy())
}

func TestDisciplineFlag(t *testing.T) {
	plain := Map(8, false)
	defer plain.Unmap()
	deferred := Map(8, true)
	defer deferred.Unmap()

	assert.False(t, plain.Deferred())
	assert.True(t, deferred.Deferred())
}
