// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAntiTranspose_IndexMapping(t *testing.T) {
	// D: column 2 has boundary {0, 1}; everything else empty.
	raw := []rawColumn{
		{dim: 0, boundary: NewColumn()},
		{dim: 0, boundary: NewColumn()},
		{dim: 1, boundary: NewColumn(0, 1)},
	}
	a := antiTranspose(raw)
	assert.Len(t, a, 3)

	// D[0,2] and D[1,2] are set. A[i,j] = D[n-1-j, n-1-i].
	// D[0,2] -> n-1-j=0 => j=2, n-1-i=2 => i=0  => A column 2, row 0.
	// D[1,2] -> n-1-j=1 => j=1, n-1-i=2 => i=0  => A column 1, row 0.
	assert.True(t, a[2].boundary.Contains(0))
	assert.True(t, a[1].boundary.Contains(0))
	assert.True(t, a[0].boundary.Empty())
}

func TestUntranspose_Involution(t *testing.T) {
	n := uint32(10)
	for i := uint32(0); i < n; i++ {
		assert.Equal(t, i, untranspose(n, untranspose(n, i)))
	}
}

func TestClearedPivots_RecordAndCheck(t *testing.T) {
	c := newClearedPivots()
	assert.False(t, c.isCleared(0, 3))
	c.record(0, 3)
	assert.True(t, c.isCleared(0, 3))
	assert.False(t, c.isCleared(1, 3))
}

func TestDimensionOrder_DescendingGroupsByDimension(t *testing.T) {
	dims := []int8{0, 0, 0, 1, 1, 2}
	groups := dimensionOrder(dims)
	assert.Len(t, groups, 3)
	assert.Equal(t, []uint32{5}, groups[0])
	assert.Equal(t, []uint32{3, 4}, groups[1])
	assert.Equal(t, []uint32{0, 1, 2}, groups[2])
}
