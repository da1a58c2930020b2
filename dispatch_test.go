// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunksOf_ContiguousRuns(t *testing.T) {
	group := []uint32{0, 1, 2, 3, 4, 5, 6}
	chunks := chunksOf(group, 3)
	assert.Equal(t, [][]uint32{{0, 1, 2}, {3, 4, 5}, {6}}, chunks)
}

func TestChunksOf_MinLenOne(t *testing.T) {
	group := []uint32{0, 1, 2}
	chunks := chunksOf(group, 0)
	assert.Equal(t, [][]uint32{{0}, {1}, {2}}, chunks)
}

func TestDirtySet_MarkAndDrain(t *testing.T) {
	d := newDirtySet(16)
	d.markDirty(3)
	d.markDirty(9)
	got := d.drain()
	assert.ElementsMatch(t, []uint32{3, 9}, got)

	// draining clears the set.
	assert.Empty(t, d.drain())
}

func TestRunGroup_SequentialAndParallelAgree(t *testing.T) {
	boundaries := [][]uint32{{}, {}, {}, {0, 1}, {0, 2}, {1, 2}, {3, 4, 5}}
	group := make([]uint32, len(boundaries))
	for i := range group {
		group[i] = uint32(i)
	}

	seq := buildMatrix(boundaries, false)
	runGroup(seq, newSequentialPivots(uint32(len(boundaries))), group, Options{NumThreads: 1, MinChunkLen: 1})

	par := buildMatrix(boundaries, false)
	runGroup(par, newConcurrentPivots(uint32(len(boundaries))), group, Options{NumThreads: 4, MinChunkLen: 1})

	for j := range boundaries {
		a, aok := seq.snapshot(uint32(j)).r.Pivot()
		b, bok := par.snapshot(uint32(j)).r.Pivot()
		assert.Equal(t, aok, bok)
		if aok {
			assert.Equal(t, a, b)
		}
	}
}
