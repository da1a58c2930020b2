// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

import (
	"context"
	"runtime"
	"sync"

	"github.com/kelindar/async"
	"github.com/kelindar/bitmap"
	"github.com/kelindar/smutex"
)

// dirtyShards bounds the sharded lock below; it does not need to track
// MinChunkLen or the worker count, since marking a column dirty is rare and
// cheap relative to a full reduction pass.
const dirtyShards = 128

// dirtySet is the bookkeeping structure behind spec.md section 4.5's
// per-column "dirty" flag. Concurrent markDirty calls from unrelated
// workers are spread across github.com/kelindar/smutex.SMutex128 shards the
// same way the teacher shards its chunk locks in txn_lock.go, so that a
// burst of pivot steals doesn't serialise on one mutex. drain is only ever
// called from the single goroutine orchestrating a dispatch round, after
// every worker for that round has already joined, so it needs no locking
// of its own.
type dirtySet struct {
	bits bitmap.Bitmap
	mu   *smutex.SMutex128
}

func newDirtySet(n uint32) *dirtySet {
	return &dirtySet{
		bits: make(bitmap.Bitmap, (n>>6)+1),
		mu:   new(smutex.SMutex128),
	}
}

func (d *dirtySet) markDirty(j uint32) {
	// Shard by bitmap word, so every bit sharing a uint64 is guarded by the
	// same lock.
	shard := uint((j >> 6) % dirtyShards)
	d.mu.Lock(shard)
	d.bits.Grow(j)
	d.bits.Set(j)
	d.mu.Unlock(shard)
}

func (d *dirtySet) drain() []uint32 {
	var out []uint32
	d.bits.Range(func(x uint32) { out = append(out, x) })
	for i := range d.bits {
		d.bits[i] = 0
	}
	return out
}

// chunksOf splits an ordered column-index list into contiguous runs of
// minLen columns each (minLen below 1 is treated as 1), per spec.md section
// 4.6. The last run holds the remainder and may be shorter than minLen.
func chunksOf(group []uint32, minLen int) [][]uint32 {
	if minLen < 1 {
		minLen = 1
	}
	if len(group) == 0 {
		return nil
	}

	chunks := make([][]uint32, 0, len(group)/minLen+1)
	for start := 0; start < len(group); start += minLen {
		end := start + minLen
		if end > len(group) {
			end = len(group)
		}
		chunks = append(chunks, group[start:end])
	}
	return chunks
}

// runGroup reduces every column in group (already in the relative order
// spec.md requires — ascending within a dimension, per preprocess.go's
// dimensionOrder) against m and piv, honoring Options.NumThreads and
// Options.MinChunkLen, then re-runs any column displaced by a pivot steal
// until a full sweep displaces nothing new (spec.md section 4.5).
func runGroup(m *matrixStore, piv pivotRegistry, group []uint32, opts Options) {
	if len(group) == 0 {
		return
	}

	dirty := newDirtySet(m.size())
	sweep(m, piv, group, opts, dirty)
	opts.trace("sweep", "initial pass complete")

	for round := 0; ; round++ {
		redo := dirty.drain()
		if len(redo) == 0 {
			break
		}
		sweep(m, piv, redo, opts, dirty)
		opts.trace("redo", "re-ran displaced columns")
	}
}

// sweep runs one left-to-right pass over cols, chunked and distributed
// across workers (or run inline when NumThreads == 1), marking any column
// displaced by a pivot steal as dirty for the next round.
func sweep(m *matrixStore, piv pivotRegistry, cols []uint32, opts Options, dirty *dirtySet) {
	threads := opts.NumThreads
	if threads == 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	if threads == 1 {
		for _, j := range cols {
			reduceAndMark(m, piv, j, dirty)
		}
		return
	}

	chunks := chunksOf(cols, opts.MinChunkLen)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	work := make(chan async.Task, len(chunks))
	pool := async.Consume(ctx, threads, work)
	defer pool.Cancel()

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, chunk := range chunks {
		chunk := chunk
		work <- async.NewTask(func(context.Context) (interface{}, error) {
			defer wg.Done()
			for _, j := range chunk {
				reduceAndMark(m, piv, j, dirty)
			}
			return nil, nil
		})
	}
	wg.Wait()
}

// reduceAndMark runs reduceColumn and, if it stole a pivot away from a
// larger column index, records that column as needing a later re-run.
func reduceAndMark(m *matrixStore, piv pivotRegistry, j uint32, dirty *dirtySet) {
	if displaced, ok := reduceColumn(m, piv, j); ok {
		dirty.markDirty(displaced)
	}
}
