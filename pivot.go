// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

import (
	"sync/atomic"

	"github.com/kelindar/intmap"
)

// claimOutcome reports what happened when a worker attempted to claim a
// pivot for its column.
type claimOutcome uint8

const (
	// claimed means the caller now owns the pivot.
	claimed claimOutcome = iota
	// heldBySmaller means a column with a smaller index already owns the
	// pivot; the caller must add that column's R/V and retry.
	heldBySmaller
	// stolen means the caller displaced a column with a larger index,
	// which must be re-examined by the dispatcher's redo sweep.
	stolen
)

// pivotRegistry is the concurrent mapping from pivot row index to the
// column index currently claiming it, described in spec.md section 4.3.
// Two implementations satisfy it: a CAS-based one for the parallel path,
// and a plain-load/store one (backed by github.com/kelindar/intmap) for the
// sequential fast path that spec.md section 4.6 calls out explicitly.
type pivotRegistry interface {
	// lookup returns the column index currently claiming row r, if any.
	lookup(r uint32) (uint32, bool)

	// claim attempts to set the claimant of row r to column j, honouring
	// the "lower column index wins" tie-break from spec.md section 4.3. The
	// second return value depends on outcome: for heldBySmaller it is the
	// column already holding the claim; for stolen it is the column claim
	// just displaced (always the one the CAS itself swapped out, never a
	// separately-observed value, so it cannot go stale under contention);
	// for claimed it is j.
	claim(r uint32, j uint32) (claimOutcome, uint32)
}

// --------------------------- concurrent registry ----------------------------

const noClaimant = ^uint64(0)

// concurrentPivots is a CAS-based pivotRegistry sized to the declared row
// space. A plain slice of atomic words, rather than a concurrent hash map,
// is sufficient and faster because the row space H is known up front.
type concurrentPivots struct {
	owners []atomic.Uint64
}

func newConcurrentPivots(height uint32) *concurrentPivots {
	p := &concurrentPivots{owners: make([]atomic.Uint64, height)}
	for i := range p.owners {
		p.owners[i].Store(noClaimant)
	}
	return p
}

func (p *concurrentPivots) lookup(r uint32) (uint32, bool) {
	v := p.owners[r].Load()
	if v == noClaimant {
		return 0, false
	}
	return uint32(v), true
}

func (p *concurrentPivots) claim(r uint32, j uint32) (claimOutcome, uint32) {
	slot := &p.owners[r]
	for {
		cur := slot.Load()
		switch {
		case cur == noClaimant:
			if slot.CompareAndSwap(cur, uint64(j)) {
				return claimed, j
			}
			// Someone else changed it under us; retry with a fresh read.
		case uint32(cur) == j:
			return claimed, j
		case uint32(cur) < j:
			return heldBySmaller, uint32(cur)
		default: // uint32(cur) > j: j is allowed to steal it.
			if slot.CompareAndSwap(cur, uint64(j)) {
				return stolen, uint32(cur)
			}
			// Contention: someone else (possibly an even smaller index)
			// raced us. Retry; the loop re-reads the authoritative value.
		}
	}
}

// --------------------------- sequential registry ----------------------------

// sequentialPivots is the single-threaded fast path from spec.md section
// 4.6: no CAS, no retries, backed by github.com/kelindar/intmap's plain
// open-addressed map, matching the teacher's declared dependency on
// kelindar/intmap (unused by the teacher's own columnar store, but exactly
// the "fast integer to integer map" this sequential path needs).
type sequentialPivots struct {
	owners *intmap.Map
}

func newSequentialPivots(height uint32) *sequentialPivots {
	return &sequentialPivots{owners: intmap.New(int(height), 0.9)}
}

func (p *sequentialPivots) lookup(r uint32) (uint32, bool) {
	v, ok := p.owners.Get(r)
	return v, ok
}

func (p *sequentialPivots) claim(r uint32, j uint32) (claimOutcome, uint32) {
	if cur, ok := p.owners.Get(r); ok {
		switch {
		case cur == j:
			return claimed, j
		case cur < j:
			return heldBySmaller, cur
		default:
			p.owners.Set(r, j)
			return stolen, cur
		}
	}
	p.owners.Set(r, j)
	return claimed, j
}
