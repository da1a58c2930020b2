// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

// reduceColumn runs the per-column reduction procedure of spec.md section
// 4.4 against matrix m and pivot registry piv. When the reduction steals a
// pivot away from a column k > j, it returns (k, true) so the caller can
// mark k dirty for the redo sweep (spec.md section 4.5); otherwise it
// returns (0, false).
//
// The loop only ever reads slots strictly less than j, so the dependency
// graph among concurrently-running reductions is acyclic: this is what
// makes it safe for many goroutines to run reduceColumn concurrently
// against the same matrix and registry without a lock on either.
func reduceColumn(m *matrixStore, piv pivotRegistry, j uint32) (displaced uint32, ok bool) {
	cur := m.snapshot(j)
	dirty := false

	for {
		if cur.r.Empty() {
			if dirty {
				m.publish(j, cur)
			}
			return 0, false
		}

		row, _ := cur.r.Pivot()
		outcome, owner := piv.claim(row, j)

		switch outcome {
		case claimed:
			if dirty {
				m.publish(j, cur)
			}
			return 0, false

		case stolen:
			if dirty {
				m.publish(j, cur)
			}
			// owner is the column claim itself swapped out, never a
			// separately-observed value, so it cannot have gone stale
			// under concurrent claims on the same row.
			return owner, true

		default: // heldBySmaller
			k := owner
			other := m.snapshot(k)
			cur = &pair{
				r:   Add(cur.r, other.r),
				v:   Add(cur.v, other.v),
				dim: cur.dim,
			}
			dirty = true
			// Loop: re-examine the new R's pivot, which may again be
			// claimed, unclaimed, or stealable.
		}
	}
}
