// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

//go:build lophat_debug

package lophat

const debugAssertions = true

// checkLowInvariant verifies that no two distinct non-empty columns in the
// matrix share a pivot. It is O(N) and only ever runs under the
// lophat_debug build tag, per spec.md's "detected only in debug builds"
// requirement.
func checkLowInvariant(m *matrixStore) {
	seen := make(map[uint32]uint32, m.size())
	for j := uint32(0); j < m.size(); j++ {
		r := m.snapshot(j).r
		p, ok := r.Pivot()
		if !ok {
			continue
		}
		if prev, dup := seen[p]; dup {
			invariant("columns %d and %d both claim pivot %d", prev, j, p)
		}
		seen[p] = j
	}
}
