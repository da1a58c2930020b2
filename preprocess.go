// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

// rawColumn is the pre-matrix-store representation of one input column:
// its dimension and its boundary as a Column of row indices.
type rawColumn struct {
	dim      int8
	boundary Column
}

// antiTranspose computes the anti-transpose of a square N x N matrix, per
// spec.md section 4.7: A[i, j] = D[N-1-j, N-1-i]. Column j of the result is
// built by scanning D for entries in row N-1-j and re-indexing them; a
// naive implementation would be O(N^2), so this instead makes one pass over
// D's columns, scattering each entry (r, j) of D into bucket N-1-r of the
// output (the column of A that owns row N-1-j == r), giving O(total
// non-zeros).
func antiTranspose(in []rawColumn) []rawColumn {
	n := uint32(len(in))
	buckets := make([][]uint32, n)

	for j, col := range in {
		for _, r := range col.boundary.Rows() {
			// This entry D[r, j] becomes A[n-1-j, n-1-r], i.e. it belongs
			// to column (n-1-r) of A at row (n-1-j).
			dst := n - 1 - r
			buckets[dst] = append(buckets[dst], n-1-uint32(j))
		}
	}

	out := make([]rawColumn, n)
	for j := range in {
		out[j] = rawColumn{
			dim:      in[n-1-uint32(j)].dim,
			boundary: NewColumn(buckets[j]...),
		}
	}
	return out
}

// untranspose maps a column or row index back from anti-transposed
// coordinates to the caller's original coordinate system.
func untranspose(n, idx uint32) uint32 {
	return n - 1 - idx
}

// clearedPivots records, for each dimension, the set of column indices that
// a higher dimension's reduction has already found as the pivot of a
// non-empty column (birth indices, which therefore reduce to zero one
// dimension down). It implements spec.md
// section 4.7's clearing optimisation.
type clearedPivots struct {
	byDim map[int8]map[uint32]struct{}
}

func newClearedPivots() *clearedPivots {
	return &clearedPivots{byDim: make(map[int8]map[uint32]struct{})}
}

// record notes that column birth (of dimension dim) is now known to die,
// so when columns of dimension dim are later scheduled, birth's R should be
// cleared before reduction begins.
func (c *clearedPivots) record(dim int8, birth uint32) {
	set, ok := c.byDim[dim]
	if !ok {
		set = make(map[uint32]struct{})
		c.byDim[dim] = set
	}
	set[birth] = struct{}{}
}

// isCleared reports whether column j, known to have dimension dim, has
// already been proven to reduce to zero.
func (c *clearedPivots) isCleared(dim int8, j uint32) bool {
	set, ok := c.byDim[dim]
	if !ok {
		return false
	}
	_, cleared := set[j]
	return cleared
}

// dimensionOrder groups column indices by dimension, descending, which is
// the processing order clearing requires (spec.md: "the dispatcher
// processes columns by descending dimension"). Columns within a dimension
// keep their original relative (filtration) order.
func dimensionOrder(dims []int8) [][]uint32 {
	byDim := make(map[int8][]uint32)
	var dimsSeen []int8
	for j, d := range dims {
		if _, ok := byDim[d]; !ok {
			dimsSeen = append(dimsSeen, d)
		}
		byDim[d] = append(byDim[d], uint32(j))
	}

	// Sort dimsSeen descending without pulling in "sort" for a handful of
	// small integers; insertion sort is more than adequate here.
	for i := 1; i < len(dimsSeen); i++ {
		for k := i; k > 0 && dimsSeen[k-1] < dimsSeen[k]; k-- {
			dimsSeen[k-1], dimsSeen[k] = dimsSeen[k], dimsSeen[k-1]
		}
	}

	out := make([][]uint32, len(dimsSeen))
	for i, d := range dimsSeen {
		out[i] = byDim[d]
	}
	return out
}
