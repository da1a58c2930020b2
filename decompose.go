// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

// InputColumn is one column of the boundary matrix, presented in filtration
// order: Boundary lists the row indices (faces) the column is non-zero on,
// and Dimension is the dimension of the cell the column represents.
type InputColumn struct {
	Dimension int
	Boundary  []uint32
}

// Decompose computes the persistence diagram of the filtered chain complex
// whose boundary matrix is given by columns, in filtration order. It
// implements the R = D*V decomposition described in spec.md: preprocessing
// (anti-transpose, clearing) when enabled, a lock-free parallel column
// reduction, and extraction of the final diagram.
//
// All errors are returned before any reduction work begins; once the sweep
// starts the algorithm is total on any validated input, so no error can
// arise partway through (spec.md section 7).
func Decompose(columns []InputColumn, opts Options) (Diagram, error) {
	opts = withDefaults(opts)
	n := uint32(len(columns))
	if n == 0 {
		return Diagram{}, nil
	}

	height := opts.ColumnHeight
	if height == 0 {
		height = n
	}
	square := height == n

	if err := validate(opts, len(columns), square); err != nil {
		return Diagram{}, err
	}

	dims := make([]int8, n)
	raw := make([]rawColumn, n)
	for j, c := range columns {
		dims[j] = int8(c.Dimension)
		for _, r := range c.Boundary {
			if r >= height {
				return Diagram{}, inputErrorf(uint32(j), "boundary row %d is out of range for column height %d", r, height)
			}
		}
		raw[j] = rawColumn{dim: dims[j], boundary: NewColumn(c.Boundary...)}
	}

	if opts.Clearing {
		if err := validateSimplicial(columns); err != nil {
			return Diagram{}, err
		}
	}

	transposed := opts.AntiTranspose && square
	if transposed {
		raw = antiTranspose(raw)
		for j := range raw {
			dims[j] = raw[j].dim
		}
		opts.trace("anti-transpose", "applied")
	}

	cols := make([]Column, n)
	for j := range raw {
		cols[j] = raw[j].boundary
	}
	m := newMatrixStore(cols, dims, opts.MaintainV)

	var piv pivotRegistry
	if opts.NumThreads == 1 {
		piv = newSequentialPivots(height)
	} else {
		piv = newConcurrentPivots(height)
	}

	runDecomposition(m, piv, dims, opts)
	checkLowInvariant(m)

	return extract(m, opts, n, transposed), nil
}

// runDecomposition schedules the reduction, by descending dimension when
// clearing is enabled (spec.md section 4.7), or as a single pass over the
// whole matrix otherwise.
func runDecomposition(m *matrixStore, piv pivotRegistry, dims []int8, opts Options) {
	if !opts.Clearing {
		group := make([]uint32, m.size())
		for j := range group {
			group[j] = uint32(j)
		}
		runGroup(m, piv, group, opts)
		return
	}

	groups := dimensionOrder(dims)
	cleared := newClearedPivots()

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		dim := dims[group[0]]
		active := applyClearing(m, cleared, dim, group)
		runGroup(m, piv, active, opts)
		recordClears(m, cleared, dim, group)
		opts.trace("clearing", "dimension group processed")
	}
}

// applyClearing publishes an empty R for every column in group already
// known to reduce to zero, and returns the subset of group that still needs
// real reduction.
func applyClearing(m *matrixStore, cleared *clearedPivots, dim int8, group []uint32) []uint32 {
	active := make([]uint32, 0, len(group))
	for _, j := range group {
		if !cleared.isCleared(dim, j) {
			active = append(active, j)
			continue
		}
		cur := m.snapshot(j)
		if !cur.r.Empty() {
			m.publish(j, &pair{r: Column{}, v: cur.v, dim: cur.dim})
		}
	}
	return active
}

// recordClears scans a just-finished dimension group and records, for the
// dimension one lower, every birth column that this group's deaths proved
// is now provably zero.
func recordClears(m *matrixStore, cleared *clearedPivots, dim int8, group []uint32) {
	for _, d := range group {
		r := m.snapshot(d).r
		if r.Empty() {
			continue
		}
		birth, _ := r.Pivot()
		cleared.record(dim-1, birth)
	}
}

// validateSimplicial checks, only when clearing is enabled, that every
// boundary entry of a dimension-p column references a column of dimension
// p-1, per spec.md section 7's input-error taxonomy. This check only makes
// sense for a declared-simplicial filtration; callers whose filtration
// mixes dimensions non-simplicially should disable clearing (spec.md
// section 9's open question).
func validateSimplicial(columns []InputColumn) error {
	for j, c := range columns {
		want := int8(c.Dimension) - 1
		for _, r := range c.Boundary {
			if int(r) >= len(columns) {
				continue // already reported as an out-of-range row
			}
			if int8(columns[r].Dimension) != want {
				return inputErrorf(uint32(j), "boundary row %d has dimension %d, expected %d for a simplicial dimension-%d column", r, columns[r].Dimension, want, c.Dimension)
			}
		}
	}
	return nil
}
