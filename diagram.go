// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

// Pair is a persistence pair: a feature born at column Birth and killed at
// column Death, recovered as Birth = pivot(R_Death).
type Pair struct {
	Birth uint32
	Death uint32
}

// Diagram is the output of a decomposition. Unpaired holds the essential
// (infinite-persistence) column indices; Paired holds the (birth, death)
// pairs. When Options.Representatives was set, UnpairedReps and PairedReps
// hold the corresponding representative cycles, aligned by index with
// Unpaired and Paired respectively.
type Diagram struct {
	Unpaired     []uint32
	UnpairedReps []Column
	Paired       []Pair
	PairedReps   []Column
}

// extract scans the finalised matrix and builds a Diagram, per spec.md
// section 4.8. n is the number of columns in the caller's original
// coordinate system; transposed indicates that antiTranspose was applied,
// in which case every birth/death is mapped back with untranspose before
// being emitted.
func extract(m *matrixStore, opts Options, n uint32, transposed bool) Diagram {
	isBirth := make([]bool, n)
	var diag Diagram

	for j := uint32(0); j < n; j++ {
		p := m.snapshot(j)
		if p.r.Empty() {
			continue
		}
		birth, _ := p.r.Pivot()
		isBirth[birth] = true

		b, d := birth, j
		if transposed {
			// A transposed pair (birth=b', death=j=d') with b' < d' is a
			// cohomology pair; mapping each index back with j <-> n-1-j
			// reverses their order (untranspose is order-reversing), so the
			// original-coordinate birth is untranspose(j) and the
			// original-coordinate death is untranspose(b').
			b, d = untranspose(n, j), untranspose(n, birth)
		}
		diag.Paired = append(diag.Paired, Pair{Birth: b, Death: d})
		if opts.Representatives {
			diag.PairedReps = append(diag.PairedReps, representativeOf(m, opts, n, transposed, j))
		}
	}

	for j := uint32(0); j < n; j++ {
		if isBirth[j] {
			continue
		}
		p := m.snapshot(j)
		if !p.r.Empty() {
			continue
		}
		idx := j
		if transposed {
			idx = untranspose(n, j)
		}
		diag.Unpaired = append(diag.Unpaired, idx)
		if opts.Representatives {
			diag.UnpairedReps = append(diag.UnpairedReps, representativeOf(m, opts, n, transposed, j))
		}
	}

	return diag
}

// representativeOf returns the V column to report as the representative
// cycle/chain for column j, per spec.md section 4.8: "emit V_d ... as a
// cycle representative". The anti-transposed case needs no extra
// transformation of the column's own contents (V lives in the same
// coordinate system it was reduced in); only the birth/death indices that
// label the pair are mapped back.
func representativeOf(m *matrixStore, opts Options, n uint32, transposed bool, j uint32) Column {
	return m.snapshot(j).v.Clone()
}
