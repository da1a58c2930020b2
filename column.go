// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

import (
	"github.com/kelindar/bitmap"
)

// Column represents a finite, immutable subset of non-negative row indices
// over GF(2). The zero value is the empty column.
type Column struct {
	bits bitmap.Bitmap
}

// NewColumn creates a column from a set of row indices. Duplicate indices
// are folded together, consistent with GF(2) arithmetic.
func NewColumn(rows ...uint32) Column {
	var bits bitmap.Bitmap
	for _, r := range rows {
		bits.Grow(r)
		bits.Set(r)
	}
	return Column{bits: bits}
}

// Empty reports whether the column has no set rows.
func (c Column) Empty() bool {
	return c.bits.Count() == 0
}

// Contains reports whether row r is present in the column.
func (c Column) Contains(r uint32) bool {
	return r < uint32(len(c.bits))<<6 && c.bits.Contains(r)
}

// Pivot returns the greatest row index present in the column, the "low"
// entry used to disambiguate reduction order. The second return value is
// false for the empty column.
func (c Column) Pivot() (uint32, bool) {
	return c.bits.Max()
}

// Count returns the number of set rows.
func (c Column) Count() int {
	return c.bits.Count()
}

// Rows returns the sorted list of set row indices.
func (c Column) Rows() []uint32 {
	out := make([]uint32, 0, c.bits.Count())
	c.bits.Range(func(x uint32) {
		out = append(out, x)
	})
	return out
}

// Clone returns an independent copy of the column.
func (c Column) Clone() Column {
	return Column{bits: c.bits.Clone()}
}

// Equal reports whether two columns contain the same set of rows.
func (c Column) Equal(o Column) bool {
	a, b := c.bits, o.bits
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var wa, wb uint64
		if i < len(a) {
			wa = a[i]
		}
		if i < len(b) {
			wb = b[i]
		}
		if wa != wb {
			return false
		}
	}
	return true
}

// Add returns the symmetric difference (GF(2) sum) of two columns. Neither
// input is mutated; the result is a freshly allocated column, matching the
// "columns are immutable once published" invariant of the matrix store.
func Add(a, b Column) Column {
	n := len(a.bits)
	if len(b.bits) > n {
		n = len(b.bits)
	}
	if n == 0 {
		return Column{}
	}

	out := make(bitmap.Bitmap, n)
	copy(out, a.bits)
	for i, w := range b.bits {
		out[i] ^= w
	}
	return Column{bits: out}
}
