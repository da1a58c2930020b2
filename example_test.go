// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat_test

import (
	"fmt"
	"sort"

	"github.com/lophat-go/lophat"
)

// ExampleDecompose reduces the boundary matrix of a filled triangle and
// prints its persistence pairs.
func ExampleDecompose() {
	columns := []lophat.InputColumn{
		{Dimension: 0},
		{Dimension: 0},
		{Dimension: 0},
		{Dimension: 1, Boundary: []uint32{0, 1}},
		{Dimension: 1, Boundary: []uint32{0, 2}},
		{Dimension: 1, Boundary: []uint32{1, 2}},
		{Dimension: 2, Boundary: []uint32{3, 4, 5}},
	}

	diagram, err := lophat.Decompose(columns, lophat.Options{})
	if err != nil {
		panic(err)
	}

	sort.Slice(diagram.Paired, func(i, j int) bool {
		return diagram.Paired[i].Death < diagram.Paired[j].Death
	})
	for _, p := range diagram.Paired {
		fmt.Printf("(%d, %d)\n", p.Birth, p.Death)
	}
	fmt.Println("unpaired:", diagram.Unpaired)
	// Output:
	// (1, 3)
	// (2, 4)
	// (5, 6)
	// unpaired: [0]
}
