// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root for details.

package lophat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcurrentPivots_ClaimUnowned(t *testing.T) {
	p := newConcurrentPivots(10)
	outcome, owner := p.claim(3, 5)
	assert.Equal(t, claimed, outcome)
	assert.Equal(t, uint32(5), owner)

	got, ok := p.lookup(3)
	assert.True(t, ok)
	assert.Equal(t, uint32(5), got)
}

func TestConcurrentPivots_LowerIndexWins(t *testing.T) {
	p := newConcurrentPivots(10)
	p.claim(3, 5)

	// A larger index trying to claim the same row is told who holds it.
	outcome, owner := p.claim(3, 9)
	assert.Equal(t, heldBySmaller, outcome)
	assert.Equal(t, uint32(5), owner)

	// A smaller index steals it, and is told which column it displaced.
	outcome, owner = p.claim(3, 2)
	assert.Equal(t, stolen, outcome)
	assert.Equal(t, uint32(5), owner)

	got, _ := p.lookup(3)
	assert.Equal(t, uint32(2), got)
}

func TestConcurrentPivots_ReclaimBySameOwner(t *testing.T) {
	p := newConcurrentPivots(10)
	p.claim(1, 4)
	outcome, owner := p.claim(1, 4)
	assert.Equal(t, claimed, outcome)
	assert.Equal(t, uint32(4), owner)
}

func TestSequentialPivots_MatchesConcurrentSemantics(t *testing.T) {
	p := newSequentialPivots(10)
	outcome, owner := p.claim(3, 5)
	assert.Equal(t, claimed, outcome)
	assert.Equal(t, uint32(5), owner)

	outcome, owner = p.claim(3, 9)
	assert.Equal(t, heldBySmaller, outcome)
	assert.Equal(t, uint32(5), owner)

	outcome, owner = p.claim(3, 2)
	assert.Equal(t, stolen, outcome)
	assert.Equal(t, uint32(5), owner)
}
