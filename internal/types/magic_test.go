//
// Zobrist - a bitboard chess engine in GO
//
// MIT License
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// the full validation of every blocker subset happens at init; here
// we only spot check a few positions against hand derived sets

func TestRookAttacks(t *testing.T) {
	// empty board: full rank and file minus the own square
	assert.Equal(t, 14, RookAttacksBb(SqE4, 0).PopCount())

	// blockers cut off the rays behind them
	occ := SqE6.Bb() | SqC4.Bb()
	attacks := RookAttacksBb(SqE4, occ)
	assert.True(t, attacks.Has(SqE5))
	assert.True(t, attacks.Has(SqE6)) // blocker itself is attacked
	assert.False(t, attacks.Has(SqE7))
	assert.True(t, attacks.Has(SqC4))
	assert.False(t, attacks.Has(SqB4))
	assert.True(t, attacks.Has(SqH4))
	assert.True(t, attacks.Has(SqE1))
}

func TestBishopAttacks(t *testing.T) {
	assert.Equal(t, 13, BishopAttacksBb(SqE4, 0).PopCount())
	occ := SqC6.Bb()
	attacks := BishopAttacksBb(SqE4, occ)
	assert.True(t, attacks.Has(SqD5))
	assert.True(t, attacks.Has(SqC6))
	assert.False(t, attacks.Has(SqB7))
	assert.True(t, attacks.Has(SqH1))
	assert.True(t, attacks.Has(SqA8) == false)
}

func TestQueenAttacks(t *testing.T) {
	assert.Equal(t, 27, QueenAttacksBb(SqE4, 0).PopCount())
	assert.Equal(t,
		RookAttacksBb(SqD5, SqD7.Bb())|BishopAttacksBb(SqD5, SqD7.Bb()),
		QueenAttacksBb(SqD5, SqD7.Bb()))
}
