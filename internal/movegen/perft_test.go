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
package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kforge/zobrist/internal/position"
)

// Reference numbers from
// https://www.chessprogramming.org/Perft_Results

func TestPerftStartPosition(t *testing.T) {
	// depth, nodes, captures, en passants, castles, promotions, checks
	expected := [][7]uint64{
		{1, 20, 0, 0, 0, 0, 0},
		{2, 400, 0, 0, 0, 0, 0},
		{3, 8_902, 34, 0, 0, 0, 12},
		{4, 197_281, 1_576, 0, 0, 0, 469},
		{5, 4_865_609, 82_719, 258, 0, 0, 27_351},
	}
	maxDepth := 5
	if testing.Short() {
		maxDepth = 4
	}

	pf := NewPerft()
	for _, e := range expected {
		depth := int(e[0])
		if depth > maxDepth {
			break
		}
		pf.StartPerft(position.StartFen, depth, false)
		assert.Equal(t, e[1], pf.Nodes, "nodes at depth %d", depth)
		assert.Equal(t, e[2], pf.CaptureCounter, "captures at depth %d", depth)
		assert.Equal(t, e[3], pf.EnpassantCounter, "en passants at depth %d", depth)
		assert.Equal(t, e[4], pf.CastleCounter, "castles at depth %d", depth)
		assert.Equal(t, e[5], pf.PromotionCounter, "promotions at depth %d", depth)
		assert.Equal(t, e[6], pf.CheckCounter, "checks at depth %d", depth)
	}
}

// the sorted on demand iterator of the search must visit exactly
// the same tree
func TestPerftOnDemand(t *testing.T) {
	pf := NewPerft()
	pf.StartPerft(position.StartFen, 4, true)
	assert.EqualValues(t, 197_281, pf.Nodes)
	assert.EqualValues(t, 1_576, pf.CaptureCounter)
}

// "Kiwipete" exercises castling, en passant and promotions early
func TestPerftKiwipete(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	expected := []uint64{0, 48, 2_039, 97_862, 4_085_603}
	maxDepth := 4
	if testing.Short() {
		maxDepth = 3
	}
	pf := NewPerft()
	for depth := 1; depth <= maxDepth; depth++ {
		pf.StartPerft(kiwipete, depth, false)
		assert.Equal(t, expected[depth], pf.Nodes, "nodes at depth %d", depth)
	}
}

// a promotion heavy position
func TestPerftPromotions(t *testing.T) {
	const fen = "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
	expected := []uint64{0, 24, 496, 9_483, 182_838}
	pf := NewPerft()
	for depth := 1; depth <= 4; depth++ {
		pf.StartPerft(fen, depth, false)
		assert.Equal(t, expected[depth], pf.Nodes, "nodes at depth %d", depth)
	}
}
