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
// Package evaluator holds the hand crafted static evaluation:
// material plus piece square tables, with the pawn and king tables
// tapered between a middlegame and an endgame weighting by the non
// pawn material still on the board.
package evaluator

import (
	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

// nonPawnMaterialStart is the non pawn material of both sides in
// the starting position; with all of it on the board the endgame
// weight is 0, with bare kings it is 1.
const nonPawnMaterialStart = 2 * (2*320 + 2*330 + 2*500 + 900)

// Evaluator computes a static evaluation of a position. It is
// stateless; the incremental material and piece square sums live in
// the position itself.
type Evaluator struct{}

// NewEvaluator creates an evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate scores the position in centipawns from the point of view
// of the side to move. Dead positions score as a draw.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	// the white point of view raw score
	material := p.Material(White) - p.Material(Black)
	mg := p.PsqMg(White) - p.PsqMg(Black)
	eg := p.PsqEg(White) - p.PsqEg(Black)

	// blend the tapered tables: the fewer pieces remain, the more
	// the endgame tables count
	weight := EndgameWeight(p)
	positional := Value(float32(mg)*(1.0-weight) + float32(eg)*weight)

	raw := material + positional
	if p.SideToMove() == Black {
		return -raw
	}
	return raw
}

// EndgameWeight returns how far into the endgame the position is,
// 0.0 with full material to 1.0 with bare kings.
func EndgameWeight(p *position.Position) float32 {
	nonPawn := int(p.MaterialNonPawn(White) + p.MaterialNonPawn(Black))
	if nonPawn >= nonPawnMaterialStart {
		return 0
	}
	return 1.0 - float32(nonPawn)/float32(nonPawnMaterialStart)
}
