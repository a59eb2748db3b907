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
package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

func TestStartPositionIsBalanced(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition()
	white := e.Evaluate(p)
	p.DoNullMove()
	black := e.Evaluate(p)
	// symmetric position: both sides see the same score negated
	assert.Equal(t, white, -black)
}

func TestMaterialDominates(t *testing.T) {
	e := NewEvaluator()
	// white is a queen up
	p := position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	assert.Greater(t, int(e.Evaluate(p)), 700)
	// same position from black's point of view
	p = position.NewPosition("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	assert.Less(t, int(e.Evaluate(p)), -700)
}

func TestInsufficientMaterialIsDraw(t *testing.T) {
	e := NewEvaluator()
	p := position.NewPosition("8/8/8/8/8/2B5/4k3/4K3 w - - 0 1")
	assert.Equal(t, ValueDraw, e.Evaluate(p))
}

func TestEndgameWeight(t *testing.T) {
	assert.EqualValues(t, 0, EndgameWeight(position.NewPosition()))
	bare := position.NewPosition("8/8/8/8/8/8/4k3/4K3 w - - 0 1")
	assert.EqualValues(t, 1, EndgameWeight(bare))
}
