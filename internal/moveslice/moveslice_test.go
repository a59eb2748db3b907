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
package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kforge/zobrist/internal/types"
)

func TestPushPop(t *testing.T) {
	ml := NewMoveSlice(4)
	m1 := MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush)
	m2 := MakeMove(SqG1, SqF3, WhiteKnight, PieceNone, FlagQuiet)
	ml.PushBack(m1)
	ml.PushBack(m2)
	assert.Equal(t, 2, ml.Len())
	assert.Equal(t, m1, ml.At(0))
	assert.Equal(t, m2, ml.PopBack())
	assert.Equal(t, 1, ml.Len())
	ml.Clear()
	assert.Equal(t, 0, ml.Len())
	assert.Equal(t, MoveNone, ml.PopBack())
}

func TestSortIsStableDescending(t *testing.T) {
	ml := NewMoveSlice(8)
	a := MakeMove(SqA2, SqA3, WhitePawn, PieceNone, FlagQuiet).WithScore(10)
	b := MakeMove(SqB2, SqB3, WhitePawn, PieceNone, FlagQuiet).WithScore(50)
	c := MakeMove(SqC2, SqC3, WhitePawn, PieceNone, FlagQuiet).WithScore(10)
	d := MakeMove(SqD2, SqD3, WhitePawn, PieceNone, FlagQuiet).WithScore(99)
	ml.PushBack(a)
	ml.PushBack(b)
	ml.PushBack(c)
	ml.PushBack(d)
	ml.Sort()
	assert.Equal(t, d, ml.At(0))
	assert.Equal(t, b, ml.At(1))
	// equal scores keep their generation order
	assert.Equal(t, a, ml.At(2))
	assert.Equal(t, c, ml.At(3))
}

func TestStringUci(t *testing.T) {
	ml := NewMoveSlice(2)
	ml.PushBack(MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush))
	ml.PushBack(MakeMove(SqE7, SqE8, WhitePawn, PieceNone, FlagPromoteQueen))
	assert.Equal(t, "e2e4 e7e8q", ml.StringUci())
}
