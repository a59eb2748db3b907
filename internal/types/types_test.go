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

func TestSquares(t *testing.T) {
	assert.EqualValues(t, 0, SqA1)
	assert.EqualValues(t, 63, SqH8)
	assert.Equal(t, "e4", SqE4.String())
	assert.Equal(t, "-", SqNone.String())
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
	assert.Equal(t, SqA8, SqA1.Flip())
	assert.Equal(t, SqE4, SquareOf(FileE, Rank4))
	assert.Equal(t, SqNone, SquareOf(FileNone, Rank4))
	assert.Equal(t, SqE4, MakeSquare("e4"))
	assert.Equal(t, SqNone, MakeSquare("i9"))
	assert.Equal(t, SqNone, MakeSquare("e"))
}

func TestSquareSteps(t *testing.T) {
	assert.Equal(t, SqA2, SqA1.To(North))
	assert.Equal(t, SqB1, SqA1.To(East))
	assert.Equal(t, SqNone, SqA1.To(West))
	assert.Equal(t, SqNone, SqA1.To(South))
	assert.Equal(t, SqNone, SqH8.To(North))
	assert.Equal(t, SqNone, SqH8.To(East))
	assert.Equal(t, SqG7, SqH8.To(Southwest))
}

func TestPieces(t *testing.T) {
	assert.Equal(t, WhiteKnight, MakePiece(White, Knight))
	assert.Equal(t, BlackQueen, MakePiece(Black, Queen))
	assert.Equal(t, White, WhiteKnight.ColorOf())
	assert.Equal(t, Black, BlackQueen.ColorOf())
	assert.Equal(t, Knight, WhiteKnight.TypeOf())
	assert.Equal(t, "N", WhiteKnight.Char())
	assert.Equal(t, "q", BlackQueen.Char())
	assert.Equal(t, BlackRook, PieceFromChar('r'))
	assert.Equal(t, WhitePawn, PieceFromChar('P'))
	assert.Equal(t, PieceNone, PieceFromChar('x'))
	assert.EqualValues(t, 100, Pawn.Worth())
	assert.EqualValues(t, 900, Queen.Worth())
	assert.EqualValues(t, 0, King.Worth())
}

func TestCastlingRights(t *testing.T) {
	cr := CastlingNone
	cr.Add(CastlingWhiteOO | CastlingBlackOOO)
	assert.True(t, cr.Has(CastlingWhiteOO))
	assert.False(t, cr.Has(CastlingWhiteOOO))
	assert.Equal(t, "Kq", cr.String())
	cr.Remove(CastlingWhiteOO)
	assert.Equal(t, "q", cr.String())
	assert.Equal(t, "-", CastlingNone.String())
	assert.Equal(t, CastlingWhite, CastlingRevokedBy[SqE1])
	assert.Equal(t, CastlingBlackOO, CastlingRevokedBy[SqH8])
	assert.Equal(t, CastlingNone, CastlingRevokedBy[SqD4])
}

func TestMovePacking(t *testing.T) {
	m := MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, WhitePawn, m.Piece())
	assert.Equal(t, PieceNone, m.Captured())
	assert.Equal(t, FlagDoublePawnPush, m.Flag())
	assert.False(t, m.IsCapture())
	assert.Equal(t, "e2e4", m.StringUci())

	capture := MakeMove(SqD4, SqE5, WhitePawn, BlackPawn, FlagQuiet)
	assert.True(t, capture.IsCapture())
	assert.Equal(t, BlackPawn, capture.Captured())

	promo := MakeMove(SqA7, SqA8, WhitePawn, PieceNone, FlagPromoteQueen)
	assert.Equal(t, Queen, promo.PromotionType())
	assert.Equal(t, "a7a8q", promo.StringUci())

	// the sort score must not change the record
	scored := m.WithScore(Value(-1234))
	assert.Equal(t, Value(-1234), scored.Score())
	assert.Equal(t, m.Record(), scored.Record())
	assert.Equal(t, m, scored.Record())

	assert.False(t, MoveNone.IsValid())
	assert.True(t, m.IsValid())
}

func TestValueStrings(t *testing.T) {
	assert.Equal(t, "cp 15", Value(15).String())
	assert.Equal(t, "cp -200", Value(-200).String())
	assert.Equal(t, "mate 1", (ValueCheckmate - 1).String())
	assert.Equal(t, "mate 2", (ValueCheckmate - 3).String())
	assert.Equal(t, "mate -1", (-ValueCheckmate + 2).String())
	assert.True(t, (ValueCheckmate - 5).IsCheckmateValue())
	assert.False(t, Value(500).IsCheckmateValue())
	assert.False(t, ValueNA.IsValid())
}
