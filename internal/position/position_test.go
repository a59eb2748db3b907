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
package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kforge/zobrist/internal/types"
)

func TestStartPosition(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, StartFen, p.StringFen())
	assert.Equal(t, White, p.SideToMove())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, SqE1, p.KingSquare(White))
	assert.Equal(t, SqE8, p.KingSquare(Black))
	assert.EqualValues(t, 1, p.MoveNumber())
	assert.Equal(t, p.Material(White), p.Material(Black))
	assert.Equal(t, 32, p.OccupiedAll().PopCount())
}

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq d6 0 2",
		"8/8/8/8/8/3K4/R7/5k2 b - - 12 34",
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		assert.NoError(t, err)
		assert.Equal(t, fen, p.StringFen())
	}
}

func TestFenErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",          // missing fields
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",      // 7 ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", // bad digit
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XX - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq zz 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1", // no kings
	}
	for _, fen := range bad {
		_, err := NewPositionFen(fen)
		assert.Error(t, err, "fen should be rejected: %q", fen)
	}
}

func TestDoUndoIdentity(t *testing.T) {
	p := NewPosition()
	before := *p

	moves := []Move{
		MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush),
		MakeMove(SqD7, SqD5, BlackPawn, PieceNone, FlagDoublePawnPush),
		MakeMove(SqE4, SqD5, WhitePawn, BlackPawn, FlagQuiet),
		MakeMove(SqD8, SqD5, BlackQueen, WhitePawn, FlagQuiet),
		MakeMove(SqB1, SqC3, WhiteKnight, PieceNone, FlagQuiet),
	}
	for _, m := range moves {
		p.DoMove(m)
	}
	for range moves {
		p.UndoMove()
	}

	// the whole state must be bit for bit identical
	assert.Equal(t, before, *p)
	assert.Equal(t, StartFen, p.StringFen())
}

func TestDoUndoSpecialMoves(t *testing.T) {
	// castling both ways
	p := NewPosition("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	before := *p
	p.DoMove(MakeMove(SqE1, SqG1, WhiteKing, PieceNone, FlagShortCastle))
	assert.Equal(t, WhiteKing, p.PieceOn(SqG1))
	assert.Equal(t, WhiteRook, p.PieceOn(SqF1))
	assert.Equal(t, PieceNone, p.PieceOn(SqH1))
	assert.False(t, p.CastlingRights().Has(CastlingWhiteOO))
	p.UndoMove()
	assert.Equal(t, before, *p)

	p.DoMove(MakeMove(SqE1, SqC1, WhiteKing, PieceNone, FlagLongCastle))
	assert.Equal(t, WhiteKing, p.PieceOn(SqC1))
	assert.Equal(t, WhiteRook, p.PieceOn(SqD1))
	p.UndoMove()
	assert.Equal(t, before, *p)

	// en passant capture removes the pawn next to the target square
	p = NewPosition("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	before = *p
	p.DoMove(MakeMove(SqE5, SqF6, WhitePawn, BlackPawn, FlagEnPassant))
	assert.Equal(t, WhitePawn, p.PieceOn(SqF6))
	assert.Equal(t, PieceNone, p.PieceOn(SqF5))
	p.UndoMove()
	assert.Equal(t, before, *p)

	// promotion swaps the pawn for the piece and back
	p = NewPosition("6k1/P7/8/8/8/8/8/3K4 w - - 0 1")
	before = *p
	p.DoMove(MakeMove(SqA7, SqA8, WhitePawn, PieceNone, FlagPromoteQueen))
	assert.Equal(t, WhiteQueen, p.PieceOn(SqA8))
	assert.Equal(t, 0, p.PiecesBb(White, Pawn).PopCount())
	p.UndoMove()
	assert.Equal(t, before, *p)
}

// a double pawn push must change the key by exactly the piece
// square keys, the en passant file keys and the side to move key
func TestZobristEnPassantDelta(t *testing.T) {
	p, _ := NewPositionFen("rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq d6 0 2")
	preKey := p.ZobristKey()

	p.DoMove(MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush))

	assert.Contains(t, p.StringFen(), " e3 ")
	expected := preKey ^
		zobristKeys.pieces[WhitePawn][SqE2] ^
		zobristKeys.pieces[WhitePawn][SqE4] ^
		zobristKeys.epFile[int(FileD)+1] ^
		zobristKeys.epFile[int(FileE)+1] ^
		zobristKeys.side
	assert.Equal(t, expected, p.ZobristKey())
}

func TestRepetitions(t *testing.T) {
	p := NewPosition()
	shuffle := []Move{
		MakeMove(SqG1, SqF3, WhiteKnight, PieceNone, FlagQuiet),
		MakeMove(SqG8, SqF6, BlackKnight, PieceNone, FlagQuiet),
		MakeMove(SqF3, SqG1, WhiteKnight, PieceNone, FlagQuiet),
		MakeMove(SqF6, SqG8, BlackKnight, PieceNone, FlagQuiet),
	}
	for _, m := range shuffle {
		p.DoMove(m)
	}
	assert.False(t, p.CheckRepetitions(2))
	for _, m := range shuffle {
		p.DoMove(m)
	}
	// start position now occurred three times
	assert.True(t, p.CheckRepetitions(2))
}

func TestInsufficientMaterial(t *testing.T) {
	dead := []string{
		"8/8/8/8/8/8/4k3/4K3 w - - 0 1",      // K vs K
		"8/8/8/8/8/2B5/4k3/4K3 w - - 0 1",    // K+B vs K
		"8/8/8/8/8/2N5/4k3/4K3 b - - 0 1",    // K+N vs K
		"8/8/8/8/8/1N2N3/4k3/4K3 b - - 0 1",  // K+NN vs K
	}
	for _, fen := range dead {
		p := NewPosition(fen)
		assert.True(t, p.HasInsufficientMaterial(), fen)
	}
	alive := []string{
		StartFen,
		"8/5p2/8/8/8/8/4k3/4K3 w - - 0 1",   // a pawn can promote
		"8/8/8/8/8/1R6/4k3/4K3 b - - 0 1",   // rook mates
		"8/8/8/8/8/1N2B3/4k3/4K3 b - - 0 1", // knight and bishop mate
	}
	for _, fen := range alive {
		p := NewPosition(fen)
		assert.False(t, p.HasInsufficientMaterial(), fen)
	}
}

func TestIsAttacked(t *testing.T) {
	p := NewPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.True(t, p.IsAttacked(SqF7, White))   // knight e5
	assert.True(t, p.IsAttacked(SqE4, Black))   // knight f6
	assert.True(t, p.IsAttacked(SqG2, Black))   // pawn h3
	assert.True(t, p.IsAttacked(SqD5, Black))   // pawn e6 and knight b6
	assert.False(t, p.IsAttacked(SqA5, White))  // nothing white reaches a5
}

func TestNullMove(t *testing.T) {
	p := NewPosition("rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq d6 0 2")
	before := *p
	p.DoNullMove()
	assert.Equal(t, Black, p.SideToMove())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.NotEqual(t, before.ZobristKey(), p.ZobristKey())
	p.UndoNullMove()
	assert.Equal(t, before, *p)
}
