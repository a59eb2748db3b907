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
	"strings"

	. "github.com/kforge/zobrist/internal/types"
)

// StartFen is the fen of the standard chess starting position.
const StartFen string = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// tri-state cache for "is the side to move in check"
const (
	checkUnknown int8 = iota
	checkNo
	checkYes
)

// undoInfo is everything DoMove cannot reconstruct from the move
// record itself and therefore has to remember for UndoMove.
type undoInfo struct {
	move          Move
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	key           Key
	checkState    int8
}

// Position is a chess position: a mailbox board and piece bitboards
// kept in lock step, plus the game state needed for legality, the
// fifty move rule, repetition detection and incremental evaluation
// terms. It is mutated in place by DoMove/UndoMove only.
type Position struct {
	board       [SqLength]Piece
	piecesBb    [ColorLength][PtLength]Bitboard
	occupied    [ColorLength]Bitboard
	occupiedAll Bitboard
	kingSquare  [ColorLength]Square

	sideToMove    Color
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	plyCount      int // half moves played since the start position of the game

	// incrementally maintained evaluation terms
	material        [ColorLength]Value
	materialNonPawn [ColorLength]Value
	psqMg           [ColorLength]Value
	psqEg           [ColorLength]Value

	key Key

	histCount  int
	history    [MaxMoves]undoInfo
	checkState int8
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// PieceOn returns the piece on the square, PieceNone when empty.
func (p *Position) PieceOn(sq Square) Piece {
	return p.board[sq]
}

// PiecesBb returns the bitboard of one piece kind of one color.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.piecesBb[c][pt]
}

// Occupied returns all squares occupied by the given color.
func (p *Position) Occupied(c Color) Bitboard {
	return p.occupied[c]
}

// OccupiedAll returns all occupied squares.
func (p *Position) OccupiedAll() Bitboard {
	return p.occupiedAll
}

// KingSquare returns the square of the color's king.
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castling
}

// EnPassantSquare returns the current en passant target square,
// SqNone when there is none.
func (p *Position) EnPassantSquare() Square {
	return p.epSquare
}

// HalfMoveClock returns the plies since the last pawn move or
// capture.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// MoveNumber returns the full move number, starting at 1 and
// incremented after each black move.
func (p *Position) MoveNumber() int {
	return p.plyCount/2 + 1
}

// ZobristKey returns the position's hash key.
func (p *Position) ZobristKey() Key {
	return p.key
}

// Material returns the material sum of the color.
func (p *Position) Material(c Color) Value {
	return p.material[c]
}

// MaterialNonPawn returns the non pawn material of the color. Used
// for the endgame taper and by null move safety.
func (p *Position) MaterialNonPawn(c Color) Value {
	return p.materialNonPawn[c]
}

// PsqMg returns the color's middlegame piece square sum.
func (p *Position) PsqMg(c Color) Value {
	return p.psqMg[c]
}

// PsqEg returns the color's endgame piece square sum.
func (p *Position) PsqEg(c Color) Value {
	return p.psqEg[c]
}

// LastMove returns the most recently made move, MoveNone at the
// start of the game.
func (p *Position) LastMove() Move {
	if p.histCount == 0 {
		return MoveNone
	}
	return p.history[p.histCount-1].move
}

// IsAttacked reports whether the square is attacked by any piece of
// the given color, using the current occupancy.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	bb := &p.piecesBb[by]
	// a pawn of color "by" attacks sq iff a pawn of the other color
	// on sq would attack the pawn's square
	if PawnAttacksBb(by.Flip(), sq)&bb[Pawn] != 0 {
		return true
	}
	if KnightAttacksBb(sq)&bb[Knight] != 0 {
		return true
	}
	if KingAttacksBb(sq)&bb[King] != 0 {
		return true
	}
	if RookAttacksBb(sq, p.occupiedAll)&(bb[Rook]|bb[Queen]) != 0 {
		return true
	}
	return BishopAttacksBb(sq, p.occupiedAll)&(bb[Bishop]|bb[Queen]) != 0
}

// AttacksTo returns all pieces of the given color attacking the
// square.
func (p *Position) AttacksTo(sq Square, by Color) Bitboard {
	bb := &p.piecesBb[by]
	return PawnAttacksBb(by.Flip(), sq)&bb[Pawn] |
		KnightAttacksBb(sq)&bb[Knight] |
		KingAttacksBb(sq)&bb[King] |
		RookAttacksBb(sq, p.occupiedAll)&(bb[Rook]|bb[Queen]) |
		BishopAttacksBb(sq, p.occupiedAll)&(bb[Bishop]|bb[Queen])
}

// HasCheck reports whether the side to move is in check. The answer
// is cached until the next board mutation.
func (p *Position) HasCheck() bool {
	if p.checkState == checkUnknown {
		if p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip()) {
			p.checkState = checkYes
		} else {
			p.checkState = checkNo
		}
	}
	return p.checkState == checkYes
}

// WasLegalMove reports whether the last made move left its mover's
// king out of check. Pseudo legal move generation relies on this
// test after DoMove.
func (p *Position) WasLegalMove() bool {
	mover := p.sideToMove.Flip()
	return !p.IsAttacked(p.kingSquare[mover], p.sideToMove)
}

// CheckRepetitions reports whether the current position occurred at
// least reps more times before. Only positions since the last
// irreversible move (pawn move, capture, castling rights change)
// can repeat, so the scan is bounded by the half move clock, and
// only every second ply has the same side to move.
func (p *Position) CheckRepetitions(reps int) bool {
	found := 0
	i := p.histCount - 2
	lowest := p.histCount - p.halfMoveClock
	if lowest < 0 {
		lowest = 0
	}
	for ; i >= lowest; i -= 2 {
		if p.history[i].key == p.key {
			found++
			if found >= reps {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial reports dead positions: king against
// king, king against king and one minor piece, and king against
// king and two knights (no forced mate exists).
func (p *Position) HasInsufficientMaterial() bool {
	if p.piecesBb[White][Pawn]|p.piecesBb[Black][Pawn] != 0 {
		return false
	}
	if p.piecesBb[White][Rook]|p.piecesBb[Black][Rook]|
		p.piecesBb[White][Queen]|p.piecesBb[Black][Queen] != 0 {
		return false
	}
	wMinor := (p.piecesBb[White][Knight] | p.piecesBb[White][Bishop]).PopCount()
	bMinor := (p.piecesBb[Black][Knight] | p.piecesBb[Black][Bishop]).PopCount()
	if wMinor+bMinor <= 1 {
		return true // bare kings or a single minor
	}
	// two knights of one color against a bare king
	if wMinor == 0 && bMinor == 2 && p.piecesBb[Black][Knight].PopCount() == 2 {
		return true
	}
	if bMinor == 0 && wMinor == 2 && p.piecesBb[White][Knight].PopCount() == 2 {
		return true
	}
	return false
}

// String returns the board diagram plus the fen of the position.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(p.StringBoard())
	sb.WriteString(p.StringFen())
	return sb.String()
}

// StringBoard returns an 8x8 diagram of the position.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		sb.WriteString("+---+---+---+---+---+---+---+---+\n")
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			sb.WriteString(p.board[SquareOf(f, r)].Char())
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
		if r == Rank1 {
			break
		}
	}
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	return sb.String()
}
