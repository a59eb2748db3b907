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
	"github.com/kforge/zobrist/internal/assert"
	. "github.com/kforge/zobrist/internal/types"
)

// DoMove applies the move to the position. The move must be pseudo
// legal for the current position; whether it leaves the own king in
// check is answered afterwards by WasLegalMove.
func (p *Position) DoMove(m Move) {
	us := p.sideToMove
	from := m.From()
	to := m.To()
	flag := m.Flag()

	if assert.DEBUG {
		assert.Assert(p.board[from] == m.Piece(), "DoMove: move piece %s not on %s", m.Piece().Char(), from.String())
		assert.Assert(m.Piece().ColorOf() == us, "DoMove: piece %s does not belong to side to move", m.Piece().Char())
	}

	// remember what the move record cannot restore
	frame := &p.history[p.histCount]
	frame.move = m
	frame.castling = p.castling
	frame.epSquare = p.epSquare
	frame.halfMoveClock = p.halfMoveClock
	frame.key = p.key
	frame.checkState = p.checkState
	p.histCount++

	// remove the captured piece first; for en passant it does not
	// stand on the target square
	if m.Captured() != PieceNone {
		capSq := to
		if flag == FlagEnPassant {
			capSq = to.To(us.Flip().Up())
		}
		p.removePiece(capSq)
	}

	// move the piece, promotions swap the pawn for the new piece
	if flag.IsPromotion() {
		p.removePiece(from)
		p.putPiece(MakePiece(us, flag.PromotionType()), to)
	} else {
		p.movePiece(from, to)
	}

	// castling also moves the rook
	switch flag {
	case FlagShortCastle:
		p.movePiece(to.To(East), to.To(West)) // h-file rook to f-file
	case FlagLongCastle:
		p.movePiece(to.To(West).To(West), to.To(East)) // a-file rook to d-file
	}

	// any move from or to a king or rook home square revokes the
	// matching rights
	if revoked := CastlingRevokedBy[from] | CastlingRevokedBy[to]; p.castling&revoked != 0 {
		p.key ^= zobristKeys.castling[p.castling]
		p.castling.Remove(revoked)
		p.key ^= zobristKeys.castling[p.castling]
	}

	// a double pawn push opens an en passant chance, everything
	// else closes it
	p.key ^= zobristKeys.epFile[epKeyIndex(p.epSquare)]
	if flag == FlagDoublePawnPush {
		p.epSquare = to.To(us.Flip().Up())
	} else {
		p.epSquare = SqNone
	}
	p.key ^= zobristKeys.epFile[epKeyIndex(p.epSquare)]

	// fifty move rule clock
	if m.Captured() != PieceNone || m.Piece().TypeOf() == Pawn {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	p.plyCount++
	p.sideToMove = us.Flip()
	p.key ^= zobristKeys.side
	p.checkState = checkUnknown
}

// UndoMove takes back the last made move, restoring every part of
// the position exactly.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.histCount > 0, "UndoMove: no move to undo")
	}
	p.histCount--
	frame := &p.history[p.histCount]
	m := frame.move

	p.plyCount--
	p.sideToMove = p.sideToMove.Flip()
	us := p.sideToMove

	from := m.From()
	to := m.To()
	flag := m.Flag()

	// take the piece back, promotions put the pawn back
	if flag.IsPromotion() {
		p.removePiece(to)
		p.putPiece(MakePiece(us, Pawn), from)
	} else {
		p.movePiece(to, from)
	}

	switch flag {
	case FlagShortCastle:
		p.movePiece(to.To(West), to.To(East))
	case FlagLongCastle:
		p.movePiece(to.To(East), to.To(West).To(West))
	}

	if m.Captured() != PieceNone {
		capSq := to
		if flag == FlagEnPassant {
			capSq = to.To(us.Flip().Up())
		}
		p.putPiece(m.Captured(), capSq)
	}

	// the saved frame restores the irreversible state including the
	// key, which makes the incremental updates above harmless
	p.castling = frame.castling
	p.epSquare = frame.epSquare
	p.halfMoveClock = frame.halfMoveClock
	p.key = frame.key
	p.checkState = frame.checkState
	// an emptied frame leaves the position as it was before the move
	*frame = undoInfo{}
}

// DoNullMove passes the turn without moving. Used by null move
// pruning.
func (p *Position) DoNullMove() {
	frame := &p.history[p.histCount]
	frame.move = MoveNone
	frame.castling = p.castling
	frame.epSquare = p.epSquare
	frame.halfMoveClock = p.halfMoveClock
	frame.key = p.key
	frame.checkState = p.checkState
	p.histCount++

	p.key ^= zobristKeys.epFile[epKeyIndex(p.epSquare)]
	p.epSquare = SqNone
	p.key ^= zobristKeys.epFile[epKeyIndex(p.epSquare)]

	p.plyCount++
	p.sideToMove = p.sideToMove.Flip()
	p.key ^= zobristKeys.side
	p.checkState = checkUnknown
}

// UndoNullMove takes back a null move.
func (p *Position) UndoNullMove() {
	p.histCount--
	frame := &p.history[p.histCount]
	p.plyCount--
	p.sideToMove = p.sideToMove.Flip()
	p.castling = frame.castling
	p.epSquare = frame.epSquare
	p.halfMoveClock = frame.halfMoveClock
	p.key = frame.key
	p.checkState = frame.checkState
	*frame = undoInfo{}
}

// putPiece places a piece on an empty square and updates bitboards,
// occupancy, hash key and the incremental evaluation terms.
func (p *Position) putPiece(pc Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "putPiece: %s is occupied", sq.String())
	}
	c := pc.ColorOf()
	pt := pc.TypeOf()

	p.board[sq] = pc
	p.piecesBb[c][pt].Set(sq)
	p.occupied[c].Set(sq)
	p.occupiedAll.Set(sq)
	if pt == King {
		p.kingSquare[c] = sq
	}

	p.key ^= zobristKeys.pieces[pc][sq]
	p.material[c] += pt.Worth()
	if pt != Pawn {
		p.materialNonPawn[c] += pt.Worth()
	}
	p.psqMg[c] += PsqtMg(pc, sq)
	p.psqEg[c] += PsqtEg(pc, sq)
}

// removePiece is the exact inverse of putPiece.
func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if assert.DEBUG {
		assert.Assert(pc != PieceNone, "removePiece: %s is empty", sq.String())
	}
	c := pc.ColorOf()
	pt := pc.TypeOf()

	p.board[sq] = PieceNone
	p.piecesBb[c][pt].Clear(sq)
	p.occupied[c].Clear(sq)
	p.occupiedAll.Clear(sq)

	p.key ^= zobristKeys.pieces[pc][sq]
	p.material[c] -= pt.Worth()
	if pt != Pawn {
		p.materialNonPawn[c] -= pt.Worth()
	}
	p.psqMg[c] -= PsqtMg(pc, sq)
	p.psqEg[c] -= PsqtEg(pc, sq)
	return pc
}

func (p *Position) movePiece(from, to Square) {
	p.putPiece(p.removePiece(from), to)
}
