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

// MoveFlag tags what kind of move a move record encodes. The zero
// flag is a plain quiet move so the all-zero move record doubles as
// the null move sentinel (no piece, from = to = 0).
type MoveFlag uint8

const (
	FlagQuiet MoveFlag = iota
	FlagDoublePawnPush
	FlagEnPassant
	FlagShortCastle
	FlagLongCastle
	FlagPromoteKnight
	FlagPromoteBishop
	FlagPromoteRook
	FlagPromoteQueen
)

// PromotionFlag returns the flag for a promotion to the given piece
// type.
func PromotionFlag(pt PieceType) MoveFlag {
	return FlagPromoteKnight + MoveFlag(pt-Knight)
}

// PromotionType returns the promoted piece type for a promotion
// flag, PtNone for every other flag.
func (f MoveFlag) PromotionType() PieceType {
	if f < FlagPromoteKnight || f > FlagPromoteQueen {
		return PtNone
	}
	return Knight + PieceType(f-FlagPromoteKnight)
}

// IsPromotion reports whether the flag is one of the four promotion
// flags.
func (f MoveFlag) IsPromotion() bool {
	return f >= FlagPromoteKnight && f <= FlagPromoteQueen
}

// Move is a packed move record plus a transient sort score.
//
// The record itself is 32 bits:
//
//	bits  0-5   from square
//	bits  6-11  to square
//	bits 12-15  moving piece
//	bits 16-19  captured piece (also set for en passant)
//	bits 20-23  flag
//
// Storing the captured piece in the record keeps unmake local - the
// board needs no extra memory of what stood on the target square.
// The upper half of the word carries the move ordering score so a
// move list can be sorted in place; the score is not part of the
// record and is masked off by Record before moves are compared or
// stored.
type Move uint64

// MoveNone is the null move.
const MoveNone Move = 0

const recordMask Move = 0x00FF_FFFF

// MakeMove packs a move record.
func MakeMove(from, to Square, piece, captured Piece, flag MoveFlag) Move {
	return Move(from)&0x3F |
		(Move(to)&0x3F)<<6 |
		Move(piece)<<12 |
		Move(captured)<<16 |
		Move(flag)<<20
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(m & 0x3F)
}

// To returns the target square.
func (m Move) To() Square {
	return Square((m >> 6) & 0x3F)
}

// Piece returns the moving piece.
func (m Move) Piece() Piece {
	return Piece((m >> 12) & 0xF)
}

// Captured returns the captured piece, PieceNone for non captures.
// For en passant this is the captured pawn even though it does not
// stand on the target square.
func (m Move) Captured() Piece {
	return Piece((m >> 16) & 0xF)
}

// Flag returns the move flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m >> 20) & 0xF)
}

// IsCapture reports whether the move captures a piece (en passant
// included).
func (m Move) IsCapture() bool {
	return m.Captured() != PieceNone
}

// PromotionType returns the promoted piece type, PtNone when the
// move is not a promotion.
func (m Move) PromotionType() PieceType {
	return m.Flag().PromotionType()
}

// Record strips the sort score and returns the bare move record.
// Two moves are the same move iff their records are equal.
func (m Move) Record() Move {
	return m & recordMask
}

// IsValid reports whether m holds an actual move.
func (m Move) IsValid() bool {
	return m.Record() != MoveNone
}

// Score returns the move ordering score carried by the move.
func (m Move) Score() Value {
	return Value(int16(uint16(m >> 32)))
}

// WithScore returns the move with its ordering score replaced.
func (m Move) WithScore(v Value) Move {
	return m.Record() | Move(uint16(v))<<32
}

// StringUci returns the move in uci coordinate notation, e.g.
// "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if !m.IsValid() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt := m.PromotionType(); pt != PtNone {
		// promotion letter is lower case in uci notation
		s += string(pieceTypeChar[pt][0] + 'a' - 'A')
	}
	return s
}

// String returns the uci notation without the ordering score, or
// "no move" for the null move; handy in logs and test failures.
func (m Move) String() string {
	if !m.IsValid() {
		return "no move"
	}
	return m.StringUci()
}
