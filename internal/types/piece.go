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

// PieceType is the kind of a piece regardless of its color.
type PieceType uint8

const (
	PtNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King

	// PtLength is used to size arrays indexed by PieceType
	PtLength
)

// Base worths of the piece types in centipawns. The king carries no
// material value, it can never be captured or traded.
var pieceTypeWorth = [PtLength]Value{0, 100, 320, 330, 500, 900, 0}

var pieceTypeChar = [PtLength]string{"-", "P", "N", "B", "R", "Q", "K"}

// IsValid reports whether pt names an actual piece kind.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// Worth returns the base material value of the piece type.
func (pt PieceType) Worth() Value {
	return pieceTypeWorth[pt]
}

// String returns the upper case letter of the piece type.
func (pt PieceType) String() string {
	if pt >= PtLength {
		return "-"
	}
	return pieceTypeChar[pt]
}

// Piece is a colored piece. The lower three bits hold the PieceType,
// bit 3 the color, so projections are simple masks.
type Piece uint8

//noinspection GoUnusedConst
const (
	PieceNone   Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8

	// PieceLength is used to size arrays indexed by Piece
	PieceLength Piece = 16
)

// MakePiece builds a piece from color and type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

// ColorOf returns the color of the piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the type of the piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// IsValid reports whether p is one of the twelve real pieces.
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// Worth returns the material value of the piece.
func (p Piece) Worth() Value {
	return p.TypeOf().Worth()
}

// Char returns the fen letter of the piece, upper case for white,
// lower case for black. Space for no piece.
func (p Piece) Char() string {
	if !p.IsValid() {
		return " "
	}
	c := pieceTypeChar[p.TypeOf()]
	if p.ColorOf() == Black {
		return string(c[0] + 'a' - 'A')
	}
	return c
}

// String is the fen letter of the piece.
func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar parses a fen piece letter. PieceNone when the
// letter names no piece.
func PieceFromChar(ch byte) Piece {
	color := White
	if ch >= 'a' && ch <= 'z' {
		color = Black
		ch -= 'a' - 'A'
	}
	for pt := Pawn; pt <= King; pt++ {
		if pieceTypeChar[pt][0] == ch {
			return MakePiece(color, pt)
		}
	}
	return PieceNone
}
