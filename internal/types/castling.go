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

// CastlingRights is a bit mask of the four castling rights.
type CastlingRights uint8

const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8
	CastlingWhite                   = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                     = CastlingWhite | CastlingBlack

	// CastlingRightsLength is used to size arrays indexed by CastlingRights
	CastlingRightsLength = 16
)

// Has reports whether all rights in r2 are held.
func (cr CastlingRights) Has(r2 CastlingRights) bool {
	return cr&r2 == r2
}

// Add sets the given rights.
func (cr *CastlingRights) Add(r2 CastlingRights) {
	*cr |= r2
}

// Remove clears the given rights.
func (cr *CastlingRights) Remove(r2 CastlingRights) {
	*cr &^= r2
}

// String returns the fen representation of the rights ("KQkq", "-"
// when no right is left).
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	s := ""
	if cr.Has(CastlingWhiteOO) {
		s += "K"
	}
	if cr.Has(CastlingWhiteOOO) {
		s += "Q"
	}
	if cr.Has(CastlingBlackOO) {
		s += "k"
	}
	if cr.Has(CastlingBlackOOO) {
		s += "q"
	}
	return s
}

// CastlingRevokedBy maps a square to the rights that are lost when a
// move touches it. Any move from or to a king or rook start square
// revokes the corresponding rights.
var CastlingRevokedBy = [SqLength]CastlingRights{
	SqA1: CastlingWhiteOOO,
	SqE1: CastlingWhite,
	SqH1: CastlingWhiteOO,
	SqA8: CastlingBlackOOO,
	SqE8: CastlingBlack,
	SqH8: CastlingBlackOO,
}
