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

// Color is the side a piece belongs to, or the side to move.
type Color uint8

const (
	White Color = 0
	Black Color = 1

	// ColorLength is used to size arrays indexed by Color
	ColorLength = 2
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c < ColorLength
}

// Up is the forward direction of c's pawns.
func (c Color) Up() Direction {
	if c == White {
		return North
	}
	return South
}

// PromotionRankBb is the rank c's pawns promote on.
func (c Color) PromotionRankBb() Bitboard {
	if c == White {
		return rankBb[Rank8]
	}
	return rankBb[Rank1]
}

// String returns the fen letter of the color ("w" or "b").
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Name returns the full name of the color.
func (c Color) Name() string {
	if c == White {
		return "White"
	}
	return "Black"
}
