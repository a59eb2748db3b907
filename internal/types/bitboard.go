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

import "math/bits"

// Bitboard is a set of squares in a single 64 bit word. Bit i is
// square i (a1 = 0, h8 = 63).
type Bitboard uint64

// File masks used when shifting bitboards sideways so pieces do not
// wrap around the board edge.
var (
	notFileABb Bitboard = 0xFEFEFEFEFEFEFEFE
	notFileHBb Bitboard = 0x7F7F7F7F7F7F7F7F
)

var (
	sqBb   [SqLength]Bitboard
	fileBb [8]Bitboard
	rankBb [8]Bitboard

	// squaresToEdge[sq][d] is the number of steps from sq to the
	// board edge in direction Directions[d]
	squaresToEdge [SqLength][8]uint8

	// between[a][b] is the set of squares strictly between a and b
	// when they share a rank, file or diagonal, empty otherwise
	between [SqLength][SqLength]Bitboard

	pawnAttacks   [ColorLength][SqLength]Bitboard
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
)

// Bb returns the bitboard with only this square set.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// Has reports whether the square is in the set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// Set adds the square to the set.
func (b *Bitboard) Set(sq Square) {
	*b |= sqBb[sq]
}

// Clear removes the square from the set.
func (b *Bitboard) Clear(sq Square) {
	*b &^= sqBb[sq]
}

// PopCount returns the number of squares in the set.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the lowest square of the set, SqNone for the empty
// set.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLsb removes and returns the lowest square of the set.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		*b &= *b - 1
	}
	return sq
}

// Shift moves every square of the set one step in the given
// direction. Squares that would leave the board fall off, nothing
// wraps around the edges.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & notFileHBb) << 1
	case West:
		return (b & notFileABb) >> 1
	case Northeast:
		return (b & notFileHBb) << 9
	case Northwest:
		return (b & notFileABb) << 7
	case Southeast:
		return (b & notFileHBb) >> 7
	case Southwest:
		return (b & notFileABb) >> 9
	}
	return 0
}

// PawnAttacksBb returns the squares a pawn of the given color on sq
// attacks.
func PawnAttacksBb(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// KnightAttacksBb returns the squares a knight on sq attacks.
func KnightAttacksBb(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacksBb returns the squares a king on sq attacks.
func KingAttacksBb(sq Square) Bitboard {
	return kingAttacks[sq]
}

// Between returns the squares strictly between a and b when they
// share a rank, file or diagonal; the empty set otherwise. Used for
// castling path emptiness.
func Between(a, b Square) Bitboard {
	return between[a][b]
}

// String renders the set as a 64 character bit string, a8 first.
func (b Bitboard) String() string {
	buf := make([]byte, 0, 64)
	for r := Rank8; r.IsValid(); r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				buf = append(buf, '1')
			} else {
				buf = append(buf, '0')
			}
		}
		if r == Rank1 {
			break
		}
	}
	return string(buf)
}

// StringBoard renders the set as an 8x8 diagram for debugging.
func (b Bitboard) StringBoard() string {
	buf := make([]byte, 0, 9*17)
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				buf = append(buf, 'X', ' ')
			} else {
				buf = append(buf, '.', ' ')
			}
		}
		buf = append(buf, '\n')
		if r == Rank1 {
			break
		}
	}
	return string(buf)
}

// initBitboards fills the plain lookup tables. Leaper attacks are
// built by shifting a single square bitboard into every attack
// direction, with the edge masks keeping steps from wrapping.
func initBitboards() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = 1 << sq
	}
	for f := FileA; f <= FileH; f++ {
		fileBb[f] = 0x0101010101010101 << f
	}
	for r := Rank1; r <= Rank8; r++ {
		rankBb[r] = 0xFF << (8 * r)
	}

	// steps to the edge per direction, in the order of Directions
	for sq := SqA1; sq < SqNone; sq++ {
		north := uint8(Rank8 - sq.RankOf())
		south := uint8(sq.RankOf())
		east := uint8(FileH - sq.FileOf())
		west := uint8(sq.FileOf())
		squaresToEdge[sq] = [8]uint8{
			north, east, south, west,
			minU8(north, east), minU8(south, east), minU8(south, west), minU8(north, west),
		}
	}

	for sq := SqA1; sq < SqNone; sq++ {
		b := sqBb[sq]

		pawnAttacks[White][sq] = b.Shift(Northeast) | b.Shift(Northwest)
		pawnAttacks[Black][sq] = b.Shift(Southeast) | b.Shift(Southwest)

		knightAttacks[sq] = (b&notFileHBb)<<17 | (b&notFileABb)<<15 |
			(b&notFileHBb&(notFileHBb>>1))<<10 | (b&notFileABb&(notFileABb<<1))<<6 |
			(b&notFileABb)>>17 | (b&notFileHBb)>>15 |
			(b&notFileABb&(notFileABb<<1))>>10 | (b&notFileHBb&(notFileHBb>>1))>>6

		for _, d := range Directions {
			kingAttacks[sq] |= b.Shift(d)
		}
	}

	// squares between two squares on a shared line
	for a := SqA1; a < SqNone; a++ {
		for i, d := range Directions {
			path := Bitboard(0)
			sq := a
			for n := uint8(0); n < squaresToEdge[a][i]; n++ {
				sq = Square(int8(sq) + int8(d))
				between[a][sq] = path
				path |= sqBb[sq]
			}
		}
	}
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}
