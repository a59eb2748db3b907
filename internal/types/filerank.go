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

// File is a board file, a-h.
type File uint8

// Rank is a board rank, 1-8.
type Rank uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileNone
)

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankNone
)

// IsValid reports whether f is a real file.
func (f File) IsValid() bool {
	return f < FileNone
}

// IsValid reports whether r is a real rank.
func (r Rank) IsValid() bool {
	return r < RankNone
}

// Bb returns the bitboard of all squares on the file.
func (f File) Bb() Bitboard {
	return fileBb[f]
}

// Bb returns the bitboard of all squares on the rank.
func (r Rank) Bb() Bitboard {
	return rankBb[r]
}

// String returns the file letter, or "-" for an invalid file.
func (f File) String() string {
	if !f.IsValid() {
		return "-"
	}
	return string('a' + rune(f))
}

// String returns the rank digit, or "-" for an invalid rank.
func (r Rank) String() string {
	if !r.IsValid() {
		return "-"
	}
	return string('1' + rune(r))
}
