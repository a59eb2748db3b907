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

import "fmt"

// Value is an evaluation in centipawns from the perspective of the
// side to move.
type Value int16

const (
	ValueDraw     Value = 0
	ValueInfinite Value = 15_000
	ValueMin            = -ValueInfinite
	ValueMax            = ValueInfinite

	// ValueNA marks a not yet computed value
	ValueNA Value = ValueMin - 1

	// ValueCheckmate is the score of delivering mate at the root.
	// Mates further down the tree score ValueCheckmate minus the ply
	// they occur at, so shorter mates are preferred.
	ValueCheckmate          Value = 10_000
	ValueCheckmateThreshold       = ValueCheckmate - MaxPly
)

// IsValid reports whether v holds a computed value.
func (v Value) IsValid() bool {
	return v != ValueNA
}

// IsCheckmateValue reports whether v encodes a forced mate.
func (v Value) IsCheckmateValue() bool {
	return v > ValueCheckmateThreshold || v < -ValueCheckmateThreshold
}

// String formats the value the way the uci protocol wants it:
// "cp <centipawns>" or "mate <moves>" (negative when getting mated).
func (v Value) String() string {
	switch {
	case !v.IsValid():
		return "N/A"
	case v > ValueCheckmateThreshold:
		return fmt.Sprintf("mate %d", (ValueCheckmate-v+1)/2)
	case v < -ValueCheckmateThreshold:
		return fmt.Sprintf("mate %d", -(ValueCheckmate+v+1)/2)
	default:
		return fmt.Sprintf("cp %d", v)
	}
}

// Bound classifies a stored search result: an exact value, an upper
// bound (the search failed low) or a lower bound (fail high).
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundUpper
	BoundLower
)

func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "exact"
	case BoundUpper:
		return "upper"
	case BoundLower:
		return "lower"
	}
	return "none"
}
