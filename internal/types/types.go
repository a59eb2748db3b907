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

// Package types holds the primitive chess vocabulary every other
// package builds on: squares, pieces, moves, bitboards, evaluation
// values and the precomputed attack tables (including the magic
// bitboard tables for the sliding pieces).
package types

const (
	// SqLength is the number of squares on a chess board
	SqLength = 64

	// MaxPly is the deepest ply the search will ever reach
	MaxPly = 128

	// MaxMoves sizes the move lists and the game history, a fixed
	// array holding at most MaxMoves made moves; it does not wrap
	MaxMoves = 512

	// KB / MB / GB in bytes
	KB uint64 = 1 << 10
	MB uint64 = 1 << 20
	GB uint64 = 1 << 30
)

// Key is a 64 bit zobrist hash key of a chess position.
type Key uint64

var tablesReady = false

// init builds all lookup tables of the package. Order matters: the
// plain bitboard tables come first, the magic slider tables depend
// on them, the piece square tables are independent.
func init() {
	if tablesReady {
		return
	}
	initBitboards()
	initMagics()
	initPsqt()
	tablesReady = true
}
