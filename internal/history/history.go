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
// Package history keeps the quiet move statistics the move ordering
// feeds on: a butterfly style table of cutoff counts per moving
// piece and target square.
package history

import (
	. "github.com/kforge/zobrist/internal/types"
)

// History counts how often a quiet move caused a beta cutoff,
// weighted quadratically by the remaining depth so cutoffs close to
// the root count much more than cutoffs deep in the tree.
type History struct {
	score [PieceLength][SqLength]int64
}

// NewHistory creates an empty history table.
func NewHistory() *History {
	return &History{}
}

// Add credits a quiet cutoff of the piece moving to the square with
// the square of the remaining depth.
func (h *History) Add(piece Piece, to Square, depthLeft int) {
	h.score[piece][to] += int64(depthLeft) * int64(depthLeft)
}

// Get returns the accumulated score for the piece and target
// square.
func (h *History) Get(piece Piece, to Square) int64 {
	return h.score[piece][to]
}

// Clear forgets all statistics. Called at the start of every
// search so stale counts from earlier positions do not dominate.
func (h *History) Clear() {
	h.score = [PieceLength][SqLength]int64{}
}
