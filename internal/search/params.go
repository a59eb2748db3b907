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
package search

import (
	. "github.com/kforge/zobrist/internal/types"
)

// Static search tuning parameters that are too structural for the
// configuration file.

// aspiration window: the first window is centered on the previous
// iteration's value; every failed search widens it by the growth
// factor until it covers the full value range
const (
	aspirationWindow     = Value(40)
	aspirationGrowFactor = Value(4)
)

// futility pruning margins per remaining depth: a quiet move whose
// static outlook plus margin cannot reach alpha is skipped
var fpMargin = [7]Value{0, 100, 200, 300, 500, 900, 1200}

// reverse futility margins per remaining depth
var rfpMargin = [4]Value{0, 200, 400, 800}

// lmpMoveLimit returns after how many searched moves late move
// pruning may skip the remaining quiet moves at the given depth.
func lmpMoveLimit(depth int) int {
	if depth >= len(lmpLimits) {
		depth = len(lmpLimits) - 1
	}
	return lmpLimits[depth]
}

var lmpLimits = [16]int{0, 7, 8, 10, 12, 15, 18, 22, 26, 31, 36, 42, 48, 55, 62, 70}
