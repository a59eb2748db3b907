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
	"fmt"
	"strings"
	"time"

	"github.com/kforge/zobrist/internal/moveslice"
)

// Limits bundles every way a host can restrict a search: by time
// control, fixed move time, depth, node count, a mate announcement
// or a set of root moves to consider.
type Limits struct {
	// modes without any time control
	Infinite bool
	Ponder   bool
	Mate     int

	// hard limits
	Depth int
	Nodes uint64
	Moves moveslice.MoveSlice

	// time control
	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration

	MovesToGo int
}

// NewSearchLimits creates empty search limits.
func NewSearchLimits() *Limits {
	return &Limits{}
}

// String lists the set limits for logging.
func (sl *Limits) String() string {
	var sb strings.Builder
	sb.WriteString("limits:")
	if sl.Infinite {
		sb.WriteString(" infinite")
	}
	if sl.Ponder {
		sb.WriteString(" ponder")
	}
	if sl.Mate > 0 {
		sb.WriteString(fmt.Sprintf(" mate %d", sl.Mate))
	}
	if sl.Depth > 0 {
		sb.WriteString(fmt.Sprintf(" depth %d", sl.Depth))
	}
	if sl.Nodes > 0 {
		sb.WriteString(fmt.Sprintf(" nodes %d", sl.Nodes))
	}
	if sl.TimeControl {
		sb.WriteString(fmt.Sprintf(" wtime %s btime %s winc %s binc %s movestogo %d",
			sl.WhiteTime, sl.BlackTime, sl.WhiteInc, sl.BlackInc, sl.MovesToGo))
	}
	if sl.MoveTime > 0 {
		sb.WriteString(" movetime ")
		sb.WriteString(sl.MoveTime.String())
	}
	if sl.Moves.Len() > 0 {
		sb.WriteString(" searchmoves ")
		sb.WriteString(sl.Moves.StringUci())
	}
	return sb.String()
}
