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
	"github.com/kforge/zobrist/internal/moveslice"
	. "github.com/kforge/zobrist/internal/types"
)

// Statistics collects counters about one search run. None of them
// influence the search result; they feed logs and uci info lines.
type Statistics struct {
	CurrentIterationDepth   int
	CurrentSearchDepth      int
	CurrentExtraSearchDepth int

	CurrentVariation         moveslice.MoveSlice
	CurrentRootMoveIndex     int
	CurrentRootMove          Move
	CurrentBestRootMove      Move
	CurrentBestRootMoveValue Value

	BetaCuts    uint64
	BetaCuts1st uint64

	AspirationResearches uint64
	RootPvsResearches    uint64
	PvsResearches        uint64

	Mdp           uint64
	RazorPrunings uint64
	RfpPrunings   uint64
	NullMoveCuts  uint64
	FpPrunings    uint64
	LmpCuts       uint64
	LmrReductions uint64
	LmrResearches uint64
	QFpPrunings   uint64

	CheckExtension uint64
	PawnExtension  uint64
	CheckInQS      uint64
	StandpatCuts   uint64

	TTHit       uint64
	TTMiss      uint64
	TTCuts      uint64
	TTMoveUsed  uint64
	IIDmoves    uint64
	IIDsearches uint64

	Evaluations uint64
	Checkmates  uint64
	Stalemates  uint64
	DrawScores  uint64
}

// String dumps all counters.
func (s *Statistics) String() string {
	return out.Sprintf("%+v", *s)
}
