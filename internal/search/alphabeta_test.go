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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kforge/zobrist/internal/config"
	"github.com/kforge/zobrist/internal/moveslice"
	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

func TestSavePV(t *testing.T) {
	src := moveslice.NewMoveSlice(8)
	dest := moveslice.NewMoveSlice(8)
	m1 := MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush)
	m2 := MakeMove(SqE7, SqE5, BlackPawn, PieceNone, FlagDoublePawnPush)
	m3 := MakeMove(SqG1, SqF3, WhiteKnight, PieceNone, FlagQuiet)
	src.PushBack(m2)
	src.PushBack(m3)

	savePV(m1, src, dest)

	assert.Equal(t, 3, dest.Len())
	assert.Equal(t, m1, dest.At(0))
	assert.Equal(t, m2, dest.At(1))
	assert.Equal(t, m3, dest.At(2))
}

// The search must find deeper mates through quiescence and
// extensions within a small fixed depth.
func TestMateSearch(t *testing.T) {
	config.Settings.Search.UseBook = false
	s := NewSearch()
	p := position.NewPosition("8/8/8/8/8/3K4/R7/5k2 w - - 0 1")
	sl := NewSearchLimits()
	sl.Depth = 8
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.True(t, result.BestValue.IsCheckmateValue())
	assert.Greater(t, int(result.BestValue), 0)
}

// The aspiration search must converge to the same value as a full
// window search.
func TestAspirationMatchesFullWindow(t *testing.T) {
	config.Settings.Search.UseBook = false
	p := position.NewPosition("r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 3")

	config.Settings.Search.UseAspiration = false
	s1 := NewSearch()
	sl := NewSearchLimits()
	sl.Depth = 5
	s1.StartSearch(*p, *sl)
	s1.WaitWhileSearching()

	config.Settings.Search.UseAspiration = true
	s2 := NewSearch()
	s2.StartSearch(*p, *sl)
	s2.WaitWhileSearching()

	assert.Equal(t, s1.LastSearchResult().BestValue, s2.LastSearchResult().BestValue)
}

// Searching with a node limit must stop at the limit.
func TestNodeLimit(t *testing.T) {
	config.Settings.Search.UseBook = false
	s := NewSearch()
	sl := NewSearchLimits()
	sl.Nodes = 10_000
	sl.TimeControl = true
	sl.MoveTime = 10 * time.Second
	s.StartSearch(*position.NewPosition(), *sl)
	s.WaitWhileSearching()
	// generous overshoot margin: the limit is checked on entry to every node
	assert.Less(t, s.NodesVisited(), uint64(20_000))
}
