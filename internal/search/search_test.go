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
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/kforge/zobrist/internal/config"
	"github.com/kforge/zobrist/internal/logging"
	"github.com/kforge/zobrist/internal/movegen"
	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

var logTest *logging2.Logger

// make tests run in the project root so relative paths work
func init() {
	_, filename, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Join(path.Dir(filename), "../..")); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	os.Exit(m.Run())
}

func TestTimeToThink(t *testing.T) {
	s := NewSearch()

	// per move time minus the safety margin
	sl := &Limits{TimeControl: true, MoveTime: 5 * time.Second}
	assert.EqualValues(t, 4980, s.timeToThink(position.NewPosition(), sl).Milliseconds())

	// opening: 2.5% of remaining time
	sl = &Limits{
		TimeControl: true,
		WhiteTime:   60 * time.Second, BlackTime: 60 * time.Second,
		WhiteInc: 2 * time.Second, BlackInc: 2 * time.Second,
	}
	assert.EqualValues(t, 1550, s.timeToThink(position.NewPosition(), sl).Milliseconds())

	// after the opening: 7%
	later := position.NewPosition("4k3/8/8/8/8/8/8/4K3 w - - 0 20")
	assert.EqualValues(t, 4340, s.timeToThink(later, sl).Milliseconds())

	// clamped at half a second and twenty seconds
	sl = &Limits{TimeControl: true, WhiteTime: 5 * time.Second, BlackTime: 5 * time.Second}
	assert.EqualValues(t, 500, s.timeToThink(later, sl).Milliseconds())
	sl = &Limits{TimeControl: true, WhiteTime: 600 * time.Second, BlackTime: 600 * time.Second}
	assert.EqualValues(t, 20_000, s.timeToThink(later, sl).Milliseconds())
}

func TestStopAndWait(t *testing.T) {
	s := NewSearch()
	config.Settings.Search.UseBook = false
	sl := NewSearchLimits()
	sl.Infinite = true

	s.StartSearch(*position.NewPosition(), *sl)
	assert.True(t, s.IsSearching())
	go func() {
		time.Sleep(500 * time.Millisecond)
		s.StopSearch()
	}()
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())
	assert.True(t, s.HasResult())
	assert.NotEqual(t, MoveNone, s.LastSearchResult().BestMove)
}

func TestMatePositionAtRoot(t *testing.T) {
	s := NewSearch()
	// black is already mated
	p := position.NewPosition("8/8/8/8/8/5K2/8/R4k2 b - - 0 1")
	s.StartSearch(*p, *NewSearchLimits())
	s.WaitWhileSearching()
	assert.EqualValues(t, -ValueCheckmate, s.LastSearchResult().BestValue)
}

func TestStalematePositionAtRoot(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition("6R1/8/8/8/8/5K2/R7/7k b - - 0 1")
	s.StartSearch(*p, *NewSearchLimits())
	s.WaitWhileSearching()
	assert.Equal(t, ValueDraw, s.LastSearchResult().BestValue)
}

// A mate in one must be found at depth 1 with the exact mate value.
func TestMateIn1AtDepth1(t *testing.T) {
	config.Settings.Search.UseBook = false
	s := NewSearch()
	p := position.NewPosition("7k/8/7K/8/8/8/8/R7 w - - 0 1")
	sl := NewSearchLimits()
	sl.Depth = 1
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	logTest.Debug(result.String())
	assert.Equal(t, ValueCheckmate-1, result.BestValue)
	assert.Equal(t, "a1a8", result.BestMove.StringUci())
}

func TestMateIn2(t *testing.T) {
	config.Settings.Search.UseBook = false
	s := NewSearch()
	p := position.NewPosition("k7/8/2K5/8/8/8/8/7R w - - 0 1")
	sl := NewSearchLimits()
	sl.Depth = 5
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	logTest.Debug(result.String())
	assert.Equal(t, ValueCheckmate-3, result.BestValue)
	assert.Equal(t, "c6b6", result.BestMove.StringUci())
}

// King and rook against a bare king with the castling right still
// available: the right must be handled and the score must show the
// extra rook.
func TestRookEndgameWithCastlingRight(t *testing.T) {
	config.Settings.Search.UseBook = false
	s := NewSearch()
	p := position.NewPosition("8/8/8/8/8/8/6k1/4K2R w K - 0 1")
	sl := NewSearchLimits()
	sl.Depth = 5
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	logTest.Debug(result.String())
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.Greater(t, int(result.BestValue), 300)
}

// After shuffling the knights the start position occurred three
// times; the searcher must score this as a draw regardless of
// material.
func TestRepetitionScoredAsDraw(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	mg := movegen.NewMoveGen()
	for _, uci := range []string{
		"g1f3", "g8f6", "f3g1", "f6g8",
		"g1f3", "g8f6", "f3g1", "f6g8",
	} {
		m := mg.GetMoveFromUci(p, uci)
		assert.NotEqual(t, MoveNone, m)
		p.DoMove(m)
	}
	assert.True(t, s.checkDraw(p, 2))
}

// Even with a very small budget the search commits the first
// finished iteration.
func TestShortTimeBudget(t *testing.T) {
	config.Settings.Search.UseBook = false
	s := NewSearch()
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = 500 * time.Millisecond
	s.StartSearch(*position.NewPosition(), *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	logTest.Debug(result.String())
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestBookMoveIsUsed(t *testing.T) {
	config.Settings.Search.UseBook = true
	s := NewSearch()
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.WhiteTime = 60 * time.Second
	sl.BlackTime = 60 * time.Second
	s.StartSearch(*position.NewPosition(), *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.True(t, result.BookMove)
	assert.NotEqual(t, MoveNone, result.BestMove)
	config.Settings.Search.UseBook = false
}
