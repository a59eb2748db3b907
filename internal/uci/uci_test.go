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
package uci

import (
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kforge/zobrist/internal/config"
	. "github.com/kforge/zobrist/internal/types"
)

// make tests run in the project root so relative paths work
func init() {
	_, filename, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Join(path.Dir(filename), "../..")); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestUciCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("uci")
	assert.Contains(t, response, "id name Zobrist")
	assert.Contains(t, response, "option name Hash")
	assert.Contains(t, response, "uciok")
}

func TestIsReady(t *testing.T) {
	u := NewUciHandler()
	assert.Contains(t, u.Command("isready"), "readyok")
}

func TestSetOption(t *testing.T) {
	u := NewUciHandler()
	u.Command("setoption name Razor Margin value 531")
	assert.Equal(t, 531, config.Settings.Search.RazorMargin)
	u.Command("setoption name Razor Margin value 900")
	assert.Equal(t, 900, config.Settings.Search.RazorMargin)

	response := u.Command("setoption name No Such Option value 1")
	assert.Contains(t, response, "unknown option")
}

func TestPositionCommand(t *testing.T) {
	u := NewUciHandler()

	u.Command("position startpos moves e2e4 e7e5")
	assert.Equal(t, "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		u.myPosition.StringFen())

	u.Command("position fen 8/8/8/8/8/3K4/R7/5k2 w - - 0 1")
	assert.Equal(t, "8/8/8/8/8/3K4/R7/5k2 w - - 0 1", u.myPosition.StringFen())

	// errors leave the previous position in place
	response := u.Command("position fen not/a/fen w - - 0 1")
	assert.Contains(t, response, "invalid fen")
	response = u.Command("position startpos moves e2e5")
	assert.Contains(t, response, "invalid move")
}

func TestGoAndStop(t *testing.T) {
	u := NewUciHandler()
	u.Command("setoption name OwnBook value false")
	u.Command("position startpos")
	u.Command("go movetime 30000")
	assert.True(t, u.mySearch.IsSearching())
	time.Sleep(300 * time.Millisecond)
	u.Command("stop")
	u.mySearch.WaitWhileSearching()
	assert.False(t, u.mySearch.IsSearching())
	assert.NotEqual(t, MoveNone, u.mySearch.LastSearchResult().BestMove)
}

func TestFullSearchProcess(t *testing.T) {
	u := NewUciHandler()
	u.Command("setoption name OwnBook value false")
	u.Command("position startpos moves e2e4 e7e5")
	u.Command("go movetime 1000")
	u.mySearch.WaitWhileSearching()
	result := u.mySearch.LastSearchResult()
	assert.False(t, result.BookMove)
	assert.NotEqual(t, MoveNone, result.BestMove)
}

func TestBookMoveViaUci(t *testing.T) {
	u := NewUciHandler()
	u.Command("setoption name OwnBook value true")
	u.Command("position startpos moves e2e4 e7e5")
	u.Command("go wtime 60000 btime 60000")
	u.mySearch.WaitWhileSearching()
	assert.True(t, u.mySearch.LastSearchResult().BookMove)
	u.Command("setoption name OwnBook value false")
}

func TestInvalidGoCommand(t *testing.T) {
	u := NewUciHandler()
	response := u.Command("go wtime abc")
	assert.Contains(t, response, "invalid number")
}
