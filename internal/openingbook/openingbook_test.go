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
package openingbook

import (
	"os"
	"path"
	"runtime"
	"testing"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/kforge/zobrist/internal/config"
	"github.com/kforge/zobrist/internal/logging"
	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestReadingNonExistingFile(t *testing.T) {
	_, err := readFile("does/not/exist.txt")
	assert.Error(t, err)
}

func TestInitializeFallsBackToBuiltinCorpus(t *testing.T) {
	book := NewBook()
	err := book.Initialize("does/not/exist", "book.txt", Simple, false, false)
	assert.NoError(t, err)
	assert.Greater(t, book.NumberOfEntries(), 1)

	startPos := position.NewPosition()
	entry, ok := book.GetEntry(startPos.ZobristKey())
	assert.True(t, ok)
	assert.EqualValues(t, startPos.ZobristKey(), entry.ZobristKey)
	assert.NotEmpty(t, entry.Moves)
}

func TestInitializeIsIdempotent(t *testing.T) {
	book := NewBook()
	assert.NoError(t, book.Initialize("", "", Simple, false, false))
	n := book.NumberOfEntries()
	// second call is a no-op regardless of arguments
	assert.NoError(t, book.Initialize("garbage", "garbage", Pgn, false, false))
	assert.Equal(t, n, book.NumberOfEntries())
}

func TestReset(t *testing.T) {
	book := NewBook()
	assert.NoError(t, book.Initialize("", "", Simple, false, false))
	assert.Greater(t, book.NumberOfEntries(), 0)
	book.Reset()
	assert.Equal(t, 0, book.NumberOfEntries())
}

func TestSimpleLineMatchesPrefix(t *testing.T) {
	book := NewBook()
	err := book.Initialize("", "", Simple, false, false)
	assert.NoError(t, err)

	pos := position.NewPosition()
	entry, found := book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	assert.NotEmpty(t, entry.Moves)

	// every default line opens 1.e4 or 1.d4/1.c4/1.Nf3, so this must
	// still resolve to a real entry with further continuations.
	pos.DoMove(MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush))
	entry, found = book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	assert.NotEmpty(t, entry.Moves)
}

func TestSimpleLineMissOutsideCorpus(t *testing.T) {
	book := NewBook()
	assert.NoError(t, book.Initialize("", "", Simple, false, false))

	pos := position.NewPosition()
	// 1.a3 is not the first move of any default line
	pos.DoMove(MakeMove(SqA2, SqA3, WhitePawn, PieceNone, FlagQuiet))
	_, found := book.GetEntry(pos.ZobristKey())
	assert.False(t, found)
}

func TestSanFormatResolvesToSamePositionsAsUci(t *testing.T) {
	uciBook := NewBook()
	assert.NoError(t, uciBook.Initialize("", "", Simple, false, false))

	sanLines := []string{"e4 e5 Nf3 Nc6 Bb5 a6 Ba4 Nf6"}
	sanBook := NewBook()
	sanBook.build(sanLines, San)

	pos := position.NewPosition()
	pos.DoMove(MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush))
	_, foundInUci := uciBook.GetEntry(pos.ZobristKey())
	_, foundInSan := sanBook.GetEntry(pos.ZobristKey())
	assert.True(t, foundInUci)
	assert.True(t, foundInSan)
}

func TestPgnFormatStripsNoise(t *testing.T) {
	pgn := `[Event "Test"]
[Site "?"]
1. e4 {best by test} e5 2. Nf3 (2. f4 exf4) Nc6 3. Bb5 1-0`

	book := NewBook()
	book.build([]string{pgn}, Pgn)

	pos := position.NewPosition()
	pos.DoMove(MakeMove(SqE2, SqE4, WhitePawn, PieceNone, FlagDoublePawnPush))
	pos.DoMove(MakeMove(SqE7, SqE5, BlackPawn, PieceNone, FlagDoublePawnPush))
	entry, found := book.GetEntry(pos.ZobristKey())
	assert.True(t, found)
	assert.NotEmpty(t, entry.Moves)
}
