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
package testsuite

import (
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kforge/zobrist/internal/config"
	myLogging "github.com/kforge/zobrist/internal/logging"
)

// make tests run in the project root so the testdata paths work
func init() {
	_, filename, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Join(path.Dir(filename), "../..")); err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	log = myLogging.GetLog()
	os.Exit(m.Run())
}

func TestGetTest(t *testing.T) {
	test := getTest(`2b4k/8/8/8/8/3N3N/P4p2/1K6 w - - bm Nhxf2 Ndxf2; id "FRANKY-1 #7";`)
	assert.NotNil(t, test)
	assert.Equal(t, "2b4k/8/8/8/8/3N3N/P4p2/1K6 w - -", test.fen)
	assert.Equal(t, BM, test.tType)
	assert.Equal(t, "h3f2 d3f2", test.targetMoves.StringUci())
	assert.Equal(t, "FRANKY-1 #7", test.id)

	test = getTest(`6k1/P7/8/8/8/8/8/3K4 w - - bm a8=Q; id "FRANKY-1 #4";`)
	assert.NotNil(t, test)
	assert.Equal(t, "a7a8q", test.targetMoves.StringUci())

	test = getTest(`7k/8/7K/8/8/8/8/R7 w - - dm 1;`)
	assert.NotNil(t, test)
	assert.Equal(t, DM, test.tType)
	assert.Equal(t, 1, test.mateDepth)

	// invalid lines are dropped
	assert.Nil(t, getTest(`6k1/P7/8/9/8/8/8/3K4 w - - bm a8=Q;`)) // bad fen
	assert.Nil(t, getTest(`6k1/P7/8/8/8/8/8/3K4 w - - xx a8=Q;`)) // bad opcode
	assert.Nil(t, getTest(`2b4k/8/8/8/8/3N3N/P4p2/1K6 w - - bm Nbxf2;`)) // no such move
}

func TestNewTestSuite(t *testing.T) {
	ts, err := NewTestSuite("test/testdata/testsets/franky_tests.epd", 2*time.Second, 0)
	assert.NoError(t, err)
	assert.NotNil(t, ts)
	assert.Equal(t, 13, len(ts.Tests))

	_, err = NewTestSuite("does/not/exist.epd", time.Second, 0)
	assert.Error(t, err)
}

func TestRunTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}
	ts, err := NewTestSuite("test/testdata/testsets/franky_tests.epd", 2*time.Second, 0)
	assert.NoError(t, err)
	ts.RunTests()
	assert.NotNil(t, ts.LastResult)
	assert.Equal(t, len(ts.Tests), ts.LastResult.Counter)
}

func TestZugzwangSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}
	ts, err := NewTestSuite("test/testdata/testsets/nullMoveZugZwangTest.epd", 3*time.Second, 0)
	assert.NoError(t, err)
	ts.RunTests()
}

func TestMateSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}
	ts, err := NewTestSuite("test/testdata/testsets/mate_test_suite.epd", 5*time.Second, 0)
	assert.NoError(t, err)
	ts.RunTests()
	assert.NotNil(t, ts.LastResult)
}
