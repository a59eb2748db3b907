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
// Package testsuite runs EPD (Extended Position Description) test
// files against the real searcher. An EPD line is a fen plus
// opcodes; supported here are "bm" (best move), "am" (avoid move)
// and "dm" (direct mate in n).
// https://www.chessprogramming.org/Extended_Position_Description
package testsuite

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kforge/zobrist/internal/config"
	myLogging "github.com/kforge/zobrist/internal/logging"
	"github.com/kforge/zobrist/internal/movegen"
	"github.com/kforge/zobrist/internal/moveslice"
	"github.com/kforge/zobrist/internal/position"
	"github.com/kforge/zobrist/internal/search"
	. "github.com/kforge/zobrist/internal/types"
	"github.com/kforge/zobrist/internal/util"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// testType is the EPD opcode of a test.
type testType uint8

const (
	None testType = iota
	DM            // direct mate in n
	BM            // best move
	AM            // avoid move
)

// resultType is the outcome of one executed test.
type resultType uint8

const (
	NotTested resultType = iota
	Skipped
	Failed
	Success
)

// SuiteResult sums up the outcomes of a finished suite run.
type SuiteResult struct {
	Counter          int
	SuccessCounter   int
	FailedCounter    int
	SkippedCounter   int
	NotTestedCounter int
}

// Test is one EPD line, parsed, plus its result after running.
type Test struct {
	id          string
	fen         string
	tType       testType
	targetMoves moveslice.MoveSlice
	mateDepth   int
	actual      Move
	value       Value
	rType       resultType
	line        string
	nps         uint64
}

// TestSuite reads an EPD file and runs every test in it with the
// configured search time or depth.
type TestSuite struct {
	Tests      []*Test
	Time       time.Duration
	Depth      int
	FilePath   string
	LastResult *SuiteResult
}

// NewTestSuite parses the EPD file into a runnable suite.
func NewTestSuite(filePath string, searchTime time.Duration, depth int) (*TestSuite, error) {
	if log == nil {
		log = myLogging.GetLog()
	}

	lines, err := readEpdLines(filePath)
	if err != nil {
		return nil, err
	}

	ts := &TestSuite{
		Time:     searchTime,
		Depth:    depth,
		FilePath: filePath,
	}
	for _, line := range lines {
		if test := getTest(line); test != nil {
			ts.Tests = append(ts.Tests, test)
		}
	}
	return ts, nil
}

// RunTests executes all tests of the suite against a fresh search
// instance and prints a summary table.
func (ts *TestSuite) RunTests() {
	if len(ts.Tests) == 0 {
		out.Printf("Test suite %s is empty\n", ts.FilePath)
		return
	}

	startTime := time.Now()

	// run with book disabled, we want the searcher not the corpus
	bookSetting := config.Settings.Search.UseBook
	config.Settings.Search.UseBook = false
	defer func() { config.Settings.Search.UseBook = bookSetting }()

	s := search.NewSearch()
	sl := search.NewSearchLimits()
	if ts.Time > 0 {
		sl.MoveTime = ts.Time
		sl.TimeControl = true
	}
	if ts.Depth > 0 {
		sl.Depth = ts.Depth
	}

	for i, t := range ts.Tests {
		out.Printf("Test %d of %d: %s\n", i+1, len(ts.Tests), t.line)
		runSingleTest(s, sl, t)
	}

	result := &SuiteResult{}
	for _, t := range ts.Tests {
		result.Counter++
		switch t.rType {
		case NotTested:
			result.NotTestedCounter++
		case Skipped:
			result.SkippedCounter++
		case Failed:
			result.FailedCounter++
		case Success:
			result.SuccessCounter++
		}
	}
	ts.LastResult = result
	elapsed := time.Since(startTime)

	out.Println("====================================================================")
	out.Printf("EPD File:   %s\n", ts.FilePath)
	out.Printf("SearchTime: %s  MaxDepth: %d\n", ts.Time, ts.Depth)
	for i, t := range ts.Tests {
		out.Printf("%-4d | %-10s | %-8s | %s | %s\n",
			i+1, t.rType.String(), t.actual.StringUci(), t.value.String(), t.line)
	}
	out.Println("====================================================================")
	out.Printf("Successful: %-3d (%d %%)\n", result.SuccessCounter, 100*result.SuccessCounter/result.Counter)
	out.Printf("Failed:     %-3d (%d %%)\n", result.FailedCounter, 100*result.FailedCounter/result.Counter)
	out.Printf("Skipped:    %-3d (%d %%)\n", result.SkippedCounter, 100*result.SkippedCounter/result.Counter)
	out.Printf("Not tested: %-3d (%d %%)\n", result.NotTestedCounter, 100*result.NotTestedCounter/result.Counter)
	out.Printf("Test time:  %s\n", elapsed)
}

// runSingleTest dispatches a test by its opcode.
func runSingleTest(s *search.Search, sl *search.Limits, t *Test) {
	p, err := position.NewPositionFen(t.fen)
	if err != nil {
		t.rType = Skipped
		return
	}
	switch t.tType {
	case DM:
		directMateTest(s, sl, p, t)
	case BM:
		bestMoveTest(s, sl, p, t)
	case AM:
		avoidMoveTest(s, sl, p, t)
	default:
		t.rType = Skipped
	}
}

// directMateTest passes when the search reports the expected mate
// distance.
func directMateTest(s *search.Search, sl *search.Limits, p *position.Position, t *Test) {
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	t.actual = s.LastSearchResult().BestMove
	t.value = s.LastSearchResult().BestValue
	t.nps = util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime)
	if t.value.String() == fmt.Sprintf("mate %d", t.mateDepth) {
		t.rType = Success
		return
	}
	t.rType = Failed
}

// bestMoveTest passes when the search plays one of the expected
// moves.
func bestMoveTest(s *search.Search, sl *search.Limits, p *position.Position, t *Test) {
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	t.actual = s.LastSearchResult().BestMove
	t.value = s.LastSearchResult().BestValue
	t.nps = util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime)
	for i := 0; i < t.targetMoves.Len(); i++ {
		if t.targetMoves.At(i).Record() == t.actual.Record() {
			t.rType = Success
			return
		}
	}
	t.rType = Failed
}

// avoidMoveTest passes when the search plays none of the listed
// moves.
func avoidMoveTest(s *search.Search, sl *search.Limits, p *position.Position, t *Test) {
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	t.actual = s.LastSearchResult().BestMove
	t.value = s.LastSearchResult().BestValue
	t.nps = util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime)
	for i := 0; i < t.targetMoves.Len(); i++ {
		if t.targetMoves.At(i).Record() == t.actual.Record() {
			t.rType = Failed
			return
		}
	}
	t.rType = Success
}

var epdRegex = regexp.MustCompile(`^\s*(.*?) (bm|dm|am) (.*?);(.* id "(.*?)";)?.*$`)

// getTest parses one EPD line into a Test. Lines that do not parse
// (bad fen, unknown opcode, unresolvable moves) return nil and are
// dropped.
func getTest(line string) *Test {
	matches := epdRegex.FindStringSubmatch(line)
	if matches == nil {
		return nil
	}
	fen := strings.TrimSpace(matches[1])
	opcode := matches[2]
	operand := strings.TrimSpace(matches[3])
	id := matches[5]

	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Warningf("epd line has invalid fen: %s", line)
		return nil
	}

	test := &Test{
		id:   id,
		fen:  fen,
		line: strings.TrimSpace(line),
	}

	switch opcode {
	case "dm":
		n, err := strconv.Atoi(operand)
		if err != nil {
			log.Warningf("epd line has invalid mate depth: %s", line)
			return nil
		}
		test.tType = DM
		test.mateDepth = n

	case "bm", "am":
		test.tType = BM
		if opcode == "am" {
			test.tType = AM
		}
		mg := movegen.NewMoveGen()
		for _, san := range strings.Fields(operand) {
			if m := mg.GetMoveFromSan(p, san); m != MoveNone {
				test.targetMoves.PushBack(m)
			}
		}
		if test.targetMoves.Len() == 0 {
			log.Warningf("epd line has no resolvable move: %s", line)
			return nil
		}
	}
	return test
}

// readEpdLines reads the file into lines, dropping blank lines and
// comments.
func readEpdLines(filePath string) ([]string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("test file %s could not be read: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func (rt resultType) String() string {
	switch rt {
	case Success:
		return "Success"
	case Failed:
		return "Failed"
	case Skipped:
		return "Skipped"
	}
	return "Not tested"
}

func (tt testType) String() string {
	switch tt {
	case DM:
		return "dm"
	case BM:
		return "bm"
	case AM:
		return "am"
	}
	return "none"
}
