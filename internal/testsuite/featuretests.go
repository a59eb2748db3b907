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
	"io/ioutil"
	"path/filepath"
	"strings"
	"time"

	"github.com/kforge/zobrist/internal/config"
	myLogging "github.com/kforge/zobrist/internal/logging"
)

// FeatureTests runs every EPD file found in the given folder end to
// end against the current search configuration and returns a
// summary. Used as a broad regression net when search features are
// toggled or retuned.
func FeatureTests(folder string, searchTime time.Duration, searchDepth int) string {
	if log == nil {
		log = myLogging.GetLog()
	}

	files, err := ioutil.ReadDir(folder)
	if err != nil {
		log.Errorf("feature tests: folder not readable: %s", err)
		return ""
	}

	var epdFiles []string
	for _, f := range files {
		if filepath.Ext(f.Name()) == ".epd" {
			epdFiles = append(epdFiles, f.Name())
		}
	}
	if len(epdFiles) == 0 {
		log.Warningf("feature tests: no epd files in %s", folder)
		return ""
	}

	// the suites measure the searcher, not the book
	bookSetting := config.Settings.Search.UseBook
	config.Settings.Search.UseBook = false
	defer func() { config.Settings.Search.UseBook = bookSetting }()

	totals := SuiteResult{}
	var sb strings.Builder
	start := time.Now()

	for _, name := range epdFiles {
		ts, err := NewTestSuite(filepath.Join(folder, name), searchTime, searchDepth)
		if err != nil {
			log.Errorf("feature tests: %s", err)
			continue
		}
		ts.RunTests()
		r := ts.LastResult
		totals.Counter += r.Counter
		totals.SuccessCounter += r.SuccessCounter
		totals.FailedCounter += r.FailedCounter
		totals.SkippedCounter += r.SkippedCounter
		totals.NotTestedCounter += r.NotTestedCounter
		sb.WriteString(out.Sprintf("%-30s: %3d tests, %3d successful, %3d failed\n",
			name, r.Counter, r.SuccessCounter, r.FailedCounter))
	}

	sb.WriteString(out.Sprintf("Total: %d tests, %d successful, %d failed, %d skipped (%s)\n",
		totals.Counter, totals.SuccessCounter, totals.FailedCounter,
		totals.SkippedCounter, time.Since(start)))
	return sb.String()
}
