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
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kforge/zobrist/internal/config"
	"github.com/kforge/zobrist/internal/logging"
	"github.com/kforge/zobrist/internal/movegen"
	"github.com/kforge/zobrist/internal/position"
	"github.com/kforge/zobrist/internal/search"
	"github.com/kforge/zobrist/internal/testsuite"
	"github.com/kforge/zobrist/internal/uci"
	"github.com/kforge/zobrist/internal/util"
	"github.com/kforge/zobrist/internal/version"
)

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	cpuProfile := flag.Bool("cpuprofile", false, "writes a CPU profile to ./cpu.pprof for the duration of the run\n(inspect with: go tool pprof -http=localhost:8080 cpu.pprof)")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "../logs", "path where to write log files to")
	bookPath := flag.String("bookpath", "./assets/books", "path to opening book files")
	bookFile := flag.String("bookfile", "", "opening book file, requires -bookformat")
	bookFormat := flag.String("bookformat", "", "format of the opening book\n(Simple|San|Pgn)")
	testSuite := flag.String("testsuite", "", "EPD test file or folder of EPD files to run")
	testMovetime := flag.Int("testtime", 2000, "search time per test position in milliseconds")
	testSearchdepth := flag.Int("testdepth", 0, "search depth limit per test position")
	perftDepth := flag.Int("perft", 0, "runs perft of the given depth on the -fen position")
	fen := flag.String("fen", position.StartFen, "fen for the perft and nps modes")
	nps := flag.Int("nps", 0, "runs a nodes-per-second benchmark for the given number of seconds")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	// the config file path must be set before Setup reads it; flags
	// override file settings afterwards
	config.ConfFile = *configFile
	config.Setup()
	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, known := config.LogLevels[*logLvl]; known {
		config.LogLevel = lvl
	}
	if *bookPath != "" {
		config.Settings.Search.BookPath = *bookPath
	}
	if *bookFile != "" && *bookFormat != "" {
		config.Settings.Search.BookFile = *bookFile
		config.Settings.Search.BookFormat = *bookFormat
	}

	// loggers exist before main runs; re-apply the final log level
	logging.GetLog()

	// benchmark mode
	if *nps != 0 {
		config.Settings.Search.UseBook = false
		s := search.NewSearch()
		sl := search.NewSearchLimits()
		sl.TimeControl = true
		sl.MoveTime = time.Duration(*nps) * time.Second
		s.StartSearch(*position.NewPosition(*fen), *sl)
		s.WaitWhileSearching()
		out.Println("NPS:", util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime))
		return
	}

	// perft mode
	if *perftDepth != 0 {
		pf := movegen.NewPerft()
		for depth := 1; depth <= *perftDepth; depth++ {
			pf.StartPerft(*fen, depth, true)
		}
		return
	}

	// test suite mode
	if *testSuite != "" {
		info, err := os.Stat(*testSuite)
		if err != nil {
			fmt.Println(err)
			return
		}
		moveTime := time.Duration(*testMovetime) * time.Millisecond
		if info.IsDir() {
			out.Println(testsuite.FeatureTests(*testSuite+"/", moveTime, *testSearchdepth))
			return
		}
		ts, err := testsuite.NewTestSuite(*testSuite, moveTime, *testSearchdepth)
		if err != nil {
			fmt.Println(err)
			return
		}
		ts.RunTests()
		return
	}

	// default mode: drive the engine over the uci protocol
	uci.NewUciHandler().Loop()
}

func printVersionInfo() {
	out.Printf("%s\n", version.Version())
	out.Printf("  go version: %s (%s, %s)\n", runtime.Version(), runtime.GOARCH, runtime.Compiler)
	out.Printf("  cpus: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  working directory: %s\n", cwd)
}
