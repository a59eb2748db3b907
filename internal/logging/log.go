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
// Package logging wraps "github.com/op/go-logging" so every other
// package gets a ready configured logger with a single call. Three
// loggers exist: the engine log, a test log and the uci protocol
// log (which additionally writes to a file in the log folder when
// possible).
package logging

import (
	golog "log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"

	"github.com/kforge/zobrist/internal/config"
	"github.com/kforge/zobrist/internal/util"
)

var (
	engineLog *logging.Logger
	testLog   *logging.Logger
	uciLog    *logging.Logger

	engineFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
	uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)

	uciLogFilePath string
)

func init() {
	exe, _ := os.Executable()
	name := strings.TrimSuffix(filepath.Base(exe), ".exe")
	uciLogFilePath = filepath.Join(filepath.Dir(exe), "..", "logs", name+"_uci.log")

	engineLog = logging.MustGetLogger("engine")
	testLog = logging.MustGetLogger("test")
	uciLog = logging.MustGetLogger("UCI ")
}

// stdoutBackend builds a leveled stdout backend with the engine
// format.
func stdoutBackend(level int) logging.LeveledBackend {
	backend := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, engineFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	return leveled
}

// GetLog returns the engine logger writing to stdout at the
// configured log level.
func GetLog() *logging.Logger {
	engineLog.SetBackend(stdoutBackend(config.LogLevel))
	return engineLog
}

// GetTestLog returns the logger used by tests, at the test log
// level.
func GetTestLog() *logging.Logger {
	testLog.SetBackend(stdoutBackend(config.TestLogLevel))
	return testLog
}

// GetUciLog returns the uci protocol logger. Besides stdout it
// appends to <executable name>_uci.log when the file can be opened:
// in the configured log folder (Settings.Log.LogPath) when that
// folder exists, else in the logs folder beside the executable's
// folder. Without the file the protocol is still visible on stdout.
func GetUciLog() *logging.Logger {
	stdout := logging.NewLogBackend(os.Stdout, "", golog.Lmsgprefix)
	stdoutFormatted := logging.NewBackendFormatter(stdout, uciFormat)
	stdoutLeveled := logging.AddModuleLevel(stdoutFormatted)
	stdoutLeveled.SetLevel(logging.DEBUG, "")

	logFile := uciLogFilePath
	if logPath := config.Settings.Log.LogPath; logPath != "" {
		if dir, err := util.ResolveFolder(logPath); err == nil {
			logFile = filepath.Join(dir, filepath.Base(uciLogFilePath))
		}
	}
	file, err := os.OpenFile(logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		uciLog.SetBackend(stdoutLeveled)
		return uciLog
	}
	fileBackend := logging.NewLogBackend(file, "", golog.Lmsgprefix)
	fileFormatted := logging.NewBackendFormatter(fileBackend, uciFormat)
	fileLeveled := logging.AddModuleLevel(fileFormatted)
	fileLeveled.SetLevel(logging.DEBUG, "")
	uciLog.SetBackend(logging.SetBackend(stdoutLeveled, fileLeveled))
	return uciLog
}
