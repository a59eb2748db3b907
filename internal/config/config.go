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
// Package config holds the engine configuration: defaults set at
// startup, optionally overridden by a toml file and after that by
// command line flags.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kforge/zobrist/internal/util"
)

var (
	// ConfFile is the path of the configuration file, relative paths
	// are resolved against cwd, executable dir and home dir
	ConfFile = "./config.toml"

	// LogLevel is the general log level
	LogLevel = 5
	// SearchLogLevel is the log level of the search log
	SearchLogLevel = 5
	// TestLogLevel is the log level used in tests
	TestLogLevel = 5

	initialized = false
)

// Settings is the global engine configuration.
var Settings conf

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
}

// String prints the whole configuration.
func (c *conf) String() string {
	return fmt.Sprintf("Config: %+v", *c)
}

// Setup reads the configuration file (when one is found) over the
// built-in defaults and wires the log levels. Safe to call more
// than once.
func Setup() {
	if initialized {
		return
	}
	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			fmt.Printf("config file could not be read: %s\n", path)
		}
	}
	setupLogLvl()
	initialized = true
}
