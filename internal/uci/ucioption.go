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
	"fmt"
	"strconv"

	"github.com/kforge/zobrist/internal/config"
)

// uciOption describes one uci option: its announcement string for
// the gui and the handler applying a new value to the engine
// configuration.
type uciOption struct {
	name         string
	optionType   string // check | spin | button | string
	defaultValue string
	min, max     int
	handler      func(u *UciHandler, value string)
}

func (o *uciOption) uciString() string {
	s := fmt.Sprintf("option name %s type %s", o.name, o.optionType)
	switch o.optionType {
	case "check", "string":
		s += " default " + o.defaultValue
	case "spin":
		s += fmt.Sprintf(" default %s min %d max %d", o.defaultValue, o.min, o.max)
	}
	return s
}

// optionOrder fixes the announcement order of the options.
var optionOrder = []string{
	"Hash", "Clear Hash", "Ponder", "OwnBook",
	"Use Aspiration", "Razor Margin", "LMR Reduction",
}

var uciOptions = map[string]*uciOption{
	"Hash": {
		name: "Hash", optionType: "spin", defaultValue: "128", min: 0, max: 65536,
		handler: func(u *UciHandler, value string) {
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.Settings.Search.TTSize = n
				u.mySearch.ResizeCache()
			}
		},
	},
	"Clear Hash": {
		name: "Clear Hash", optionType: "button",
		handler: func(u *UciHandler, value string) {
			u.mySearch.ClearHash()
		},
	},
	"Ponder": {
		name: "Ponder", optionType: "check", defaultValue: "true",
		handler: func(u *UciHandler, value string) {
			config.Settings.Search.UsePonder = value == "true"
		},
	},
	"OwnBook": {
		name: "OwnBook", optionType: "check", defaultValue: "true",
		handler: func(u *UciHandler, value string) {
			config.Settings.Search.UseBook = value == "true"
		},
	},
	"Use Aspiration": {
		name: "Use Aspiration", optionType: "check", defaultValue: "true",
		handler: func(u *UciHandler, value string) {
			config.Settings.Search.UseAspiration = value == "true"
		},
	},
	"Razor Margin": {
		name: "Razor Margin", optionType: "spin", defaultValue: "900", min: 0, max: 2000,
		handler: func(u *UciHandler, value string) {
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.Settings.Search.RazorMargin = n
			}
		},
	},
	"LMR Reduction": {
		name: "LMR Reduction", optionType: "spin", defaultValue: "1", min: 0, max: 3,
		handler: func(u *UciHandler, value string) {
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				config.Settings.Search.LmrReduction = n
			}
		},
	},
}
