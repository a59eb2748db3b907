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
package config

// searchConfiguration collects every tunable of the search. The
// zero value is unusable; defaults are set in init below and can be
// overridden by the configuration file.
type searchConfiguration struct {
	// opening book
	UseBook    bool
	BookPath   string
	BookFile   string
	BookFormat string

	UsePonder bool

	// quiescence search
	UseQuiescence   bool
	UseQSStandpat   bool
	UseQSTT         bool
	UseQFP          bool
	UsePromNonQuiet bool

	// root search algorithm
	UseAspiration bool
	UseMTDf       bool
	UsePVS        bool

	// move ordering
	UseKiller    bool
	UseHistory   bool
	UseTTMove    bool
	UseIID       bool
	IIDDepth     int
	IIDReduction int

	// transposition table
	UseTT      bool
	TTSize     int
	UseTTValue bool

	// prunings
	UseMDP       bool
	UseRazoring  bool
	RazorMargin  int
	UseRFP       bool
	UseNullMove  bool
	NmpDepth     int
	NmpReduction int
	UseFP        bool
	UseLmp       bool

	// late move reductions: moves tried late are searched with the
	// remaining depth reduced by LmrReduction
	UseLmr           bool
	LmrDepth         int
	LmrMovesSearched int
	LmrReduction     int

	// search extensions
	UseExt      bool
	UseCheckExt bool
	UsePawnExt  bool
}

func init() {
	Settings.Search.UseBook = true
	Settings.Search.BookPath = "./assets/books"
	Settings.Search.BookFile = "book.txt"
	Settings.Search.BookFormat = "Simple"

	Settings.Search.UsePonder = true

	Settings.Search.UseQuiescence = true
	Settings.Search.UseQSStandpat = true
	Settings.Search.UseQSTT = true
	Settings.Search.UseQFP = false
	Settings.Search.UsePromNonQuiet = true

	Settings.Search.UseAspiration = true
	Settings.Search.UseMTDf = false
	Settings.Search.UsePVS = true

	Settings.Search.UseKiller = true
	Settings.Search.UseHistory = true
	Settings.Search.UseTTMove = true
	Settings.Search.UseIID = true
	Settings.Search.IIDDepth = 6
	Settings.Search.IIDReduction = 2

	Settings.Search.UseTT = true
	Settings.Search.TTSize = 128
	Settings.Search.UseTTValue = true

	Settings.Search.UseMDP = true
	Settings.Search.UseRazoring = true
	Settings.Search.RazorMargin = 900 // a queen
	Settings.Search.UseRFP = false
	Settings.Search.UseNullMove = true
	Settings.Search.NmpDepth = 3
	Settings.Search.NmpReduction = 2
	Settings.Search.UseFP = false
	Settings.Search.UseLmp = true

	Settings.Search.UseLmr = true
	Settings.Search.LmrDepth = 3
	Settings.Search.LmrMovesSearched = 3
	Settings.Search.LmrReduction = 1

	Settings.Search.UseExt = true
	Settings.Search.UseCheckExt = true
	Settings.Search.UsePawnExt = true
}
