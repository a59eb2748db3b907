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
// Package openingbook implements a line matcher over a small corpus of
// principal opening lines. Each line is a sequence of moves from the
// starting position; lines are replayed into a Zobrist-keyed map so a
// position reached during play can be looked up directly without
// re-walking move prefixes.
//
// Supported source formats:
//
// Simple - one game per line, moves in UCI coordinate notation.
//
// San - one game per line, moves in SAN notation.
//
// Pgn - PGN formatted games; tag pairs, comments, NAGs and RAV
// variations are stripped before the move text is parsed as SAN.
package openingbook

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/kforge/zobrist/internal/logging"
	"github.com/kforge/zobrist/internal/movegen"
	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

var log = logging.GetLog()

// BookFormat enumerates the supported source formats for opening lines.
type BookFormat uint8

// Supported book formats
const (
	Simple BookFormat = iota
	San
	Pgn
)

// FormatFromString resolves a config/cmd-line format name to a BookFormat.
var FormatFromString = map[string]BookFormat{
	"Simple": Simple,
	"San":    San,
	"Pgn":    Pgn,
}

// Successor represents one continuation out of a BookEntry: the move
// played and the Zobrist key of the position it leads to.
type Successor struct {
	Move      uint32
	NextEntry uint64
}

// BookEntry describes exactly one position reached by the corpus,
// identified by its Zobrist key, with links to every move played from
// it anywhere in the corpus.
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []Successor
}

// Book is a small in-memory line matcher. Positions are keyed by
// Zobrist key so a lookup during play is a single map access rather
// than a prefix walk over move strings.
type Book struct {
	bookMap     map[uint64]BookEntry
	rootEntry   uint64
	initialized bool
	mu          sync.Mutex
}

// NewBook creates an empty, uninitialized Book.
func NewBook() *Book {
	return &Book{bookMap: map[uint64]BookEntry{}}
}

// defaultLines is the built-in corpus of principal lines used when no
// book file is configured or the configured file cannot be found. Real
// deployments are expected to point BookPath/BookFile at a larger
// corpus; this keeps the engine able to play an opening out of the box.
var defaultLines = []string{
	"e2e4 e7e5 g1f3 b8c6 f1b5 a7a6 b5a4 g8f6",
	"e2e4 e7e5 g1f3 b8c6 f1c4 f8c5",
	"e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6",
	"e2e4 c7c5 g1f3 b8c6 d2d4 c5d4 f3d4 g8f6 b1c3 e7e5",
	"e2e4 e7e6 d2d4 d7d5 b1c3 f8b4",
	"e2e4 c7c6 d2d4 d7d5 b1c3 d5e4 c3e4",
	"d2d4 d7d5 c2c4 e7e6 b1c3 g8f6 c1g5",
	"d2d4 d7d5 c2c4 c7c6 g1f3 g8f6 b1c3",
	"d2d4 g8f6 c2c4 g7g6 b1c3 f8g7 e2e4 d7d6 g1f3 e8g8",
	"d2d4 g8f6 c2c4 e7e6 b1c3 f8b4 e2e3",
	"c2c4 e7e5 b1c3 g8f6 g1f3 b8c6",
	"c2c4 g8f6 b1c3 e7e5 g1f3 b8c6",
	"g1f3 d7d5 c2c4 d5c4 e2e3 g8f6",
	"g1f3 g8f6 c2c4 g7g6 b1c3 f8g7 d2d4 e8g8",
}

// Initialize loads the book, preferring a file at
// filepath.Join(bookPath, bookFile) (or bookPath alone if bookFile is
// empty) and falling back to the built-in corpus if no such file can
// be read. Calling Initialize on an already-initialized Book is a
// no-op. useCache/recreateCache are accepted for interface parity with
// hosts that persist a prebuilt book, but this implementation rebuilds
// from the line corpus every time - the corpus is small enough that a
// cache buys nothing.
func (b *Book) Initialize(bookPath string, bookFile string, format BookFormat, useCache bool, recreateCache bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}

	log.Info("Initializing opening book")

	candidate := bookPath
	if bookFile != "" {
		candidate = filepath.Join(bookPath, bookFile)
	}

	var lines []string
	if candidate != "" {
		if fileLines, err := readFile(candidate); err == nil {
			lines = fileLines
			log.Infof("Opening book: loaded %d lines from %s", len(lines), candidate)
		} else {
			log.Infof("Opening book: %q not found (%s), using built-in corpus", candidate, err)
			lines = defaultLines
		}
	} else {
		lines = defaultLines
	}

	b.build(lines, format)
	log.Infof("Opening book: %d positions from %d lines", len(b.bookMap), len(lines))
	b.initialized = true
	return nil
}

// NumberOfEntries returns the number of distinct positions in the book.
func (b *Book) NumberOfEntries() int {
	return len(b.bookMap)
}

// GetEntry returns the entry for the given Zobrist key, if any.
func (b *Book) GetEntry(key Key) (BookEntry, bool) {
	entry, ok := b.bookMap[uint64(key)]
	return entry, ok
}

// Reset clears the book so it can be initialized again.
func (b *Book) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bookMap = map[uint64]BookEntry{}
	b.rootEntry = 0
	b.initialized = false
}

// /////////////////////////////////////////////////
// Private
// /////////////////////////////////////////////////

// readFile reads a text file into a slice of non-empty lines.
func readFile(bookPath string) ([]string, error) {
	f, err := os.Open(bookPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		if line := strings.TrimSpace(s.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

var regexUciToken = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][nbrqNBRQ]?$`)

// pgn cleanup expressions, applied in order.
var (
	regexTagPair    = regexp.MustCompile(`\[\w+ +".*?"\]`)
	regexNag        = regexp.MustCompile(`\$\d{1,3}`)
	regexBraceCmt   = regexp.MustCompile(`\{[^{}]*\}`)
	regexRavVariant = regexp.MustCompile(`\([^()]*\)`)
	regexResult     = regexp.MustCompile(`1-0|0-1|1/2-1/2|\*`)
	regexMoveNumber = regexp.MustCompile(`\d+\.(\.\.)?`)
)

// extractMoves tokenizes one corpus line into the ordered list of
// move strings (UCI or SAN, depending on format) to be replayed.
func (b *Book) extractMoves(line string, format BookFormat) []string {
	switch format {
	case Simple:
		var tokens []string
		for _, field := range strings.Fields(line) {
			if regexUciToken.MatchString(field) {
				tokens = append(tokens, field)
			}
		}
		return tokens
	case San, Pgn:
		cleaned := line
		if format == Pgn {
			cleaned = regexTagPair.ReplaceAllString(cleaned, "")
			cleaned = regexBraceCmt.ReplaceAllString(cleaned, "")
			cleaned = regexRavVariant.ReplaceAllString(cleaned, "")
		}
		cleaned = regexNag.ReplaceAllString(cleaned, "")
		cleaned = regexResult.ReplaceAllString(cleaned, "")
		cleaned = regexMoveNumber.ReplaceAllString(cleaned, "")
		return strings.Fields(cleaned)
	}
	return nil
}

// build replaces the book's contents with the positions reached by
// replaying every line of the given corpus from the starting position.
func (b *Book) build(lines []string, format BookFormat) {
	b.bookMap = make(map[uint64]BookEntry)
	root := position.NewPosition()
	b.rootEntry = uint64(root.ZobristKey())
	b.bookMap[b.rootEntry] = BookEntry{ZobristKey: b.rootEntry}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if format == Pgn {
			for _, game := range splitPgnGames(line) {
				b.addLine(b.extractMoves(game, format), format)
			}
			continue
		}
		b.addLine(b.extractMoves(line, format), format)
	}
}

// splitPgnGames breaks a blob of PGN text into per-game chunks at each
// result marker, so multi-game files on one physical line still work.
func splitPgnGames(blob string) []string {
	idxs := regexResult.FindAllStringIndex(blob, -1)
	if idxs == nil {
		return []string{blob}
	}
	var games []string
	start := 0
	for _, m := range idxs {
		games = append(games, blob[start:m[1]])
		start = m[1]
	}
	if start < len(blob) {
		games = append(games, blob[start:])
	}
	return games
}

// addLine replays one sequence of move tokens from the starting
// position, adding every position and transition it passes through to
// the book. Replay stops at the first token that cannot be resolved
// to a legal move - the corpus is assumed append-only and noisy near
// its edges (trailing annotations, truncated lines).
func (b *Book) addLine(tokens []string, format BookFormat) {
	if len(tokens) == 0 {
		return
	}
	pos := position.NewPosition()
	mg := movegen.NewMoveGen()
	key := b.rootEntry
	b.bumpCounter(key)

	for _, tok := range tokens {
		var mv Move
		if format == Simple {
			mv = mg.GetMoveFromUci(pos, tok)
		} else {
			mv = mg.GetMoveFromSan(pos, tok)
		}
		if mv == MoveNone {
			break
		}
		pos.DoMove(mv)
		nextKey := uint64(pos.ZobristKey())
		b.addSuccessor(key, mv, nextKey)
		if _, ok := b.bookMap[nextKey]; !ok {
			b.bookMap[nextKey] = BookEntry{ZobristKey: nextKey}
		}
		b.bumpCounter(nextKey)
		key = nextKey
	}
}

// bumpCounter increments the visit counter of the entry at key.
func (b *Book) bumpCounter(key uint64) {
	entry := b.bookMap[key]
	entry.Counter++
	b.bookMap[key] = entry
}

// addSuccessor records that move m played from key leads to nextKey,
// unless that successor is already recorded.
func (b *Book) addSuccessor(key uint64, m Move, nextKey uint64) {
	entry := b.bookMap[key]
	for _, s := range entry.Moves {
		if s.NextEntry == nextKey {
			return
		}
	}
	entry.Moves = append(entry.Moves, Successor{Move: uint32(m.Record()), NextEntry: nextKey})
	b.bookMap[key] = entry
}
