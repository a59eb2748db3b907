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
// Package transpositiontable caches search results keyed by the
// position's zobrist key so repeated positions are not searched
// again. One probe costs a multiply-free masked index; entries are
// aged between searches and evicted when they have not been touched
// for a while.
package transpositiontable

import (
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/kforge/zobrist/internal/logging"
	. "github.com/kforge/zobrist/internal/types"
)

var out = message.NewPrinter(language.German)

// maxAge is how many searches an entry survives without being read
// before Update evicts it.
const maxAge = 10

// Entry is one slot of the table, 16 bytes:
//
//	key        8 bytes
//	move       4 bytes (the packed move record)
//	value      2 bytes
//	depth left 1 byte
//	bound/age  1 byte (bound in the upper two bits)
type Entry struct {
	key   Key
	move  uint32
	value int16
	depth int8
	meta  uint8
}

// EntrySize is the size of one entry in bytes.
const EntrySize = 16

const ageMask = uint8(0b0011_1111)

func (e *Entry) bound() Bound {
	return Bound(e.meta >> 6)
}

func (e *Entry) age() uint8 {
	return e.meta & ageMask
}

func (e *Entry) setMeta(b Bound, age uint8) {
	e.meta = uint8(b)<<6 | age&ageMask
}

// TtTable is the transposition table. It is sized to a power of two
// number of entries so the key can be masked into an index.
type TtTable struct {
	log        *logging.Logger
	data       []Entry
	capacity   uint64 // number of slots
	indexMask  uint64
	used       uint64 // slots holding an entry
	sizeInByte uint64

	// statistics
	probes uint64
	hits   uint64
	puts   uint64
}

// NewTtTable creates a table using at most the given number of
// megabytes.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize throws away all entries and resizes the table to at most
// the given number of megabytes.
func (tt *TtTable) Resize(sizeInMByte int) {
	slots := uint64(sizeInMByte) * MB / EntrySize
	// round down to a power of two for mask indexing
	capacity := uint64(1)
	for capacity<<1 <= slots {
		capacity <<= 1
	}
	if slots == 0 {
		capacity = 0
	}
	tt.capacity = capacity
	tt.indexMask = capacity - 1
	tt.sizeInByte = capacity * EntrySize
	tt.data = make([]Entry, capacity)
	tt.used = 0
	tt.log.Info(out.Sprintf("TT: %d MB requested, %d entries of %d bytes allocated",
		sizeInMByte, capacity, unsafe.Sizeof(Entry{})))
}

// Clear empties the table.
func (tt *TtTable) Clear() {
	tt.data = make([]Entry, tt.capacity)
	tt.used = 0
	tt.probes = 0
	tt.hits = 0
	tt.puts = 0
}

// Store saves a search result. Mate values are normalized by the
// distance from the root so the entry is valid from any other ply
// it is read at. An occupied slot of a different position is only
// replaced by a search at least as deep or when the old entry has
// aged.
func (tt *TtTable) Store(key Key, depthLeft int, value Value, ply int, move Move, bound Bound) {
	if tt.capacity == 0 {
		return
	}
	tt.puts++
	e := &tt.data[uint64(key)&tt.indexMask]

	if value.IsCheckmateValue() {
		// stored mate scores are relative to this node, not to the
		// root
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}

	switch {
	case e.key == 0: // empty slot
		tt.used++
	case e.key != key: // collision: keep the more valuable entry
		if int(e.depth) > depthLeft && e.age() == 0 {
			return
		}
	default: // same position: keep an existing move if we have none
		if move == MoveNone {
			move = Move(e.move)
		}
	}

	e.key = key
	e.move = uint32(move.Record())
	e.value = int16(value)
	e.depth = int8(depthLeft)
	e.setMeta(bound, 0)
}

// Probe looks the position up for a node searching with the given
// remaining depth and window. The returned value is only usable
// (ok == true) when the entry is from a deep enough search and its
// bound applies to the window:
//
//	exact       -> always usable
//	upper bound -> usable when value <= alpha (fail low confirmed)
//	lower bound -> usable when value >= beta (fail high confirmed)
//
// The stored move is returned for move ordering even when the value
// is not usable. Every successful lookup marks the entry fresh.
func (tt *TtTable) Probe(key Key, depthLeft int, ply int, alpha, beta Value) (value Value, move Move, ok bool) {
	if tt.capacity == 0 {
		return ValueNA, MoveNone, false
	}
	tt.probes++
	e := &tt.data[uint64(key)&tt.indexMask]
	if e.key != key {
		return ValueNA, MoveNone, false
	}

	tt.hits++
	e.setMeta(e.bound(), 0)
	move = Move(e.move)

	if int(e.depth) < depthLeft {
		return ValueNA, move, false
	}

	value = Value(e.value)
	if value.IsCheckmateValue() {
		// re-normalize the mate distance to this node's ply
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}

	switch e.bound() {
	case BoundExact:
		ok = true
	case BoundUpper:
		ok = value <= alpha
	case BoundLower:
		ok = value >= beta
	}
	if !ok {
		return ValueNA, move, false
	}
	return value, move, true
}

// Update ages every entry by one search and evicts entries that
// have not been read for more than maxAge searches. Called once
// after every completed search.
func (tt *TtTable) Update() {
	for i := range tt.data {
		e := &tt.data[i]
		if e.key == 0 {
			continue
		}
		age := e.age() + 1
		if age > maxAge {
			*e = Entry{}
			tt.used--
			continue
		}
		e.setMeta(e.bound(), age)
	}
}

// Len returns the number of occupied slots.
func (tt *TtTable) Len() uint64 {
	return tt.used
}

// Hashfull returns the fill grade in permill, the way the uci
// protocol reports it.
func (tt *TtTable) Hashfull() int {
	if tt.capacity == 0 {
		return 0
	}
	return int(1000 * tt.used / tt.capacity)
}

// SizeInfo returns used and total size in megabytes.
func (tt *TtTable) SizeInfo() (usedMB, totalMB float64) {
	return float64(tt.used * EntrySize) / float64(MB),
		float64(tt.sizeInByte) / float64(MB)
}

// String reports size and usage statistics of the table.
func (tt *TtTable) String() string {
	usedMB, totalMB := tt.SizeInfo()
	return out.Sprintf("TT: %.1f MB / %.1f MB, %d of %d entries (%d permill), %d puts, %d probes, %d hits",
		usedMB, totalMB, tt.used, tt.capacity, tt.Hashfull(), tt.puts, tt.probes, tt.hits)
}
