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
// Package moveslice provides a light weight move list used for move
// generation, principal variations and search bookkeeping.
package moveslice

import (
	"strings"

	. "github.com/kforge/zobrist/internal/types"
)

// MoveSlice is an ordered list of moves.
type MoveSlice []Move

// NewMoveSlice creates an empty list with the given capacity.
func NewMoveSlice(capacity int) *MoveSlice {
	ms := make(MoveSlice, 0, capacity)
	return &ms
}

// Len returns the number of moves in the list.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Clear empties the list, keeping its capacity.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// PushBack appends a move.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// PopBack removes and returns the last move. MoveNone on an empty
// list.
func (ms *MoveSlice) PopBack() Move {
	if len(*ms) == 0 {
		return MoveNone
	}
	m := (*ms)[len(*ms)-1]
	*ms = (*ms)[:len(*ms)-1]
	return m
}

// At returns the move at index i.
func (ms *MoveSlice) At(i int) Move {
	return (*ms)[i]
}

// Set replaces the move at index i.
func (ms *MoveSlice) Set(i int, m Move) {
	(*ms)[i] = m
}

// Sort orders the list by descending move score. Insertion sort is
// stable, so equally scored moves keep their generation order, and
// it beats the generic sort on the short lists move generation
// produces.
func (ms *MoveSlice) Sort() {
	s := *ms
	for i := 1; i < len(s); i++ {
		m := s[i]
		j := i
		for j > 0 && s[j-1].Score() < m.Score() {
			s[j] = s[j-1]
			j--
		}
		s[j] = m
	}
}

// StringUci joins the moves in uci notation, space separated.
func (ms *MoveSlice) StringUci() string {
	var sb strings.Builder
	for i, m := range *ms {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(m.StringUci())
	}
	return sb.String()
}

// String returns a short debug representation of the list.
func (ms *MoveSlice) String() string {
	return ms.StringUci()
}
