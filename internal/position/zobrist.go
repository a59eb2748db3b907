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
package position

import (
	. "github.com/kforge/zobrist/internal/types"
)

// The zobrist key of a position is the xor fold of one random
// number per piece and square, per castling rights state, per en
// passant file (index 0 when there is none) and one for the side to
// move. The numbers come from a splitmix64 stream with a fixed
// seed, so keys are stable across runs.

var zobristKeys struct {
	pieces   [PieceLength][SqLength]Key
	castling [CastlingRightsLength]Key
	epFile   [9]Key // 0 = no en passant, 1-8 = file a-h
	side     Key
}

const zobristSeed uint64 = 0x7A6B72697374_2A2A // arbitrary but fixed

func init() {
	state := zobristSeed
	next := func() Key {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return Key(z ^ (z >> 31))
	}
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq < SqNone; sq++ {
			zobristKeys.pieces[pc][sq] = next()
		}
	}
	for cr := 0; cr < CastlingRightsLength; cr++ {
		zobristKeys.castling[cr] = next()
	}
	for f := 0; f < len(zobristKeys.epFile); f++ {
		zobristKeys.epFile[f] = next()
	}
	zobristKeys.side = next()
}

// epKeyIndex maps an en passant square to its key slot; slot 0 is
// "no en passant capture possible".
func epKeyIndex(epSquare Square) int {
	if epSquare == SqNone {
		return 0
	}
	return int(epSquare.FileOf()) + 1
}
