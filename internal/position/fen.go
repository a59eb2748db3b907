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
	"fmt"
	"strconv"
	"strings"

	. "github.com/kforge/zobrist/internal/types"
)

// NewPosition creates a position from a fen string, or the standard
// starting position when no fen is given. Errors in the fen panic;
// use NewPositionFen when the input is untrusted.
func NewPosition(fen ...string) *Position {
	f := StartFen
	if len(fen) > 0 {
		f = fen[0]
	}
	p, err := NewPositionFen(f)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen creates a position from the given fen string. A
// malformed fen is rejected with a descriptive error and no
// position is produced.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{}
	p.epSquare = SqNone
	p.kingSquare[White] = SqNone
	p.kingSquare[Black] = SqNone
	p.checkState = checkUnknown

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen must have at least 4 fields: %q", fen)
	}

	// field 1: piece placement, rank 8 down to rank 1
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("fen board must have 8 ranks: %q", fields[0])
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		f := FileA
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			pc := PieceFromChar(ch)
			if pc == PieceNone {
				return nil, fmt.Errorf("fen has invalid piece letter %q", string(ch))
			}
			if f > FileH {
				return nil, fmt.Errorf("fen rank %s has too many squares: %q", r.String(), rankStr)
			}
			p.putPiece(pc, SquareOf(f, r))
			f++
		}
		if f != FileNone {
			return nil, fmt.Errorf("fen rank %s does not fill 8 squares: %q", r.String(), rankStr)
		}
	}
	if p.piecesBb[White][King].PopCount() != 1 || p.piecesBb[Black][King].PopCount() != 1 {
		return nil, fmt.Errorf("fen must have exactly one king per side: %q", fields[0])
	}

	// field 2: side to move
	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.key ^= zobristKeys.side
	default:
		return nil, fmt.Errorf("fen side to move must be w or b: %q", fields[1])
	}

	// field 3: castling rights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.castling.Add(CastlingWhiteOO)
			case 'Q':
				p.castling.Add(CastlingWhiteOOO)
			case 'k':
				p.castling.Add(CastlingBlackOO)
			case 'q':
				p.castling.Add(CastlingBlackOOO)
			default:
				return nil, fmt.Errorf("fen has invalid castling rights: %q", fields[2])
			}
		}
	}
	p.key ^= zobristKeys.castling[p.castling]

	// field 4: en passant target square
	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, fmt.Errorf("fen has invalid en passant square: %q", fields[3])
		}
		p.epSquare = sq
	}
	p.key ^= zobristKeys.epFile[epKeyIndex(p.epSquare)]

	// fields 5 and 6 are optional: half move clock and full move
	// number
	p.halfMoveClock = 0
	moveNumber := 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("fen has invalid half move clock: %q", fields[4])
		}
		p.halfMoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("fen has invalid move number: %q", fields[5])
		}
		moveNumber = n
	}
	p.plyCount = 2 * (moveNumber - 1)
	if p.sideToMove == Black {
		p.plyCount++
	}

	return p, nil
}

// StringFen returns the position as a fen string.
func (p *Position) StringFen() string {
	var sb strings.Builder

	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		sb.WriteString("/")
	}

	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castling.String())
	sb.WriteString(" ")
	sb.WriteString(p.epSquare.String())
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.MoveNumber()))

	return sb.String()
}
