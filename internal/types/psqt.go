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
package types

// Piece square tables. Tables are written rank 8 first, the way
// they read naturally from white's side of the board, and indexed
// through Square.Flip for white pieces.
//
// Knights, bishops, rooks and queens use one table for the whole
// game. Pawns and kings change their role drastically once material
// comes off, so they carry a middlegame and an endgame table and
// the evaluation blends the two by the endgame weight.

var pawnMgTable = [SqLength]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 10, 20, 20, 0, 0, 0,
	5, -20, 5, 0, 0, -20, -20, 5,
	10, 10, 10, -20, -20, 10, 10, 10,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var pawnEgTable = [SqLength]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	100, 100, 100, 100, 100, 100, 100, 100,
	70, 70, 70, 70, 70, 70, 70, 70,
	50, 50, 50, 50, 50, 50, 50, 50,
	30, 30, 30, 30, 30, 30, 30, 30,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [SqLength]Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [SqLength]Value{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [SqLength]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [SqLength]Value{
	-20, -10, -10, 0, 0, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, 0, 0, -10, -10, -20,
}

var kingMgTable = [SqLength]Value{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, -20, -25, -25, -20, 20, 20,
	20, 30, 20, -40, -10, -40, 30, 20,
}

var kingEgTable = [SqLength]Value{
	-50, -40, -30, -20, -20, -30, -40, -50,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-50, -30, -30, -30, -30, -30, -30, -50,
}

// combined per piece type, middlegame and endgame
var psqtMg [PtLength][SqLength]Value
var psqtEg [PtLength][SqLength]Value

func initPsqt() {
	for sq := SqA1; sq < SqNone; sq++ {
		psqtMg[Pawn][sq] = pawnMgTable[sq]
		psqtEg[Pawn][sq] = pawnEgTable[sq]
		psqtMg[King][sq] = kingMgTable[sq]
		psqtEg[King][sq] = kingEgTable[sq]
		for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
			var t *[SqLength]Value
			switch pt {
			case Knight:
				t = &knightTable
			case Bishop:
				t = &bishopTable
			case Rook:
				t = &rookTable
			case Queen:
				t = &queenTable
			}
			psqtMg[pt][sq] = t[sq]
			psqtEg[pt][sq] = t[sq]
		}
	}
}

// psqtIndex flips the square for white pieces; the tables are laid
// out from black's point of view.
func psqtIndex(p Piece, sq Square) Square {
	if p.ColorOf() == White {
		return sq.Flip()
	}
	return sq
}

// PsqtMg returns the middlegame piece square value of the piece on
// the square.
func PsqtMg(p Piece, sq Square) Value {
	return psqtMg[p.TypeOf()][psqtIndex(p, sq)]
}

// PsqtEg returns the endgame piece square value of the piece on the
// square.
func PsqtEg(p Piece, sq Square) Value {
	return psqtEg[p.TypeOf()][psqtIndex(p, sq)]
}

// MvvLva orders captures by most valuable victim first, least
// valuable aggressor second. Indexed by [attacker type][victim
// type].
var MvvLva = [PtLength][PtLength]Value{
	Pawn:   {0, 15, 25, 35, 45, 55, 65},
	Knight: {0, 14, 24, 34, 44, 54, 64},
	Bishop: {0, 13, 23, 33, 43, 53, 63},
	Rook:   {0, 12, 22, 32, 42, 52, 62},
	Queen:  {0, 11, 21, 31, 41, 51, 61},
	King:   {0, 10, 20, 30, 40, 50, 60},
}
