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
// Package movegen generates pseudo legal and legal chess moves for
// a position and orders them for the search: principal variation
// and hash move first, then captures by most-valuable-victim /
// least-valuable-aggressor, then quiet moves by killer and history
// ranking.
package movegen

import (
	"regexp"
	"strings"

	"github.com/kforge/zobrist/internal/config"
	"github.com/kforge/zobrist/internal/history"
	"github.com/kforge/zobrist/internal/moveslice"
	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

// GenMode selects which kinds of moves to generate.
type GenMode uint8

const (
	GenZero     GenMode = 0b00
	GenCaptures GenMode = 0b01
	GenQuiet    GenMode = 0b10
	GenAll      GenMode = 0b11
)

// Movegen generates and orders moves for one ply of the search.
// Each search ply owns its own instance, so the two killer slots
// are per ply as they should be.
type Movegen struct {
	pseudo *moveslice.MoveSlice
	legal  *moveslice.MoveSlice

	// iterator state for GetNextMove
	iter      *moveslice.MoveSlice
	iterKey   Key
	iterMode  GenMode
	takeIndex int

	pvMove   Move
	hashMove Move
	killers  [2]Move
	hist     *history.History
}

// NewMoveGen creates a move generator.
func NewMoveGen() *Movegen {
	return &Movegen{
		pseudo: moveslice.NewMoveSlice(MaxMoves),
		legal:  moveslice.NewMoveSlice(MaxMoves),
		iter:   moveslice.NewMoveSlice(MaxMoves),
	}
}

// SetPvMove marks the principal variation move of this ply; it will
// be sorted first.
func (mg *Movegen) SetPvMove(m Move) {
	mg.pvMove = m.Record()
	mg.iterKey = 0 // force re-sort
}

// SetHashMove marks the transposition table move of this ply; it
// will be sorted directly after the pv move.
func (mg *Movegen) SetHashMove(m Move) {
	mg.hashMove = m.Record()
	mg.iterKey = 0
}

// SetHistoryData gives the generator access to the search's history
// table for quiet move ordering.
func (mg *Movegen) SetHistoryData(h *history.History) {
	mg.hist = h
}

// StoreKiller remembers a quiet move that caused a beta cutoff at
// this ply. The newest killer takes slot 0, pushing the previous
// one to slot 1, unless it already is the newest.
func (mg *Movegen) StoreKiller(m Move) {
	m = m.Record()
	if mg.killers[0] != m {
		mg.killers[1] = mg.killers[0]
		mg.killers[0] = m
	}
}

// KillerMoves returns the two killer slots of this ply.
func (mg *Movegen) KillerMoves() *[2]Move {
	return &mg.killers
}

// ResetOnDemand clears the move iterator and its pv/hash markers.
// Called when a node starts using this ply's generator.
func (mg *Movegen) ResetOnDemand() {
	mg.iterKey = 0
	mg.takeIndex = 0
	mg.pvMove = MoveNone
	mg.hashMove = MoveNone
}

// GetNextMove hands out the position's pseudo legal moves one by
// one in sorted order. The caller is expected to test legality via
// DoMove/WasLegalMove. Changing the position or the mode restarts
// the iteration.
func (mg *Movegen) GetNextMove(p *position.Position, mode GenMode) Move {
	if mg.iterKey != p.ZobristKey() || mg.iterMode != mode {
		mg.iter.Clear()
		mg.generate(p, mode, mg.iter)
		mg.scoreMoves(p, mg.iter)
		mg.iter.Sort()
		mg.iterKey = p.ZobristKey()
		mg.iterMode = mode
		mg.takeIndex = 0
	}
	if mg.takeIndex >= mg.iter.Len() {
		return MoveNone
	}
	m := mg.iter.At(mg.takeIndex)
	mg.takeIndex++
	return m
}

// GeneratePseudoLegalMoves returns all pseudo legal moves of the
// side to move in generation order.
func (mg *Movegen) GeneratePseudoLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.pseudo.Clear()
	mg.generate(p, mode, mg.pseudo)
	return mg.pseudo
}

// GenerateLegalMoves filters the pseudo legal moves down to the
// moves that do not leave the own king in check.
func (mg *Movegen) GenerateLegalMoves(p *position.Position, mode GenMode) *moveslice.MoveSlice {
	mg.legal.Clear()
	mg.pseudo.Clear()
	mg.generate(p, mode, mg.pseudo)
	for i := 0; i < mg.pseudo.Len(); i++ {
		m := mg.pseudo.At(i)
		p.DoMove(m)
		if p.WasLegalMove() {
			mg.legal.PushBack(m)
		}
		p.UndoMove()
	}
	return mg.legal
}

// HasLegalMove reports whether the side to move has at least one
// legal move, without generating all of them.
func (mg *Movegen) HasLegalMove(p *position.Position) bool {
	mg.pseudo.Clear()
	mg.generate(p, GenAll, mg.pseudo)
	for i := 0; i < mg.pseudo.Len(); i++ {
		p.DoMove(mg.pseudo.At(i))
		legal := p.WasLegalMove()
		p.UndoMove()
		if legal {
			return true
		}
	}
	return false
}

// ValidateMove reports whether the move is legal in the position.
func (mg *Movegen) ValidateMove(p *position.Position, m Move) bool {
	if !m.IsValid() {
		return false
	}
	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i).Record() == m.Record() {
			return true
		}
	}
	return false
}

// GetMoveFromUci resolves a uci coordinate string ("e2e4",
// "e7e8q") against the legal moves of the position. MoveNone when
// the string is malformed or names no legal move.
func (mg *Movegen) GetMoveFromUci(p *position.Position, uciMove string) Move {
	if len(uciMove) < 4 || len(uciMove) > 5 {
		return MoveNone
	}
	from := MakeSquare(uciMove[0:2])
	to := MakeSquare(uciMove[2:4])
	if from == SqNone || to == SqNone {
		return MoveNone
	}
	promo := PtNone
	if len(uciMove) == 5 {
		switch uciMove[4] {
		case 'n', 'N':
			promo = Knight
		case 'b', 'B':
			promo = Bishop
		case 'r', 'R':
			promo = Rook
		case 'q', 'Q':
			promo = Queen
		default:
			return MoveNone
		}
	}
	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From() == from && m.To() == to && m.PromotionType() == promo {
			return m.Record()
		}
	}
	return MoveNone
}

var regexSanMove = regexp.MustCompile("([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?")

// GetMoveFromSan resolves a standard algebraic notation move
// ("Nf3", "exd5", "a8=Q", "O-O") against the legal moves of the
// position. MoveNone when the string is malformed, names no legal
// move or is ambiguous.
func (mg *Movegen) GetMoveFromSan(p *position.Position, sanMove string) Move {
	matches := regexSanMove.FindStringSubmatch(sanMove)
	if matches == nil {
		return MoveNone
	}
	pieceLetter := matches[1]
	fromFile := matches[2]
	fromRank := matches[3]
	target := matches[4]
	promoLetter := matches[6]

	found := MoveNone
	hits := 0

	legal := mg.GenerateLegalMoves(p, GenAll)
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)

		if m.Flag() == FlagShortCastle || m.Flag() == FlagLongCastle {
			want := "O-O"
			if m.Flag() == FlagLongCastle {
				want = "O-O-O"
			}
			if want == target {
				found = m
				hits++
			}
			continue
		}

		if m.To().String() != target {
			continue
		}
		pt := m.Piece().TypeOf()
		if pieceLetter == "" {
			if pt != Pawn {
				continue
			}
		} else if pt.String() != pieceLetter {
			continue
		}
		if fromFile != "" && m.From().FileOf().String() != fromFile {
			continue
		}
		if fromRank != "" && m.From().RankOf().String() != fromRank {
			continue
		}
		if promoLetter != "" {
			if m.PromotionType().String() != promoLetter {
				continue
			}
		} else if m.Flag().IsPromotion() {
			continue
		}
		found = m
		hits++
	}

	if hits != 1 {
		return MoveNone
	}
	return found.Record()
}

// String lists all legal moves of the last generated position.
func (mg *Movegen) String() string {
	var sb strings.Builder
	sb.WriteString(mg.legal.StringUci())
	return sb.String()
}

// ///////////////////////////////////////////////////////////
// generation
// ///////////////////////////////////////////////////////////

// generate appends all pseudo legal moves of the requested kinds to
// the list.
func (mg *Movegen) generate(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	mg.generatePawnMoves(p, mode, ml)
	mg.generatePieceMoves(p, mode, ml)
	if mode&GenQuiet != 0 {
		mg.generateCastling(p, ml)
	}
}

// pawn capture directions and their inverse, per color
var pawnCaptureDirs = [ColorLength][2]Direction{
	White: {Northeast, Northwest},
	Black: {Southeast, Southwest},
}

func (mg *Movegen) generatePawnMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	up := us.Up()
	pawn := MakePiece(us, Pawn)
	pawns := p.PiecesBb(us, Pawn)
	occupied := p.OccupiedAll()
	enemy := p.Occupied(us.Flip())
	promoRank := us.PromotionRankBb()

	doubleRank := Rank3.Bb()
	if us == Black {
		doubleRank = Rank6.Bb()
	}

	if mode&GenCaptures != 0 {
		// diagonal captures, promotions included
		for _, dir := range pawnCaptureDirs[us] {
			targets := pawns.Shift(dir) & enemy
			for bb := targets; bb != 0; {
				to := bb.PopLsb()
				from := to.To(-dir)
				captured := p.PieceOn(to)
				if promoRank.Has(to) {
					pushPromotions(ml, from, to, pawn, captured)
				} else {
					ml.PushBack(MakeMove(from, to, pawn, captured, FlagQuiet))
				}
			}
		}

		// en passant
		if ep := p.EnPassantSquare(); ep != SqNone {
			captured := MakePiece(us.Flip(), Pawn)
			for bb := PawnAttacksBb(us.Flip(), ep) & pawns; bb != 0; {
				from := bb.PopLsb()
				ml.PushBack(MakeMove(from, ep, pawn, captured, FlagEnPassant))
			}
		}

		// quiet queen promotions may be treated as non quiet moves
		// so quiescence considers them
		if config.Settings.Search.UsePromNonQuiet {
			for bb := pawns.Shift(up) &^ occupied & promoRank; bb != 0; {
				to := bb.PopLsb()
				ml.PushBack(MakeMove(to.To(-up), to, pawn, PieceNone, FlagPromoteQueen))
			}
		}
	}

	if mode&GenQuiet != 0 {
		single := pawns.Shift(up) &^ occupied
		double := (single & doubleRank).Shift(up) &^ occupied

		// promotions by pushing
		for bb := single & promoRank; bb != 0; {
			to := bb.PopLsb()
			from := to.To(-up)
			ml.PushBack(MakeMove(from, to, pawn, PieceNone, FlagPromoteKnight))
			ml.PushBack(MakeMove(from, to, pawn, PieceNone, FlagPromoteBishop))
			ml.PushBack(MakeMove(from, to, pawn, PieceNone, FlagPromoteRook))
			// the queen promotion may already be generated with the
			// captures, see above
			if !config.Settings.Search.UsePromNonQuiet {
				ml.PushBack(MakeMove(from, to, pawn, PieceNone, FlagPromoteQueen))
			}
		}

		for bb := single &^ promoRank; bb != 0; {
			to := bb.PopLsb()
			ml.PushBack(MakeMove(to.To(-up), to, pawn, PieceNone, FlagQuiet))
		}
		for bb := double; bb != 0; {
			to := bb.PopLsb()
			ml.PushBack(MakeMove(to.To(-up).To(-up), to, pawn, PieceNone, FlagDoublePawnPush))
		}
	}
}

func pushPromotions(ml *moveslice.MoveSlice, from, to Square, pawn, captured Piece) {
	ml.PushBack(MakeMove(from, to, pawn, captured, FlagPromoteQueen))
	ml.PushBack(MakeMove(from, to, pawn, captured, FlagPromoteKnight))
	ml.PushBack(MakeMove(from, to, pawn, captured, FlagPromoteRook))
	ml.PushBack(MakeMove(from, to, pawn, captured, FlagPromoteBishop))
}

// generatePieceMoves handles knights, bishops, rooks, queens and
// the king, dispatching on the piece type for the attack set.
func (mg *Movegen) generatePieceMoves(p *position.Position, mode GenMode, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	occupied := p.OccupiedAll()
	enemy := p.Occupied(us.Flip())

	for pt := Knight; pt <= King; pt++ {
		piece := MakePiece(us, pt)
		for fromBb := p.PiecesBb(us, pt); fromBb != 0; {
			from := fromBb.PopLsb()

			var attacks Bitboard
			switch pt {
			case Knight:
				attacks = KnightAttacksBb(from)
			case Bishop:
				attacks = BishopAttacksBb(from, occupied)
			case Rook:
				attacks = RookAttacksBb(from, occupied)
			case Queen:
				attacks = QueenAttacksBb(from, occupied)
			case King:
				attacks = KingAttacksBb(from)
			}

			if mode&GenCaptures != 0 {
				for bb := attacks & enemy; bb != 0; {
					to := bb.PopLsb()
					ml.PushBack(MakeMove(from, to, piece, p.PieceOn(to), FlagQuiet))
				}
			}
			if mode&GenQuiet != 0 {
				for bb := attacks &^ occupied; bb != 0; {
					to := bb.PopLsb()
					ml.PushBack(MakeMove(from, to, piece, PieceNone, FlagQuiet))
				}
			}
		}
	}
}

// generateCastling generates the castling moves the rules allow:
// the right must be held, the squares between king and rook must be
// empty, the king must not be in check and must not cross or land
// on an attacked square. The square next to the rook on the long
// side only needs to be empty - it may be attacked, the king never
// touches it.
func (mg *Movegen) generateCastling(p *position.Position, ml *moveslice.MoveSlice) {
	us := p.SideToMove()
	them := us.Flip()
	occupied := p.OccupiedAll()
	king := MakePiece(us, King)

	type castle struct {
		right    CastlingRights
		kingFrom Square
		kingTo   Square
		rookFrom Square
		flag     MoveFlag
	}
	var candidates [2]castle
	if us == White {
		candidates = [2]castle{
			{CastlingWhiteOO, SqE1, SqG1, SqH1, FlagShortCastle},
			{CastlingWhiteOOO, SqE1, SqC1, SqA1, FlagLongCastle},
		}
	} else {
		candidates = [2]castle{
			{CastlingBlackOO, SqE8, SqG8, SqH8, FlagShortCastle},
			{CastlingBlackOOO, SqE8, SqC8, SqA8, FlagLongCastle},
		}
	}

	for _, c := range candidates {
		if !p.CastlingRights().Has(c.right) {
			continue
		}
		if Between(c.kingFrom, c.rookFrom)&occupied != 0 {
			continue
		}
		if p.IsAttacked(c.kingFrom, them) {
			continue
		}
		// the king steps over one square and lands on the next;
		// both must be safe
		safe := !p.IsAttacked(c.kingTo, them)
		for t := Between(c.kingFrom, c.kingTo); safe && t != 0; {
			if p.IsAttacked(t.PopLsb(), them) {
				safe = false
			}
		}
		if !safe {
			continue
		}
		ml.PushBack(MakeMove(c.kingFrom, c.kingTo, king, PieceNone, c.flag))
	}
}

// ///////////////////////////////////////////////////////////
// ordering
// ///////////////////////////////////////////////////////////

const (
	scorePv      = ValueInfinite
	scoreHash    = ValueInfinite - 1
	scoreCapture = Value(8_000)
	scoreKiller  = Value(5_000)

	// history scores are clamped below the killer bonus
	historyCap = int64(4_000)
)

// scoreMoves attaches a sort score to every move of the list:
//
//  1. the pv move of this ply
//  2. the hash move from the transposition table
//  3. captures by MVV-LVA
//  4. quiet moves: killer bonus plus history counter
//
// and a penalty when the target square is attacked by the opponent,
// scaled by the worth of the piece that would hang there.
func (mg *Movegen) scoreMoves(p *position.Position, ml *moveslice.MoveSlice) {
	attacked := attackedSquares(p, p.SideToMove().Flip())

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		record := m.Record()

		var score Value
		switch record {
		case mg.pvMove:
			score = scorePv
		case mg.hashMove:
			score = scoreHash
		default:
			if m.IsCapture() {
				score = MvvLva[m.Piece().TypeOf()][m.Captured().TypeOf()] + scoreCapture
			} else {
				if record == mg.killers[0] || record == mg.killers[1] {
					score += scoreKiller
				}
				if mg.hist != nil {
					h := mg.hist.Get(m.Piece(), m.To())
					if h > historyCap {
						h = historyCap
					}
					score += Value(h)
				}
			}
			if attacked.Has(m.To()) {
				score -= 2 * m.Piece().Worth()
			}
		}
		ml.Set(i, m.WithScore(score))
	}
}

// attackedSquares returns the union of all squares the given color
// attacks with the current occupancy.
func attackedSquares(p *position.Position, c Color) Bitboard {
	occupied := p.OccupiedAll()
	attacks := Bitboard(0)

	pawns := p.PiecesBb(c, Pawn)
	if c == White {
		attacks |= pawns.Shift(Northeast) | pawns.Shift(Northwest)
	} else {
		attacks |= pawns.Shift(Southeast) | pawns.Shift(Southwest)
	}
	for bb := p.PiecesBb(c, Knight); bb != 0; {
		attacks |= KnightAttacksBb(bb.PopLsb())
	}
	for bb := p.PiecesBb(c, Bishop); bb != 0; {
		attacks |= BishopAttacksBb(bb.PopLsb(), occupied)
	}
	for bb := p.PiecesBb(c, Rook); bb != 0; {
		attacks |= RookAttacksBb(bb.PopLsb(), occupied)
	}
	for bb := p.PiecesBb(c, Queen); bb != 0; {
		attacks |= QueenAttacksBb(bb.PopLsb(), occupied)
	}
	attacks |= KingAttacksBb(p.KingSquare(c))
	return attacks
}
