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
package search

import (
	. "github.com/kforge/zobrist/internal/config"
	"github.com/kforge/zobrist/internal/movegen"
	"github.com/kforge/zobrist/internal/moveslice"
	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

// rootSearch searches all root moves at the given depth and returns
// the best value found. Root moves keep their value for sorting the
// next iteration; the best line is copied into pv[0].
func (s *Search) rootSearch(p *position.Position, depth int, alpha, beta Value) Value {
	bestValue := ValueNA

	for i := 0; i < s.rootMoves.Len(); i++ {
		m := s.rootMoves.At(i)

		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m
		s.sendCurrentRootMoveToUci()

		p.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)

		var value Value
		if s.checkDraw(p, 2) {
			value = ValueDraw
		} else if !Settings.Search.UsePVS || i == 0 {
			// first move gets the full window, it is the assumed pv
			value = -s.search(p, depth-1, 1, -beta, -alpha, true, true)
		} else {
			// all other root moves only have to prove they are not
			// better than the pv move
			value = -s.search(p, depth-1, 1, -alpha-1, -alpha, false, true)
			if value > alpha && value < beta && !s.stopConditions() {
				s.statistics.RootPvsResearches++
				value = -s.search(p, depth-1, 1, -beta, -alpha, true, true)
			}
		}

		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		// an interrupted move has no meaningful value; the iteration
		// commits what finished before the deadline
		if s.stopConditions() {
			return bestValue
		}

		s.rootMoves.Set(i, m.WithScore(value))

		if value > bestValue {
			bestValue = value
			if value > alpha {
				alpha = value
			}
			savePV(m, s.pv[1], s.pv[0])
		}
	}

	return bestValue
}

// aspirationSearch wraps rootSearch in a narrow window centered on
// the previous iteration's value. A fail low or high widens the
// window by the growth factor and repeats until the value lands
// inside the window.
func (s *Search) aspirationSearch(p *position.Position, depth int, previous Value) Value {
	if previous == ValueNA {
		return s.rootSearch(p, depth, ValueMin, ValueMax)
	}

	window := aspirationWindow
	alpha := clampValue(previous - window)
	beta := clampValue(previous + window)

	value := s.rootSearch(p, depth, alpha, beta)

	for !s.stopConditions() && (value <= alpha || value >= beta) {
		s.statistics.AspirationResearches++
		if value <= alpha {
			s.sendAspirationResearchInfo("upperbound")
		} else {
			s.sendAspirationResearchInfo("lowerbound")
		}
		window *= aspirationGrowFactor
		if window >= ValueMax {
			alpha, beta = ValueMin, ValueMax
		} else {
			alpha = clampValue(value - window)
			beta = clampValue(value + window)
		}
		value = s.rootSearch(p, depth, alpha, beta)
	}
	return value
}

// mtdf is an experimental alternative to the aspiration search
// converging on the minimax value with zero window searches only.
// https://www.chessprogramming.org/MTD(f)
func (s *Search) mtdf(p *position.Position, depth int, f Value) Value {
	if f == ValueNA {
		f = ValueDraw
	}
	g := f
	upper := ValueMax
	lower := ValueMin
	for lower < upper && !s.stopConditions() {
		beta := g
		if g == lower {
			beta = g + 1
		}
		g = s.rootSearch(p, depth, beta-1, beta)
		if g < beta {
			upper = g
		} else {
			lower = g
		}
	}
	return g
}

func clampValue(v Value) Value {
	if v < ValueMin {
		return ValueMin
	}
	if v > ValueMax {
		return ValueMax
	}
	return v
}

// search is the recursive negamax alpha beta search below the root.
// It returns the value of the position from the point of view of
// the side to move. A cancelled search returns ValueNA which the
// caller discards.
func (s *Search) search(p *position.Position, depth, ply int, alpha, beta Value, isPV, doNull bool) Value {
	if s.stopConditions() {
		return ValueNA
	}

	// at the horizon resolve captures before evaluating
	if depth <= 0 || ply >= MaxPly {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	// repetitions, the fifty move rule and dead material are draws
	// no matter what the material count says
	if s.checkDraw(p, 2) {
		s.statistics.DrawScores++
		return ValueDraw
	}

	// mate distance pruning: a mate found earlier bounds what this
	// subtree can still achieve
	if Settings.Search.UseMDP {
		if alpha < -ValueCheckmate+Value(ply) {
			alpha = -ValueCheckmate + Value(ply)
		}
		if beta > ValueCheckmate-Value(ply) {
			beta = ValueCheckmate - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	us := p.SideToMove()
	hasCheck := p.HasCheck()
	ttMove := MoveNone

	// transposition table: a usable value ends this node, a stored
	// move still improves the ordering
	if Settings.Search.UseTT && s.tt != nil {
		ttValue, ttM, usable := s.tt.Probe(p.ZobristKey(), depth, ply, alpha, beta)
		ttMove = ttM
		if usable {
			s.statistics.TTHit++
			if Settings.Search.UseTTValue {
				s.statistics.TTCuts++
				// keep a pv to report by walking the tt move chain
				if isPV {
					s.getPVLine(p, s.pv[ply], depth)
				}
				return ttValue
			}
		} else if ttMove == MoveNone {
			s.statistics.TTMiss++
		}
	}

	// razoring: when the static eval at a pre-frontier node is a
	// queen below alpha and nothing tactical just happened, drop a
	// ply early
	if Settings.Search.UseRazoring &&
		depth == 3 &&
		!hasCheck &&
		!p.LastMove().IsCapture() {
		if s.evaluate(p)+Value(Settings.Search.RazorMargin) < alpha {
			s.statistics.RazorPrunings++
			depth--
		}
	}

	// reverse futility: a static eval far above beta at a shallow
	// node will rarely come back down
	if Settings.Search.UseRFP &&
		!isPV &&
		!hasCheck &&
		doNull &&
		depth < len(rfpMargin) {
		if margin := rfpMargin[depth]; s.evaluate(p)-margin >= beta {
			s.statistics.RfpPrunings++
			return beta
		}
	}

	// null move pruning: if passing the move still busts beta the
	// opponent's position is hopeless. Not in check (illegal), not
	// without material (zugzwang), never twice in a row.
	if Settings.Search.UseNullMove &&
		doNull &&
		!isPV &&
		!hasCheck &&
		depth >= Settings.Search.NmpDepth &&
		p.MaterialNonPawn(us) > 0 {
		p.DoNullMove()
		s.nodesVisited++
		nullValue := -s.search(p, depth-Settings.Search.NmpReduction-1, ply+1, -beta, -beta+1, false, false)
		p.UndoNullMove()
		if s.stopConditions() {
			return ValueNA
		}
		if nullValue >= beta && !nullValue.IsCheckmateValue() {
			s.statistics.NullMoveCuts++
			return nullValue
		}
	}

	// internal iterative deepening: a pv node without a hash move
	// is searched shallowly first just to obtain one
	if Settings.Search.UseIID &&
		isPV &&
		doNull &&
		ttMove == MoveNone &&
		depth >= Settings.Search.IIDDepth {
		s.statistics.IIDsearches++
		s.search(p, depth-Settings.Search.IIDReduction, ply, alpha, beta, isPV, true)
		if s.stopConditions() {
			return ValueNA
		}
		if s.pv[ply].Len() > 0 {
			s.statistics.IIDmoves++
			ttMove = s.pv[ply].At(0).Record()
		}
	}

	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if Settings.Search.UseTTMove && ttMove != MoveNone {
		s.statistics.TTMoveUsed++
		myMg.SetHashMove(ttMove)
	}

	// static eval of this node for the forward pruning decisions
	staticEval := ValueNA
	if !hasCheck && (Settings.Search.UseFP || Settings.Search.UseLmp) {
		staticEval = s.evaluate(p)
	}

	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttBound := BoundUpper
	movesSearched := 0

	for m := myMg.GetNextMove(p, movegen.GenAll); m != MoveNone; m = myMg.GetNextMove(p, movegen.GenAll) {

		p.DoMove(m)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.sendSearchUpdateToUci()

		givesCheck := p.HasCheck()
		quiet := !m.IsCapture() && !m.Flag().IsPromotion()

		// search extensions: a check and a pawn stepping to its
		// seventh rank are too hot to cut off at this depth
		extension := 0
		if Settings.Search.UseExt {
			if Settings.Search.UseCheckExt && givesCheck {
				s.statistics.CheckExtension++
				extension = 1
			}
			if Settings.Search.UsePawnExt && extension == 0 &&
				m.Piece().TypeOf() == Pawn &&
				((us == White && m.To().RankOf() == Rank7) ||
					(us == Black && m.To().RankOf() == Rank2)) {
				s.statistics.PawnExtension++
				extension = 1
			}
		}
		newDepth := depth - 1 + extension

		// forward pruning of late quiet moves that neither give
		// check nor escape one
		if !isPV && extension == 0 && quiet && !hasCheck && !givesCheck &&
			m.Record() != ttMove {

			if Settings.Search.UseFP && depth < len(fpMargin) &&
				staticEval.IsValid() && staticEval+fpMargin[depth] <= alpha {
				s.statistics.FpPrunings++
				s.statistics.CurrentVariation.PopBack()
				p.UndoMove()
				continue
			}

			if Settings.Search.UseLmp && movesSearched >= lmpMoveLimit(depth) {
				s.statistics.LmpCuts++
				s.statistics.CurrentVariation.PopBack()
				p.UndoMove()
				continue
			}
		}

		// principal variation search with late move reductions:
		// the first move gets the full window, later quiet moves a
		// null window and, deep enough and late enough, a reduced
		// depth; a surprise better value forces the full re-search
		var value Value
		if !Settings.Search.UsePVS || movesSearched == 0 {
			value = -s.search(p, newDepth, ply+1, -beta, -alpha, isPV, true)
		} else {
			lmrDepth := newDepth
			if Settings.Search.UseLmr &&
				extension == 0 &&
				quiet &&
				!hasCheck &&
				!givesCheck &&
				depth >= Settings.Search.LmrDepth &&
				movesSearched >= Settings.Search.LmrMovesSearched {
				lmrDepth = newDepth - Settings.Search.LmrReduction
				if lmrDepth < 0 {
					lmrDepth = 0
				}
				s.statistics.LmrReductions++
			}
			value = -s.search(p, lmrDepth, ply+1, -alpha-1, -alpha, false, true)
			if value > alpha && !s.stopConditions() {
				if lmrDepth < newDepth {
					s.statistics.LmrResearches++
					value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
				} else if value < beta {
					s.statistics.PvsResearches++
					value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
				}
			}
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = m

			if value > alpha {
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					// quiet cutoff moves feed the killer slots and
					// the history table, weighted by depth squared
					if quiet {
						if Settings.Search.UseKiller {
							myMg.StoreKiller(m)
						}
						if Settings.Search.UseHistory {
							s.history.Add(m.Piece(), m.To(), depth)
						}
					}
					ttBound = BoundLower
					break
				}
				alpha = value
				ttBound = BoundExact
				savePV(m, s.pv[ply+1], s.pv[ply])
			}
		}
	}

	// no legal move is either mate or stalemate
	if movesSearched == 0 && !s.stopConditions() {
		if hasCheck {
			s.statistics.Checkmates++
			bestNodeValue = -ValueCheckmate + Value(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		ttBound = BoundExact
	}

	if Settings.Search.UseTT && s.tt != nil && bestNodeValue.IsValid() {
		s.tt.Store(p.ZobristKey(), depth, bestNodeValue, ply, bestNodeMove, ttBound)
	}

	return bestNodeValue
}

// qsearch resolves tactical instability below the horizon by only
// searching captures (all moves while in check). The side to move
// may always choose to stand pat on its static eval, which bounds
// the result from below.
func (s *Search) qsearch(p *position.Position, ply int, alpha, beta Value, isPV bool) Value {
	if s.stopConditions() {
		return ValueNA
	}
	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if !Settings.Search.UseQuiescence || ply >= MaxPly {
		return s.evaluate(p)
	}

	hasCheck := p.HasCheck()
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttBound := BoundUpper

	// standing pat - not available while in check, there is no
	// "doing nothing" then
	if !hasCheck {
		standPat := s.evaluate(p)
		bestNodeValue = standPat
		if Settings.Search.UseQSStandpat {
			if standPat >= beta {
				s.statistics.StandpatCuts++
				return standPat
			}
			if standPat > alpha {
				alpha = standPat
			}
		}
	}

	ttMove := MoveNone
	if Settings.Search.UseQSTT && s.tt != nil {
		ttValue, ttM, usable := s.tt.Probe(p.ZobristKey(), 0, ply, alpha, beta)
		ttMove = ttM
		if usable {
			s.statistics.TTHit++
			s.statistics.TTCuts++
			return ttValue
		}
	}

	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()
	if ttMove != MoveNone {
		myMg.SetHashMove(ttMove)
	}

	// in check every move is searched, otherwise captures only -
	// they are generated pre-sorted by MVV-LVA
	mode := movegen.GenCaptures
	if hasCheck {
		s.statistics.CheckInQS++
		mode = movegen.GenAll
	}

	movesSearched := 0
	for m := myMg.GetNextMove(p, mode); m != MoveNone; m = myMg.GetNextMove(p, mode) {

		// optional futility pruning of captures that cannot close
		// the gap to alpha even with a margin
		if Settings.Search.UseQFP && !hasCheck && !m.Flag().IsPromotion() &&
			bestNodeValue.IsValid() &&
			bestNodeValue+m.Captured().Worth()+200 <= alpha {
			s.statistics.QFpPrunings++
			continue
		}

		p.DoMove(m)
		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.sendSearchUpdateToUci()

		var value Value
		if hasCheck && s.checkDraw(p, 2) {
			// only reachable when in check: quiet replies can
			// repeat, captures never can
			value = ValueDraw
		} else {
			value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = m
			if value > alpha {
				if value >= beta {
					s.statistics.BetaCuts++
					ttBound = BoundLower
					break
				}
				alpha = value
				ttBound = BoundExact
				savePV(m, s.pv[ply+1], s.pv[ply])
			}
		}
	}

	// with no move searched: in check this is mate; otherwise only
	// quiet moves remain and the stand pat value stands
	if movesSearched == 0 && !s.stopConditions() && hasCheck {
		s.statistics.Checkmates++
		bestNodeValue = -ValueCheckmate + Value(ply)
		ttBound = BoundExact
	}

	if Settings.Search.UseQSTT && s.tt != nil && bestNodeValue.IsValid() {
		s.tt.Store(p.ZobristKey(), 0, bestNodeValue, ply, bestNodeMove, ttBound)
	}

	return bestNodeValue
}

// evaluate calls the static evaluation and counts it.
func (s *Search) evaluate(p *position.Position) Value {
	s.statistics.Evaluations++
	return s.eval.Evaluate(p)
}

// savePV makes move the head of the child pv and stores the result
// as this ply's pv.
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// getPVLine walks the chain of best moves stored in the tt from the
// current position. Used to show a pv when a tt cut ended the
// search of a node early.
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	pv.Clear()
	if s.tt == nil {
		return
	}
	count := 0
	for count < depth {
		_, m, _ := s.tt.Probe(p.ZobristKey(), 0, 0, ValueMin, ValueMax)
		if m == MoveNone || !s.mg[MaxPly-1].ValidateMove(p, m) {
			break
		}
		pv.PushBack(m)
		p.DoMove(m)
		count++
	}
	for i := 0; i < count; i++ {
		p.UndoMove()
	}
}
