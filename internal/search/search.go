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
// Package search implements the iterative deepening alpha beta
// searcher: opening book probe, aspiration windows, quiescence,
// transposition table, time management and the uci reporting
// around it.
package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kforge/zobrist/internal/config"
	"github.com/kforge/zobrist/internal/evaluator"
	"github.com/kforge/zobrist/internal/history"
	myLogging "github.com/kforge/zobrist/internal/logging"
	"github.com/kforge/zobrist/internal/movegen"
	"github.com/kforge/zobrist/internal/moveslice"
	"github.com/kforge/zobrist/internal/openingbook"
	"github.com/kforge/zobrist/internal/position"
	"github.com/kforge/zobrist/internal/transpositiontable"
	. "github.com/kforge/zobrist/internal/types"
	"github.com/kforge/zobrist/internal/uciInterface"
	"github.com/kforge/zobrist/internal/util"
)

var out = message.NewPrinter(language.German)

// Search owns everything a search run needs: the transposition
// table (surviving across calls), the opening book, the evaluator,
// the per ply move generators and pv lists, and the time control
// state. It runs in its own goroutine so the uci driver stays
// responsive; the search itself is strictly single threaded.
type Search struct {
	log *logging.Logger

	uciHandlerPtr uciInterface.UciDriver

	// one permit each: "still initializing" and "search running"
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	book    *openingbook.Book
	tt      *transpositiontable.TtTable
	eval    *evaluator.Evaluator
	history *history.History

	lastSearchResult *Result
	hasResult        bool

	// state of the current run
	stopFlag          bool
	startTime         time.Time
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	nodesVisited      uint64
	mg                []*movegen.Movegen
	pv                []*moveslice.MoveSlice
	rootMoves         *moveslice.MoveSlice
	hadBookMove       bool
	inOpening         bool
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// NewSearch creates a new Search. The engine starts out assuming it
// is still inside the opening book; the first book miss clears the
// flag for the rest of the game.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewHistory(),
		inOpening:     true,
	}
}

// NewGame stops a running search and resets all state kept across
// searches for a fresh game.
func (s *Search) NewGame() {
	s.StopSearch()
	s.WaitWhileSearching()
	if s.tt != nil {
		s.tt.Clear()
	}
	if s.book != nil {
		s.book.Reset()
	}
	s.history.Clear()
	s.hasResult = false
	s.inOpening = true
	s.hadBookMove = false
}

// StartSearch starts searching the position within the limits in
// its own goroutine and returns immediately. Use
// WaitWhileSearching to block for the result.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Warning("search already running, start ignored")
		return
	}
	_ = s.initSemaphore.TryAcquire(1)
	go s.run(&p, &sl)
	// wait until the goroutine finished its setup
	_ = s.initSemaphore.Acquire(ctx(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch asks a running search to stop. The search commits its
// last finished iteration and returns normally.
func (s *Search) StopSearch() {
	s.stopFlag = true
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until the current search is done.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(ctx(), 1)
	s.isRunning.Release(1)
}

// PonderHit switches a ponder search into a normal timed search.
func (s *Search) PonderHit() {
	if s.IsSearching() && s.searchLimits != nil && s.searchLimits.Ponder {
		s.log.Info("ponderhit - continuing as timed search")
		s.searchLimits.Ponder = false
		s.startTime = time.Now()
		if s.searchLimits.TimeControl {
			s.startTimer()
		}
		return
	}
	s.log.Warning("ponderhit without ponder search")
}

// SetUciHandler attaches the uci driver used for progress output.
func (s *Search) SetUciHandler(handler uciInterface.UciDriver) {
	s.uciHandlerPtr = handler
}

// GetUciHandlerPtr returns the attached uci driver.
func (s *Search) GetUciHandlerPtr() uciInterface.UciDriver {
	return s.uciHandlerPtr
}

// IsReady initializes heavy state (book, tt) and answers readyok.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash empties the transposition table.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		s.sendInfoStringToUci("Hash clear ignored while searching")
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache resizes the transposition table to the configured
// size.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		s.sendInfoStringToUci("Hash resize ignored while searching")
		return
	}
	if s.tt != nil {
		s.tt.Resize(config.Settings.Search.TTSize)
		s.sendInfoStringToUci(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// LastSearchResult returns a copy of the last search result.
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{}
	}
	return *s.lastSearchResult
}

// HasResult reports whether a result from a finished search exists.
func (s *Search) HasResult() bool {
	return s.hasResult
}

// NodesVisited returns the node count of the last search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns the counters of the last search.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

// ///////////////////////////////////////////////////////////
// search run
// ///////////////////////////////////////////////////////////

// run is the goroutine body of one search call.
func (s *Search) run(p *position.Position, sl *Limits) {
	defer s.isRunning.Release(1)

	s.stopFlag = false
	s.hasResult = false
	s.startTime = time.Now()
	s.lastUciUpdateTime = s.startTime
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.searchLimits = sl

	s.initialize()

	// per ply data: one generator (killers are per ply) and one pv
	// list per ply
	s.mg = make([]*movegen.Movegen, MaxPly+1)
	s.pv = make([]*moveslice.MoveSlice, MaxPly+1)
	for i := range s.mg {
		s.mg[i] = movegen.NewMoveGen()
		if config.Settings.Search.UseHistory {
			s.mg[i].SetHistoryData(s.history)
		}
		s.pv[i] = moveslice.NewMoveSlice(MaxPly)
	}
	s.history.Clear()

	s.setupTimeLimits(p, sl)

	// setup done, unblock StartSearch
	s.initSemaphore.Release(1)

	s.log.Infof("Searching: %s", p.StringFen())
	s.log.Info(s.searchLimits.String())

	if sl.TimeControl && !sl.Ponder {
		s.startTimer()
	}

	// try the opening book before searching. One miss ends the
	// opening for the rest of the game.
	if bookMove := s.probeBook(p, sl); bookMove != MoveNone {
		s.log.Info("Book move: ", bookMove.StringUci())
		result := &Result{BestMove: bookMove, BookMove: true}
		s.finishSearch(result)
		return
	}

	result := s.iterativeDeepening(p)

	result.SearchTime = time.Since(s.startTime)
	result.Pv = *s.pv[0]

	// age the table once per completed search
	if s.tt != nil {
		s.tt.Update()
		usedMB, totalMB := s.tt.SizeInfo()
		s.log.Info(out.Sprintf("Transposition table size: %.1f MB / %.1f MB", usedMB, totalMB))
	}

	s.log.Info(out.Sprintf("Search finished after %s: %d nodes, %d nps",
		result.SearchTime, s.nodesVisited, s.getNps()))
	s.log.Debugf("Search stats: %s", s.statistics.String())

	s.finishSearch(result)
}

// finishSearch stores and publishes the result.
func (s *Search) finishSearch(result *Result) {
	s.lastSearchResult = result
	s.hasResult = true
	s.stopFlag = true
	s.log.Infof("Search result: %s", result.String())
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(result.BestMove, result.PonderMove)
	}
}

// probeBook looks the position up in the opening book when the
// engine still is in its opening and the game is time controlled.
func (s *Search) probeBook(p *position.Position, sl *Limits) Move {
	if s.book == nil || !config.Settings.Search.UseBook || !s.inOpening {
		return MoveNone
	}
	if !sl.TimeControl || sl.Ponder {
		return MoveNone
	}
	entry, found := s.book.GetEntry(p.ZobristKey())
	if !found || len(entry.Moves) == 0 {
		// once off book, stay off book
		s.inOpening = false
		return MoveNone
	}
	s.hadBookMove = true
	pick := entry.Moves[rand.Intn(len(entry.Moves))]
	return Move(pick.Move)
}

// iterativeDeepening is the depth loop of the search: every
// iteration searches one ply deeper and commits its best move, so
// a timeout always leaves the deepest finished answer.
func (s *Search) iterativeDeepening(p *position.Position) *Result {

	// a game that is already decided does not need a search
	s.rootMoves = moveslice.NewMoveSlice(MaxMoves)
	*s.rootMoves = append(*s.rootMoves, *s.mg[0].GenerateLegalMoves(p, movegen.GenAll)...)
	s.filterRootMoves()
	if s.rootMoves.Len() == 0 {
		if p.HasCheck() {
			s.statistics.Checkmates++
			s.sendInfoStringToUci("Search called on a checkmate position")
			return &Result{BestValue: -ValueCheckmate}
		}
		s.statistics.Stalemates++
		s.sendInfoStringToUci("Search called on a stalemate position")
		return &Result{BestValue: ValueDraw}
	}

	// some extra time for the first move off book: the previous
	// "thinking" was free book lookups
	if s.hadBookMove && s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		s.addExtraTime(2.0)
		s.hadBookMove = false
	}

	maxDepth := MaxPly
	if s.searchLimits.Depth > 0 {
		maxDepth = s.searchLimits.Depth
	}

	bestValue := ValueNA

	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentSearchDepth = depth
		if s.statistics.CurrentExtraSearchDepth < depth {
			s.statistics.CurrentExtraSearchDepth = depth
		}
		s.nodesVisited++

		previous := bestValue
		switch {
		case config.Settings.Search.UseAspiration && depth > 3:
			bestValue = s.aspirationSearch(p, depth, bestValue)
		case config.Settings.Search.UseMTDf && depth > 3:
			bestValue = s.mtdf(p, depth, bestValue)
		default:
			bestValue = s.rootSearch(p, depth, ValueMin, ValueMax)
		}
		// a stop before the first root move of this depth finished
		// leaves no value; the previous iteration's value stands
		if bestValue == ValueNA {
			bestValue = previous
		}

		if s.stopConditions() || s.rootMoves.Len() == 1 {
			break
		}

		// sort root moves so the next iteration searches the best
		// move first
		s.rootMoves.Sort()
		s.statistics.CurrentBestRootMove = s.pv[0].At(0).Record()
		s.statistics.CurrentBestRootMoveValue = bestValue
		s.sendIterationEndInfoToUci()

		// a proven mate within the searched depth cannot improve
		if bestValue.IsCheckmateValue() &&
			int(ValueCheckmate-absValue(bestValue)) <= depth {
			break
		}
	}

	result := &Result{
		BestValue:   bestValue,
		SearchDepth: s.statistics.CurrentIterationDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}
	if s.pv[0].Len() > 0 {
		result.BestMove = s.pv[0].At(0).Record()
	}
	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1).Record()
	} else if result.BestMove != MoveNone && config.Settings.Search.UseTT {
		// no pv beyond the first move - ask the hash for a ponder
		// move
		p.DoMove(result.BestMove)
		if _, m, _ := s.tt.Probe(p.ZobristKey(), 0, 0, ValueMin, ValueMax); m != MoveNone {
			result.PonderMove = m
		}
		p.UndoMove()
	}
	return result
}

// filterRootMoves restricts the root moves to the "searchmoves" the
// host asked for, if any.
func (s *Search) filterRootMoves() {
	if s.searchLimits.Moves.Len() == 0 {
		return
	}
	filtered := moveslice.NewMoveSlice(s.rootMoves.Len())
	for i := 0; i < s.rootMoves.Len(); i++ {
		m := s.rootMoves.At(i)
		for j := 0; j < s.searchLimits.Moves.Len(); j++ {
			if s.searchLimits.Moves.At(j).Record() == m.Record() {
				filtered.PushBack(m)
			}
		}
	}
	s.rootMoves = filtered
}

// initialize sets up the expensive shared state once: the opening
// book and the transposition table.
func (s *Search) initialize() {
	if config.Settings.Search.UseBook && s.book == nil {
		s.book = openingbook.NewBook()
		format, known := openingbook.FormatFromString[config.Settings.Search.BookFormat]
		if !known {
			format = openingbook.Simple
		}
		bookPath, _ := util.ResolveFile(config.Settings.Search.BookPath + "/" + config.Settings.Search.BookFile)
		if err := s.book.Initialize(bookPath, "", format, true, false); err != nil {
			s.log.Warningf("Opening book not available: %s", err)
		}
	}
	if config.Settings.Search.UseTT && s.tt == nil {
		s.tt = transpositiontable.NewTtTable(config.Settings.Search.TTSize)
	}
}

// ///////////////////////////////////////////////////////////
// stop and time control
// ///////////////////////////////////////////////////////////

// stopConditions reports whether the search has to stop: the stop
// flag is set by the host, the timer or the node limit.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag = true
	}
	return s.stopFlag
}

// setupTimeLimits derives the time budget of this search from the
// limits.
func (s *Search) setupTimeLimits(p *position.Position, sl *Limits) {
	if !sl.TimeControl {
		return
	}
	s.timeLimit = s.timeToThink(p, sl)
	s.log.Debug(out.Sprintf("Time limit: %s", s.timeLimit))
}

// timeToThink allocates the thinking time for one move: in the
// per-move mode the given move time (minus a safety margin), under
// a running clock a fraction of the remaining time - 2.5% during
// the first six moves of the game, 7% afterwards - clamped between
// half a second and twenty seconds.
func (s *Search) timeToThink(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		margin := 20 * time.Millisecond
		if sl.MoveTime > margin {
			return sl.MoveTime - margin
		}
		return sl.MoveTime
	}

	var remaining time.Duration
	switch p.SideToMove() {
	case White:
		remaining = sl.WhiteTime + sl.WhiteInc
	case Black:
		remaining = sl.BlackTime + sl.BlackInc
	}

	fraction := 0.07
	if p.MoveNumber() <= 6 {
		fraction = 0.025
	}
	budget := time.Duration(int64(fraction * float64(remaining.Nanoseconds())))

	switch {
	case budget < 500*time.Millisecond:
		budget = 500 * time.Millisecond
	case budget > 20*time.Second:
		budget = 20 * time.Second
	}
	return budget
}

// addExtraTime lengthens (f > 1) or shortens (f < 1) the remaining
// thinking time by a fraction of the base budget.
func (s *Search) addExtraTime(f float64) {
	if s.searchLimits.TimeControl && s.searchLimits.MoveTime == 0 {
		extra := time.Duration(int64((f - 1.0) * float64(s.timeLimit.Nanoseconds())))
		s.extraTime += extra
		s.log.Debug(out.Sprintf("Time added: %s (total %s)", extra, s.timeLimit+s.extraTime))
	}
}

// startTimer arms the deadline. The timer polls so added extra
// time is honored.
func (s *Search) startTimer() {
	go func() {
		start := time.Now()
		for !s.stopFlag {
			if time.Since(start) >= s.timeLimit+s.extraTime {
				s.log.Debug(out.Sprintf("Search timeout after %s", time.Since(start)))
				s.stopFlag = true
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
	}()
}

// checkDraw reports draws by repetition, the fifty move rule or
// dead material.
func (s *Search) checkDraw(p *position.Position, reps int) bool {
	return p.CheckRepetitions(reps) || p.HalfMoveClock() >= 100 || p.HasInsufficientMaterial()
}

// ///////////////////////////////////////////////////////////
// uci output
// ///////////////////////////////////////////////////////////

func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	} else {
		s.log.Info(msg)
	}
}

func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	} else {
		s.log.Info(out.Sprintf("Depth=%d Seldepth=%d Eval=%s BestMove=%s Nodes=%d TTHits=%d Pv=%s",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue.String(),
			s.statistics.CurrentBestRootMove.StringUci(),
			s.nodesVisited,
			s.statistics.TTHit,
			s.pv[0].StringUci()))
	}
}

func (s *Search) sendAspirationResearchInfo(bound string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendAspirationResearchInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			bound,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	}
}

func (s *Search) sendCurrentRootMoveToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendCurrentRootMove(
			s.statistics.CurrentRootMove,
			s.statistics.CurrentRootMoveIndex+1)
	}
}

// sendSearchUpdateToUci throttles the periodic depth/node updates
// to one per second.
func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) < time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	if s.uciHandlerPtr != nil {
		hashfull := 0
		if s.tt != nil {
			hashfull = s.tt.Hashfull()
		}
		s.uciHandlerPtr.SendSearchUpdate(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			hashfull)
		s.uciHandlerPtr.SendCurrentLine(s.statistics.CurrentVariation)
	}
}

func (s *Search) getNps() uint64 {
	return util.Nps(s.nodesVisited, time.Since(s.startTime))
}

func absValue(v Value) Value {
	if v < 0 {
		return -v
	}
	return v
}

func ctx() context.Context {
	return context.Background()
}
