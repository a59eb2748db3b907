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
package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kforge/zobrist/internal/logging"
	"github.com/kforge/zobrist/internal/position"
	. "github.com/kforge/zobrist/internal/types"
)

var out = message.NewPrinter(language.German)

// Perft counts the leaves of the full move tree to a fixed depth.
// The counts are compared against published reference numbers to
// prove the move generator and make/unmake correct.
// https://www.chessprogramming.org/Perft
type Perft struct {
	Nodes             uint64
	CaptureCounter    uint64
	EnpassantCounter  uint64
	CastleCounter     uint64
	PromotionCounter  uint64
	CheckCounter      uint64
	CheckMateCounter  uint64

	stopFlag bool
}

// NewPerft creates a new perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop aborts a running perft.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// StartPerft counts the move tree of the given fen to the given
// depth and reports the counters. When onDemand is set the sorted
// move iterator of the search is exercised instead of the plain
// legal move list - the counts must not differ.
func (pf *Perft) StartPerft(fen string, depth int, onDemand bool) {
	log := logging.GetLog()

	pf.resetCounters()
	pf.stopFlag = false

	p, err := position.NewPositionFen(fen)
	if err != nil {
		log.Errorf("perft: bad fen: %s", err)
		return
	}

	// one generator per ply, the iterator state is per level
	generators := make([]*Movegen, depth+1)
	for i := range generators {
		generators[i] = NewMoveGen()
	}

	log.Infof("Performing perft depth %d on %s", depth, fen)
	start := time.Now()

	pf.Nodes = pf.walk(p, depth, generators, onDemand)

	elapsed := time.Since(start)
	log.Info(out.Sprintf("Perft depth %d: %d nodes, %d captures, %d ep, %d castles, %d promotions, %d checks, %d mates",
		depth, pf.Nodes, pf.CaptureCounter, pf.EnpassantCounter, pf.CastleCounter,
		pf.PromotionCounter, pf.CheckCounter, pf.CheckMateCounter))
	log.Info(out.Sprintf("Perft time %d ms (%d nps)",
		elapsed.Milliseconds(),
		(pf.Nodes*uint64(time.Second))/uint64(elapsed.Nanoseconds()+1)))
}

func (pf *Perft) walk(p *position.Position, depth int, generators []*Movegen, onDemand bool) uint64 {
	if pf.stopFlag {
		return 0
	}
	if depth == 0 {
		return 1
	}

	mg := generators[depth]
	nodes := uint64(0)

	if onDemand {
		mg.ResetOnDemand()
		for m := mg.GetNextMove(p, GenAll); m != MoveNone; m = mg.GetNextMove(p, GenAll) {
			nodes += pf.countMove(p, m, depth, generators, onDemand)
		}
	} else {
		// the legal move list is shared state of the generator, walk
		// a private copy
		moves := append([]Move(nil), *mg.GenerateLegalMoves(p, GenAll)...)
		for _, m := range moves {
			nodes += pf.countMove(p, m, depth, generators, onDemand)
		}
	}
	return nodes
}

func (pf *Perft) countMove(p *position.Position, m Move, depth int, generators []*Movegen, onDemand bool) uint64 {
	p.DoMove(m)
	if !p.WasLegalMove() {
		p.UndoMove()
		return 0
	}

	var nodes uint64
	if depth > 1 {
		nodes = pf.walk(p, depth-1, generators, onDemand)
	} else {
		nodes = 1
		if m.IsCapture() {
			pf.CaptureCounter++
		}
		switch m.Flag() {
		case FlagEnPassant:
			pf.EnpassantCounter++
		case FlagShortCastle, FlagLongCastle:
			pf.CastleCounter++
		}
		if m.Flag().IsPromotion() {
			pf.PromotionCounter++
		}
		if p.HasCheck() {
			pf.CheckCounter++
			if !generators[0].HasLegalMove(p) {
				pf.CheckMateCounter++
			}
		}
	}

	p.UndoMove()
	return nodes
}

func (pf *Perft) resetCounters() {
	pf.Nodes = 0
	pf.CaptureCounter = 0
	pf.EnpassantCounter = 0
	pf.CastleCounter = 0
	pf.PromotionCounter = 0
	pf.CheckCounter = 0
	pf.CheckMateCounter = 0
}
