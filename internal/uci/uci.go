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
// Package uci implements the uci protocol loop that drives the
// engine: it reads commands from the host gui, forwards positions
// and search limits to the search and writes the engine's answers
// and progress back to stdout.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/kforge/zobrist/internal/config"
	myLogging "github.com/kforge/zobrist/internal/logging"
	"github.com/kforge/zobrist/internal/movegen"
	"github.com/kforge/zobrist/internal/moveslice"
	"github.com/kforge/zobrist/internal/position"
	"github.com/kforge/zobrist/internal/search"
	. "github.com/kforge/zobrist/internal/types"
	"github.com/kforge/zobrist/internal/version"
)

// UciHandler is the bridge between a uci gui and the engine.
type UciHandler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	log    *logging.Logger
	uciLog *logging.Logger

	mySearch   *search.Search
	myPosition *position.Position
	myMoveGen  *movegen.Movegen

	// test support: Command captures everything the engine sends
	capture bool
	sent    strings.Builder
}

// NewUciHandler creates a handler reading from stdin and writing to
// stdout.
func NewUciHandler() *UciHandler {
	u := &UciHandler{
		InIo:       bufio.NewScanner(os.Stdin),
		OutIo:      bufio.NewWriter(os.Stdout),
		log:        myLogging.GetLog(),
		uciLog:     myLogging.GetUciLog(),
		mySearch:   search.NewSearch(),
		myPosition: position.NewPosition(),
		myMoveGen:  movegen.NewMoveGen(),
	}
	u.mySearch.SetUciHandler(u)
	return u
}

// Loop reads and executes commands until "quit" or the input
// closes.
func (u *UciHandler) Loop() {
	for u.InIo.Scan() {
		cmd := strings.TrimSpace(u.InIo.Text())
		if cmd == "" {
			continue
		}
		u.uciLog.Debugf("<< %s", cmd)
		if !u.execute(cmd) {
			break
		}
	}
	u.log.Info("uci loop ended")
}

// Command executes a single command string and returns everything
// the engine sent in response. Used by tests.
func (u *UciHandler) Command(cmd string) string {
	u.sent.Reset()
	u.capture = true
	u.execute(cmd)
	u.capture = false
	return u.sent.String()
}

// execute dispatches one command line. Returns false on quit.
func (u *UciHandler) execute(cmd string) bool {
	tokens := strings.Fields(cmd)
	switch tokens[0] {
	case "quit":
		u.mySearch.StopSearch()
		u.mySearch.WaitWhileSearching()
		return false
	case "uci":
		u.uciCommand()
	case "setoption":
		u.setOptionCommand(tokens)
	case "isready":
		u.mySearch.IsReady()
	case "ucinewgame":
		u.newGameCommand()
	case "position":
		u.positionCommand(tokens)
	case "go":
		u.goCommand(tokens)
	case "stop":
		u.mySearch.StopSearch()
	case "ponderhit":
		u.mySearch.PonderHit()
	case "perft":
		u.perftCommand(tokens)
	case "debug", "register":
		u.sendInfoString("command not supported: " + tokens[0])
	default:
		u.sendInfoString("unknown command: " + tokens[0])
	}
	return true
}

// ///////////////////////////////////////////////////////////
// commands
// ///////////////////////////////////////////////////////////

func (u *UciHandler) uciCommand() {
	u.send("id name " + version.Version())
	u.send("id author kforge")
	for _, o := range optionOrder {
		u.send(uciOptions[o].uciString())
	}
	u.send("uciok")
}

func (u *UciHandler) setOptionCommand(tokens []string) {
	name, value := "", ""
	section := ""
	for _, t := range tokens[1:] {
		switch t {
		case "name", "value":
			section = t
		default:
			switch section {
			case "name":
				if name != "" {
					name += " "
				}
				name += t
			case "value":
				if value != "" {
					value += " "
				}
				value += t
			}
		}
	}
	o, known := uciOptions[name]
	if !known {
		u.sendInfoString("unknown option: " + name)
		return
	}
	o.handler(u, value)
}

func (u *UciHandler) newGameCommand() {
	if u.mySearch.IsSearching() {
		u.sendInfoString("ucinewgame ignored while searching")
		return
	}
	u.myPosition = position.NewPosition()
	u.mySearch.NewGame()
}

// positionCommand sets up the internal board: "position [startpos |
// fen <fen>] [moves <move>...]".
func (u *UciHandler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		u.sendInfoString("position command incomplete")
		return
	}
	i := 1
	fen := position.StartFen
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var parts []string
		for i < len(tokens) && tokens[i] != "moves" {
			parts = append(parts, tokens[i])
			i++
		}
		fen = strings.Join(parts, " ")
	default:
		u.sendInfoString("position command malformed: " + tokens[i])
		return
	}

	p, err := position.NewPositionFen(fen)
	if err != nil {
		u.sendInfoString(fmt.Sprintf("invalid fen: %s", err))
		return
	}

	if i < len(tokens) && tokens[i] == "moves" {
		for _, moveStr := range tokens[i+1:] {
			m := u.myMoveGen.GetMoveFromUci(p, moveStr)
			if m == MoveNone {
				u.sendInfoString("invalid move: " + moveStr)
				return
			}
			p.DoMove(m)
		}
	}
	u.myPosition = p
}

func (u *UciHandler) goCommand(tokens []string) {
	limits, ok := u.readSearchLimits(tokens)
	if !ok {
		return
	}
	u.mySearch.StartSearch(*u.myPosition, *limits)
}

func (u *UciHandler) perftCommand(tokens []string) {
	depth := 4
	if len(tokens) > 1 {
		if d, err := strconv.Atoi(tokens[1]); err == nil {
			depth = d
		}
	}
	go func() {
		pf := movegen.NewPerft()
		pf.StartPerft(u.myPosition.StringFen(), depth, true)
	}()
}

// readSearchLimits parses the arguments of the go command.
func (u *UciHandler) readSearchLimits(tokens []string) (*search.Limits, bool) {
	limits := search.NewSearchLimits()

	i := 1
	for i < len(tokens) {
		var argument string
		if i+1 < len(tokens) {
			argument = tokens[i+1]
		}
		switch tokens[i] {
		case "infinite":
			limits.Infinite = true
		case "ponder":
			limits.Ponder = true
		case "searchmoves":
			for i+1 < len(tokens) {
				m := u.myMoveGen.GetMoveFromUci(u.myPosition, tokens[i+1])
				if m == MoveNone {
					break
				}
				limits.Moves.PushBack(m)
				i++
			}
		case "depth":
			limits.Depth = u.intArg(argument, "depth")
			i++
		case "nodes":
			limits.Nodes = uint64(u.intArg(argument, "nodes"))
			i++
		case "mate":
			limits.Mate = u.intArg(argument, "mate")
			i++
		case "movetime", "moveTime":
			limits.MoveTime = time.Duration(u.intArg(argument, "movetime")) * time.Millisecond
			limits.TimeControl = true
			i++
		case "wtime":
			limits.WhiteTime = time.Duration(u.intArg(argument, "wtime")) * time.Millisecond
			limits.TimeControl = true
			i++
		case "btime":
			limits.BlackTime = time.Duration(u.intArg(argument, "btime")) * time.Millisecond
			limits.TimeControl = true
			i++
		case "winc":
			limits.WhiteInc = time.Duration(u.intArg(argument, "winc")) * time.Millisecond
			i++
		case "binc":
			limits.BlackInc = time.Duration(u.intArg(argument, "binc")) * time.Millisecond
			i++
		case "movestogo":
			limits.MovesToGo = u.intArg(argument, "movestogo")
			i++
		default:
			u.sendInfoString("unknown go argument: " + tokens[i])
		}
		i++
	}

	// sanity: a timed search without any time is not runnable
	if limits.TimeControl && limits.MoveTime == 0 &&
		limits.WhiteTime == 0 && limits.BlackTime == 0 {
		u.sendInfoString("go command has time control but no time")
		return nil, false
	}
	if !limits.TimeControl && !limits.Infinite && !limits.Ponder &&
		limits.Depth == 0 && limits.Nodes == 0 && limits.Mate == 0 {
		// no limit at all - treat as infinite
		limits.Infinite = true
	}
	return limits, true
}

func (u *UciHandler) intArg(s string, what string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		u.sendInfoString("invalid number for " + what + ": " + s)
		return 0
	}
	return n
}

// ///////////////////////////////////////////////////////////
// output towards the gui (uciInterface.UciDriver)
// ///////////////////////////////////////////////////////////

// SendReadyOk signals that initialization is done.
func (u *UciHandler) SendReadyOk() {
	u.send("readyok")
}

// SendInfoString sends a free text info line.
func (u *UciHandler) SendInfoString(info string) {
	u.sendInfoString(info)
}

// SendIterationEndInfo reports one finished iteration.
func (u *UciHandler) SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info depth %d seldepth %d multipv 1 score %s nodes %d nps %d time %d pv %s",
		depth, seldepth, value.String(), nodes, nps, time.Milliseconds(), pv.StringUci()))
}

// SendAspirationResearchInfo reports a failed aspiration window.
func (u *UciHandler) SendAspirationResearchInfo(depth int, seldepth int, value Value, bound string, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice) {
	u.send(fmt.Sprintf("info depth %d seldepth %d multipv 1 score %s %s nodes %d nps %d time %d pv %s",
		depth, seldepth, value.String(), bound, nodes, nps, time.Milliseconds(), pv.StringUci()))
}

// SendCurrentRootMove reports the root move currently searched.
func (u *UciHandler) SendCurrentRootMove(currMove Move, moveNumber int) {
	u.send(fmt.Sprintf("info currmove %s currmovenumber %d", currMove.StringUci(), moveNumber))
}

// SendSearchUpdate reports periodic depth/node/hash statistics.
func (u *UciHandler) SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, time time.Duration, hashfull int) {
	u.send(fmt.Sprintf("info depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
		depth, seldepth, nodes, nps, time.Milliseconds(), hashfull))
}

// SendCurrentLine reports the variation currently searched.
func (u *UciHandler) SendCurrentLine(moveList moveslice.MoveSlice) {
	u.send("info currline " + moveList.StringUci())
}

// SendResult sends the final best move (and ponder move) of a
// search.
func (u *UciHandler) SendResult(bestMove Move, ponderMove Move) {
	var sb strings.Builder
	sb.WriteString("bestmove ")
	sb.WriteString(bestMove.StringUci())
	if ponderMove != MoveNone && config.Settings.Search.UsePonder {
		sb.WriteString(" ponder ")
		sb.WriteString(ponderMove.StringUci())
	}
	u.send(sb.String())
}

func (u *UciHandler) sendInfoString(info string) {
	u.send("info string " + info)
}

func (u *UciHandler) send(s string) {
	u.uciLog.Debugf(">> %s", s)
	if u.capture {
		u.sent.WriteString(s)
		u.sent.WriteString("\n")
	}
	_, _ = u.OutIo.WriteString(s + "\n")
	_ = u.OutIo.Flush()
}
