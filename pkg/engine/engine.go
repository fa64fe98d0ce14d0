// Package engine owns a game position and executes analysis commands
// against it.
package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/amdw/dotsandboxes/pkg/board"
	"github.com/amdw/dotsandboxes/pkg/eval"
	"github.com/amdw/dotsandboxes/pkg/nimstring"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(1, 2, 0)

// Engine encapsulates the position under study and the solver entry points.
// Not thread-safe.
type Engine struct {
	name, author string

	pos *board.CompoundPosition
}

func New(ctx context.Context, name, author string, pos *board.CompoundPosition) *Engine {
	logw.Infof(ctx, "Initialized %v %v (%v parts)", name, version, len(pos.Parts()))

	return &Engine{name: name, author: author, pos: pos}
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) Position() *board.CompoundPosition {
	return e.pos
}

// MakeMove makes the given move. Returns an error if the part index is out of
// range or the edge is already cut.
func (e *Engine) MakeMove(m board.PartMove) error {
	if _, ok := e.pos.Part(m.Part); !ok {
		return fmt.Errorf("no such part: %v", m.Part)
	}
	if !e.pos.IsLegalMove(m) {
		return fmt.Errorf("not a legal move: %v", e.formatMove(m))
	}
	e.pos.MakeMove(m)
	return nil
}

// UndoMove restores the edge cut by the given move. Returns an error if the
// part index is out of range or the edge is not currently cut: undoing a move
// that was never made would corrupt the position.
func (e *Engine) UndoMove(m board.PartMove) error {
	part, ok := e.pos.Part(m.Part)
	if !ok {
		return fmt.Errorf("no such part: %v", m.Part)
	}
	if m.Move.X < 0 || m.Move.X >= part.Width() || m.Move.Y < 0 || m.Move.Y >= part.Height() {
		return fmt.Errorf("out of range: %v", e.formatMove(m))
	}
	if e.pos.IsLegalMove(m) {
		return fmt.Errorf("cannot undo %v: string is not cut", e.formatMove(m))
	}
	e.pos.UndoMove(m)
	return nil
}

// Execute runs a single command, emitting any output line by line. Returns
// true iff the command asks to quit, and an error for refused moves.
func (e *Engine) Execute(ctx context.Context, cmd Command, emit func(string)) (bool, error) {
	switch cmd.Kind {
	case MakeMove:
		return false, e.MakeMove(cmd.Move)

	case UndoMove:
		return false, e.UndoMove(cmd.Move)

	case NimstringValue:
		val, perMove := nimstring.CalculateWithMoves[board.PartMove](e.pos)
		emit(fmt.Sprintf("Position value is %v", val))
		for _, m := range e.sortMoves(perMove) {
			emit(fmt.Sprintf("%v %v", e.formatMove(m), perMove[m]))
		}
		return false, nil

	case Evaluate:
		val, best := eval.Evaluate[board.PartMove](e.pos)
		if m, ok := best.V(); ok {
			emit(fmt.Sprintf("V(P) = %v, best move %v", val, e.formatMove(m)))
		} else {
			emit(fmt.Sprintf("V(P) = %v", val))
		}
		return false, nil

	case Help:
		e.printHelp(emit)
		return false, nil

	case Quit:
		emit("Bye bye!")
		return true, nil

	default:
		return false, fmt.Errorf("unknown command: %v", cmd.Kind)
	}
}

// Elapsed reports the duration of a command if long enough to be worth
// mentioning.
func Elapsed(d time.Duration) (string, bool) {
	if d < 100*time.Millisecond {
		return "", false
	}
	return fmt.Sprintf("(%.1f seconds)", d.Seconds()), true
}

// Render prints the position: a bare grid for a single part, component
// headers otherwise.
func (e *Engine) Render() string {
	if parts := e.pos.Parts(); len(parts) == 1 {
		return parts[0].String()
	}
	return e.pos.String()
}

// formatMove drops the part prefix on single-part positions, where the bare
// move form is unambiguous.
func (e *Engine) formatMove(m board.PartMove) string {
	if len(e.pos.Parts()) == 1 {
		return m.Move.String()
	}
	return m.String()
}

// sortMoves orders moves for display: (part, x, y, side), or (y, x, side) on
// a single-part position.
func (e *Engine) sortMoves(perMove map[board.PartMove]nimstring.Value) []board.PartMove {
	moves := make([]board.PartMove, 0, len(perMove))
	for m := range perMove {
		moves = append(moves, m)
	}
	single := len(e.pos.Parts()) == 1
	sort.Slice(moves, func(i, j int) bool {
		a, b := moves[i], moves[j]
		if a.Part != b.Part {
			return a.Part < b.Part
		}
		if single {
			if a.Move.Y != b.Move.Y {
				return a.Move.Y < b.Move.Y
			}
			if a.Move.X != b.Move.X {
				return a.Move.X < b.Move.X
			}
			return a.Move.Side < b.Move.Side
		}
		if a.Move.X != b.Move.X {
			return a.Move.X < b.Move.X
		}
		if a.Move.Y != b.Move.Y {
			return a.Move.Y < b.Move.Y
		}
		return a.Move.Side < b.Move.Side
	})
	return moves
}

func (e *Engine) printHelp(emit func(string)) {
	moveHelp := func(verb string) string {
		if len(e.pos.Parts()) == 1 {
			return fmt.Sprintf("x y t/l/b/r - %v move (x,y) top/left/bottom/right", verb)
		}
		return fmt.Sprintf("p x y t/l/b/r - %v move (x,y) top/left/bottom/right in part p", verb)
	}
	emit("Available commands:")
	emit(moveHelp("make"))
	emit("u " + moveHelp("undo"))
	emit("nv - calculate Nimstring value of current position")
	emit("eval - evaluate the current position")
	emit("help - print this help message")
	emit("quit/exit - exit program")
}
