package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amdw/dotsandboxes/pkg/board"
)

// Kind enumerates the console command forms.
type Kind uint8

const (
	MakeMove Kind = iota
	UndoMove
	NimstringValue
	Evaluate
	Help
	Quit
)

func (k Kind) String() string {
	switch k {
	case MakeMove:
		return "MakeMove"
	case UndoMove:
		return "UndoMove"
	case NimstringValue:
		return "NimstringValue"
	case Evaluate:
		return "Evaluate"
	case Help:
		return "Help"
	case Quit:
		return "Quit"
	default:
		return "?"
	}
}

// Command is a parsed console command. Move is set for the move kinds only.
type Command struct {
	Kind Kind
	Move board.PartMove
}

// ParseCommand parses a command line against a position with the given
// number of parts. Commands are case-insensitive and whitespace-trimmed.
func ParseCommand(partCount int, line string) (Command, error) {
	input := strings.ToLower(strings.TrimSpace(line))

	switch input {
	case "nv":
		return Command{Kind: NimstringValue}, nil
	case "eval":
		return Command{Kind: Evaluate}, nil
	case "help":
		return Command{Kind: Help}, nil
	case "quit", "exit":
		return Command{Kind: Quit}, nil
	}

	if rest, ok := strings.CutPrefix(input, "u "); ok {
		m, err := ParseMove(partCount, rest)
		if err != nil {
			return Command{}, fmt.Errorf("cannot extract move from [%v]: %w", input, err)
		}
		return Command{Kind: UndoMove, Move: m}, nil
	}

	m, err := ParseMove(partCount, input)
	if err != nil {
		return Command{}, fmt.Errorf("cannot extract move from [%v]: %w", input, err)
	}
	return Command{Kind: MakeMove, Move: m}, nil
}

// ParseMove parses "p x y s", or "x y s" when the position has a single part.
func ParseMove(partCount int, input string) (board.PartMove, error) {
	fields := strings.Fields(input)

	part := 0
	switch {
	case len(fields) == 4:
		p, err := strconv.Atoi(fields[0])
		if err != nil {
			return board.PartMove{}, fmt.Errorf("invalid part index [%v]", fields[0])
		}
		part = p
		fields = fields[1:]
	case len(fields) == 3 && partCount == 1:
		// Simple form addresses the only part.
	default:
		return board.PartMove{}, fmt.Errorf("could not extract move from [%v]", input)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return board.PartMove{}, fmt.Errorf("invalid x coordinate [%v]", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return board.PartMove{}, fmt.Errorf("invalid y coordinate [%v]", fields[1])
	}
	side, ok := board.ParseSide(fields[2])
	if !ok {
		return board.PartMove{}, fmt.Errorf("unrecognised side: [%v]", fields[2])
	}
	return board.NewPartMove(part, x, y, side), nil
}
