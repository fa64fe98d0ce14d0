package board

import "fmt"

// Move names an edge by a square coordinate and a side. Interior edges have
// two names: (x,y) Right and (x+1,y) Left cut the same string. See
// MovesEquivalent.
type Move struct {
	X, Y int
	Side Side
}

func NewMove(x, y int, side Side) Move {
	return Move{X: x, Y: y, Side: side}
}

func (m Move) String() string {
	return fmt.Sprintf("(%v, %v) %v", m.X, m.Y, m.Side)
}

// MoveOutcome describes the effect of a move just made.
type MoveOutcome struct {
	// CoinsCaptured is the number of coins the move captured: 0, 1 or 2.
	CoinsCaptured int
	// EndOfTurn is true iff the mover does not move again: no capture, or game over.
	EndOfTurn bool
	// EndOfGame is true iff no strings remain.
	EndOfGame bool
}

// PartMove addresses an edge in a CompoundPosition: a move within the part
// with the given index.
type PartMove struct {
	Part int
	Move Move
}

func NewPartMove(part, x, y int, side Side) PartMove {
	return PartMove{Part: part, Move: Move{X: x, Y: y, Side: side}}
}

func (m PartMove) String() string {
	return fmt.Sprintf("Part %v: %v", m.Part, m.Move)
}
