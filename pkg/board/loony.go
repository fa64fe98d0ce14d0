package board

import "fmt"

// IsLoony reports whether the position contains a capturable coin whose
// unique open string leads to a coin of valency 2 with no valency-1 coin on
// its far side. Such a position offers the opponent the lose-lose choice
// between taking a whole component and conceding a two-coin handout; a closed
// open 3-chain (valency-1 coins at both ends) does not qualify.
func (p *SimplePosition) IsLoony() bool {
	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			if p.Valency(x, y) != 1 {
				continue
			}
			nx, ny, side, ok := p.connectedCoin(x, y, Sides())
			if !ok || p.Valency(nx, ny) != 2 {
				continue
			}
			// A capturable coin attached to a coin of valency 2 (o-o-?).
			// Loony unless a valency-1 coin sits on the far side (o-o-o).
			farSides := SidesExcept(side.Opposite())
			if fx, fy, _, ok := p.connectedCoin(nx, ny, farSides); ok && p.Valency(fx, fy) == 1 {
				continue
			}
			return true
		}
	}
	return false
}

// IsLoony returns true iff any part is loony.
func (c *CompoundPosition) IsLoony() bool {
	for _, part := range c.parts {
		if part.IsLoony() {
			return true
		}
	}
	return false
}

// connectedCoin returns a coin joined to (x,y) by an uncut string on one of
// the given sides, if any.
func (p *SimplePosition) connectedCoin(x, y int, sides []Side) (int, int, Side, bool) {
	for _, s := range sides {
		if !p.IsLegalMove(Move{X: x, Y: y, Side: s}) {
			continue
		}
		if nx, ny, ok := p.Offset(x, y, s); ok {
			return nx, ny, s, true
		}
	}
	return 0, 0, 0, false
}

// FindDdealMove returns the double-dealing move corresponding to the given
// capture: the move that declines the last two coins by closing the domino,
// handing the component back to the opponent. Panics if the loony
// precondition does not hold.
func (p *SimplePosition) FindDdealMove(capture Move) Move {
	// (capture.X, capture.Y) may be the valency-1 coin or the valency-2 one.
	// The excluded side is the string to the would-be-captured coin: cutting
	// it would take the gift instead of declining it.
	v2x, v2y, excl := capture.X, capture.Y, capture.Side
	if p.Valency(capture.X, capture.Y) == 1 {
		x, y, ok := p.Offset(capture.X, capture.Y, capture.Side)
		if !ok {
			panic(fmt.Sprintf("capture %v has no neighbour in %v", capture, p))
		}
		v2x, v2y, excl = x, y, capture.Side.Opposite()
	}

	if v := p.Valency(v2x, v2y); v != 2 {
		panic(fmt.Sprintf("expected (%v,%v) to have valency 2, found %v in %v", v2x, v2y, v, p))
	}

	for _, s := range SidesExcept(excl) {
		if p.IsLegalMove(Move{X: v2x, Y: v2y, Side: s}) {
			return Move{X: v2x, Y: v2y, Side: s}
		}
	}

	panic(fmt.Sprintf("no double-dealing move corresponding to %v in %v", capture, p))
}

// FindDdealMove delegates to the part of the given capture.
func (c *CompoundPosition) FindDdealMove(capture PartMove) PartMove {
	return PartMove{Part: capture.Part, Move: c.parts[capture.Part].FindDdealMove(capture.Move)}
}
