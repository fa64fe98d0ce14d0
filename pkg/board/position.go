package board

import (
	"fmt"
	"strings"
)

// Position is the capability set shared by SimplePosition and
// CompoundPosition, generic in the move type. The solvers are written against
// this interface; MakeMove/UndoMove mutate in place and are exact inverses,
// hash included.
type Position[M any] interface {
	// IsLegalMove returns true iff the move names an uncut edge on the board.
	IsLegalMove(m M) bool
	// WouldCapture returns the number of coins the move would capture: 0, 1 or 2.
	WouldCapture(m M) int
	// MakeMove cuts the edge and reports the outcome. Panics on an illegal move.
	MakeMove(m M) MoveOutcome
	// UndoMove restores the edge. Behaviour on an edge that is not cut is undefined.
	UndoMove(m M)
	// IsEndOfGame returns true iff every string has been cut.
	IsEndOfGame() bool
	// LegalMoves enumerates the uncut edges, once each, under canonical names.
	LegalMoves() []M
	// ZHash returns the current Zobrist hash.
	ZHash() ZobristHash
	// IsLoony reports whether the position admits a half-open long chain or loop.
	IsLoony() bool
	// Split decomposes the position into its independent components.
	Split() []*SimplePosition
	// FindDdealMove returns the double-dealing alternative to the given
	// capture. Panics if the capture does not lead to a coin of valency 2
	// with another uncut string; looniness itself is not checked.
	FindDdealMove(m M) M
}

// SimplePosition is a rectangular strings-and-coins position. A width x height
// board is stored as four boolean grids of still-uncut strings:
//
//   - a row of top ground strings (width entries)
//   - a column of left ground strings (height entries)
//   - width x height downward strings (the Bottom of square (x,y); the Top of
//     (x,y) with y>0 aliases the entry for (x,y-1))
//   - width x height rightward strings (the Right of (x,y); the Left of (x,y)
//     with x>0 aliases (x-1,y))
//
// Coordinates originate at the top left and are 0-based, so x=1,y=2 is the
// second square in the third row.
type SimplePosition struct {
	width, height int
	top, left     []bool
	down, right   []bool

	zt   *zobristTable
	hash ZobristHash
}

// NewGame creates a position of the given size with all strings intact.
func NewGame(width, height int) *SimplePosition {
	return makePosition(width, height, true)
}

// NewEndGame creates a position of the given size with all strings cut.
func NewEndGame(width, height int) *SimplePosition {
	return makePosition(width, height, false)
}

func makePosition(width, height int, intact bool) *SimplePosition {
	p := &SimplePosition{
		width:  width,
		height: height,
		top:    make([]bool, width),
		left:   make([]bool, height),
		down:   make([]bool, width*height),
		right:  make([]bool, width*height),
	}
	if intact {
		for i := range p.top {
			p.top[i] = true
		}
		for i := range p.left {
			p.left[i] = true
		}
		for i := range p.down {
			p.down[i] = true
			p.right[i] = true
		}
	}
	p.reseed(0)
	return p
}

// reseed switches the position to the constant table for the given salt and
// recomputes the hash from the construction-state basis: the initial constant
// XOR the constants of all cut edges.
func (p *SimplePosition) reseed(salt int) {
	p.zt = zobristFor(p.width, p.height, salt)
	p.hash = p.zt.initial
	for x := 0; x < p.width; x++ {
		if !p.top[x] {
			p.hash ^= p.zt.top[x]
		}
		for y := 0; y < p.height; y++ {
			if !p.down[p.idx(x, y)] {
				p.hash ^= p.zt.down[p.idx(x, y)]
			}
			if !p.right[p.idx(x, y)] {
				p.hash ^= p.zt.right[p.idx(x, y)]
			}
		}
	}
	for y := 0; y < p.height; y++ {
		if !p.left[y] {
			p.hash ^= p.zt.left[y]
		}
	}
}

// Clone returns an independent copy sharing the (immutable) constant table.
func (p *SimplePosition) Clone() *SimplePosition {
	ret := &SimplePosition{
		width:  p.width,
		height: p.height,
		top:    append([]bool(nil), p.top...),
		left:   append([]bool(nil), p.left...),
		down:   append([]bool(nil), p.down...),
		right:  append([]bool(nil), p.right...),
		zt:     p.zt,
		hash:   p.hash,
	}
	return ret
}

func (p *SimplePosition) idx(x, y int) int {
	return x*p.height + y
}

func (p *SimplePosition) Width() int {
	return p.width
}

func (p *SimplePosition) Height() int {
	return p.height
}

// IsLegalMove returns true iff the move names an uncut edge. Out-of-range
// coordinates yield false.
func (p *SimplePosition) IsLegalMove(m Move) bool {
	if m.X < 0 || m.X >= p.width || m.Y < 0 || m.Y >= p.height {
		return false
	}
	switch {
	case m.X == 0 && m.Side == Left:
		return p.left[m.Y]
	case m.Y == 0 && m.Side == Top:
		return p.top[m.X]
	case m.Side == Top:
		return p.down[p.idx(m.X, m.Y-1)]
	case m.Side == Bottom:
		return p.down[p.idx(m.X, m.Y)]
	case m.Side == Left:
		return p.right[p.idx(m.X-1, m.Y)]
	default:
		return p.right[p.idx(m.X, m.Y)]
	}
}

func (p *SimplePosition) setEdge(m Move, intact bool) {
	switch {
	case m.X == 0 && m.Side == Left:
		p.left[m.Y] = intact
	case m.Y == 0 && m.Side == Top:
		p.top[m.X] = intact
	case m.Side == Top:
		p.down[p.idx(m.X, m.Y-1)] = intact
	case m.Side == Bottom:
		p.down[p.idx(m.X, m.Y)] = intact
	case m.Side == Left:
		p.right[p.idx(m.X-1, m.Y)] = intact
	default:
		p.right[p.idx(m.X, m.Y)] = intact
	}
}

// Valency returns the number of still-uncut sides of the square at (x,y).
func (p *SimplePosition) Valency(x, y int) int {
	ret := 0
	for _, s := range Sides() {
		if p.IsLegalMove(Move{X: x, Y: y, Side: s}) {
			ret++
		}
	}
	return ret
}

// IsCaptured returns true iff all four sides of the square at (x,y) are cut.
func (p *SimplePosition) IsCaptured(x, y int) bool {
	return p.Valency(x, y) == 0
}

// Offset returns the coordinate of the neighbouring square in the direction
// of the given side, if that square is on the board.
func (p *SimplePosition) Offset(x, y int, s Side) (int, int, bool) {
	switch {
	case x == 0 && s == Left:
		return 0, 0, false
	case x == p.width-1 && s == Right:
		return 0, 0, false
	case y == 0 && s == Top:
		return 0, 0, false
	case y == p.height-1 && s == Bottom:
		return 0, 0, false
	case s == Left:
		return x - 1, y, true
	case s == Right:
		return x + 1, y, true
	case s == Top:
		return x, y - 1, true
	default:
		return x, y + 1, true
	}
}

// MovesEquivalent returns true iff the two moves name the same edge, under
// either of an interior edge's two names.
func (p *SimplePosition) MovesEquivalent(m1, m2 Move) bool {
	if m1 == m2 {
		return true
	}
	if nx, ny, ok := p.Offset(m1.X, m1.Y, m1.Side); ok {
		return m2.X == nx && m2.Y == ny && m2.Side == m1.Side.Opposite()
	}
	return false
}

// WouldCapture returns the number of coins the move would capture: one for
// the move's own square if it is down to its last string, and one for the
// neighbour across the edge likewise.
func (p *SimplePosition) WouldCapture(m Move) int {
	ret := 0
	if p.Valency(m.X, m.Y) == 1 {
		ret++
	}
	if nx, ny, ok := p.Offset(m.X, m.Y, m.Side); ok {
		if p.Valency(nx, ny) == 1 {
			ret++
		}
	}
	return ret
}

// MakeMove cuts the edge and reports captures, turn and game end. Panics on
// an illegal move: the solvers only ever draw from LegalMoves, so an illegal
// move here is a programming error.
func (p *SimplePosition) MakeMove(m Move) MoveOutcome {
	if !p.IsLegalMove(m) {
		panic(fmt.Sprintf("illegal move %v, pos:\n%v", m, p))
	}
	p.setEdge(m, false)
	p.hash ^= p.zt.constant(m, p.height)

	captures := 0
	if p.IsCaptured(m.X, m.Y) {
		captures++
	}
	if nx, ny, ok := p.Offset(m.X, m.Y, m.Side); ok && p.IsCaptured(nx, ny) {
		captures++
	}

	end := p.IsEndOfGame()
	return MoveOutcome{
		CoinsCaptured: captures,
		EndOfTurn:     captures == 0 || end,
		EndOfGame:     end,
	}
}

// UndoMove restores the edge cut by the given move. Behaviour on an edge that
// was never cut is undefined.
func (p *SimplePosition) UndoMove(m Move) {
	p.setEdge(m, true)
	p.hash ^= p.zt.constant(m, p.height)
}

// IsEndOfGame returns true iff every string has been cut.
func (p *SimplePosition) IsEndOfGame() bool {
	for _, b := range p.top {
		if b {
			return false
		}
	}
	for _, b := range p.left {
		if b {
			return false
		}
	}
	for i := range p.down {
		if p.down[i] || p.right[i] {
			return false
		}
	}
	return true
}

// LegalMoves enumerates the uncut edges once each: border edges under their
// border name, interior horizontal edges as the Bottom of the upper square,
// interior vertical edges as the Right of the left square. The order is fixed
// given a position.
func (p *SimplePosition) LegalMoves() []Move {
	var ret []Move
	for x, b := range p.top {
		if b {
			ret = append(ret, Move{X: x, Y: 0, Side: Top})
		}
	}
	for y, b := range p.left {
		if b {
			ret = append(ret, Move{X: 0, Y: y, Side: Left})
		}
	}
	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			if p.down[p.idx(x, y)] {
				ret = append(ret, Move{X: x, Y: y, Side: Bottom})
			}
			if p.right[p.idx(x, y)] {
				ret = append(ret, Move{X: x, Y: y, Side: Right})
			}
		}
	}
	return ret
}

// ZHash returns the current Zobrist hash.
func (p *SimplePosition) ZHash() ZobristHash {
	return p.hash
}

// Equal returns true iff the positions have the same dimensions and the same
// legality on every edge.
func (p *SimplePosition) Equal(o *SimplePosition) bool {
	if p.width != o.width || p.height != o.height {
		return false
	}
	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			for _, s := range Sides() {
				m := Move{X: x, Y: y, Side: s}
				if p.IsLegalMove(m) != o.IsLegalMove(m) {
					return false
				}
			}
		}
	}
	return true
}

// String renders the position as dots and lines with row/column headers
// (indices shown mod 10).
func (p *SimplePosition) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for x := 0; x < p.width; x++ {
		fmt.Fprintf(&sb, " %v", x%10)
	}
	sb.WriteString("\n  ")
	for _, b := range p.top {
		sb.WriteString("+")
		sb.WriteString(gap(b, "-"))
	}
	sb.WriteString("+\n")
	for y := 0; y < p.height; y++ {
		fmt.Fprintf(&sb, "%v %v", y%10, gap(p.left[y], "|"))
		for x := 0; x < p.width; x++ {
			sb.WriteString(" ")
			sb.WriteString(gap(p.right[p.idx(x, y)], "|"))
		}
		sb.WriteString("\n  ")
		for x := 0; x < p.width; x++ {
			sb.WriteString("+")
			sb.WriteString(gap(p.down[p.idx(x, y)], "-"))
		}
		sb.WriteString("+\n")
	}
	return sb.String()
}

func gap(intact bool, line string) string {
	if intact {
		return " "
	}
	return line
}
