package board

// Fragment is a connected component extracted from a larger position,
// repacked into its minimal bounding rectangle. XOffset/YOffset locate the
// fragment's origin in the source position.
type Fragment struct {
	Pos              *SimplePosition
	XOffset, YOffset int
}

// Fragments decomposes the position into its connected components: two
// squares belong to the same component iff they are linked through still-
// uncut inter-square strings. Captured squares (valency 0) seed no component
// and appear in no fragment. A fully connected position yields a single
// fragment equal to the position itself. Component order follows the scan
// order (x ascending, then y ascending).
func (p *SimplePosition) Fragments() []Fragment {
	visited := make([]bool, p.width*p.height)

	var ret []Fragment
	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			if visited[p.idx(x, y)] || p.Valency(x, y) == 0 {
				continue
			}
			coords := p.component(x, y, visited)
			ret = append(ret, p.makeFragment(coords))
		}
	}
	return ret
}

// component collects the coordinates reachable from (x,y) over uncut
// inter-square strings. Iterative stack: deep chains would overflow a
// recursive walk.
func (p *SimplePosition) component(x, y int, visited []bool) [][2]int {
	var coords [][2]int
	stack := [][2]int{{x, y}}
	visited[p.idx(x, y)] = true
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		coords = append(coords, c)
		for _, s := range Sides() {
			if !p.IsLegalMove(Move{X: c[0], Y: c[1], Side: s}) {
				continue
			}
			if nx, ny, ok := p.Offset(c[0], c[1], s); ok && !visited[p.idx(nx, ny)] {
				visited[p.idx(nx, ny)] = true
				stack = append(stack, [2]int{nx, ny})
			}
		}
	}
	return coords
}

// makeFragment repacks the component into a fresh minimal-bounding-rectangle
// position: allocate with all strings cut, then restore exactly the strings
// still uncut in the source.
func (p *SimplePosition) makeFragment(coords [][2]int) Fragment {
	xl, xr, yt, yb := coords[0][0], coords[0][0], coords[0][1], coords[0][1]
	for _, c := range coords {
		xl, xr = min(xl, c[0]), max(xr, c[0])
		yt, yb = min(yt, c[1]), max(yb, c[1])
	}

	frag := NewEndGame(xr-xl+1, yb-yt+1)
	for _, c := range coords {
		for _, s := range Sides() {
			fm := Move{X: c[0] - xl, Y: c[1] - yt, Side: s}
			if p.IsLegalMove(Move{X: c[0], Y: c[1], Side: s}) && !frag.IsLegalMove(fm) {
				frag.UndoMove(fm)
			}
		}
	}
	return Fragment{Pos: frag, XOffset: xl, YOffset: yt}
}

// Split returns the connected components as positions, dropping the offsets.
func (p *SimplePosition) Split() []*SimplePosition {
	frags := p.Fragments()
	ret := make([]*SimplePosition, len(frags))
	for i, f := range frags {
		ret[i] = f.Pos
	}
	return ret
}

// Split splits each part and concatenates the results.
func (c *CompoundPosition) Split() []*SimplePosition {
	var ret []*SimplePosition
	for _, part := range c.parts {
		ret = append(ret, part.Split()...)
	}
	return ret
}
