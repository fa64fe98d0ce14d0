package board

import (
	"math/rand"
	"sync"
)

// ZobristHash is a position hash over cut strings. Each edge of a board shape
// is assigned an independent pseudo-random constant; the hash of a position is
// a per-shape initial constant XORed with the constants of every cut edge.
// XOR makes the update O(1) and self-inverse, so a
// MakeMove/UndoMove pair leaves the hash bit-identical on any path through
// the game graph.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// zobristTable holds the per-edge constants for one board shape. Tables are
// keyed by (width, height, salt) so compound parts of identical shape still
// hash apart, while two positions of the same shape and salt share constants
// and therefore hash identically when their cut sets match.
type zobristTable struct {
	top, left   []ZobristHash
	down, right []ZobristHash
	initial     ZobristHash
}

type tableKey struct {
	width, height, salt int
}

var (
	tablesMu sync.Mutex
	tables   = map[tableKey]*zobristTable{}
)

// zobristFor returns the shared constant table for the given shape and salt,
// creating it on first use.
func zobristFor(width, height, salt int) *zobristTable {
	tablesMu.Lock()
	defer tablesMu.Unlock()

	key := tableKey{width: width, height: height, salt: salt}
	if zt, ok := tables[key]; ok {
		return zt
	}

	seed := int64(salt)<<32 | int64(width)<<16 | int64(height)
	r := rand.New(rand.NewSource(seed))

	zt := &zobristTable{
		top:   make([]ZobristHash, width),
		left:  make([]ZobristHash, height),
		down:  make([]ZobristHash, width*height),
		right: make([]ZobristHash, width*height),
	}
	for x := 0; x < width; x++ {
		zt.top[x] = ZobristHash(r.Uint64())
		for y := 0; y < height; y++ {
			zt.right[x*height+y] = ZobristHash(r.Uint64())
			zt.down[x*height+y] = ZobristHash(r.Uint64())
		}
	}
	for y := 0; y < height; y++ {
		zt.left[y] = ZobristHash(r.Uint64())
	}
	zt.initial = ZobristHash(r.Uint64())

	tables[key] = zt
	return zt
}

// constant returns the per-edge constant for the unique backing entry of the
// move's edge on a board of the given height.
func (zt *zobristTable) constant(m Move, height int) ZobristHash {
	switch {
	case m.X == 0 && m.Side == Left:
		return zt.left[m.Y]
	case m.Y == 0 && m.Side == Top:
		return zt.top[m.X]
	case m.Side == Left:
		return zt.right[(m.X-1)*height+m.Y]
	case m.Side == Right:
		return zt.right[m.X*height+m.Y]
	case m.Side == Bottom:
		return zt.down[m.X*height+m.Y]
	default: // Top with m.Y > 0
		return zt.down[m.X*height+m.Y-1]
	}
}
