package nimstring

import (
	"github.com/amdw/dotsandboxes/pkg/board"
)

// WouldBeLoony reports whether making the given move leaves a loony position,
// regardless of whether the current position is loony. The position is
// restored before returning. Note that a move is a loony move iff this
// returns true and the move is not a capture: a capture is never a loony move
// but can still leave a loony position, e.g. taking the first coin of an open
// 3-chain.
func WouldBeLoony[M any](pos board.Position[M], m M) bool {
	pos.MakeMove(m)
	ret := pos.IsLoony()
	pos.UndoMove(m)
	return ret
}

// Calculate returns the Nimstring value of the position. The position is
// mutated during the computation but restored bit-identically (hash included)
// before returning.
func Calculate[M any](pos board.Position[M]) Value {
	cache := map[board.ZobristHash]Value{}
	return calcValue(pos, cache)
}

// CalculateWithMoves returns the Nimstring value of the position along with
// the value attained by each legal move. The per-move values share the main
// computation's cache.
func CalculateWithMoves[M comparable](pos board.Position[M]) (Value, map[M]Value) {
	cache := map[board.ZobristHash]Value{}
	val := calcValue(pos, cache)

	perMove := make(map[M]Value)
	for _, m := range pos.LegalMoves() {
		pos.MakeMove(m)
		perMove[m] = calcValue(pos, cache)
		pos.UndoMove(m)
	}
	return val, perMove
}

func calcValue[M any](pos board.Position[M], cache map[board.ZobristHash]Value) Value {
	if v, ok := cache[pos.ZHash()]; ok {
		return v
	}
	if pos.IsLoony() {
		cache[pos.ZHash()] = Loony
		return Loony
	}

	// A capture never changes the Nimstring value of a non-loony position, so
	// the first one found suffices.
	legal := pos.LegalMoves()
	for _, m := range legal {
		if pos.WouldCapture(m) > 0 {
			pos.MakeMove(m)
			ret := calcValue(pos, cache)
			pos.UndoMove(m)
			cache[pos.ZHash()] = ret
			return ret
		}
	}

	// Independent components add under the value monoid; evaluating them
	// separately (sharing the cache) collapses the combinatorial product of
	// sub-games into a sum.
	if parts := pos.Split(); len(parts) > 1 {
		ret := Nimber(0)
		for _, part := range parts {
			ret = ret.Add(calcValue[board.Move](part, cache))
		}
		cache[pos.ZHash()] = ret
		return ret
	}

	options := map[uint64]bool{}
	for _, m := range legal {
		pos.MakeMove(m)
		if n, ok := calcValue(pos, cache).V(); ok {
			options[n] = true
		}
		pos.UndoMove(m)
	}
	ret := Nimber(mex(options))
	cache[pos.ZHash()] = ret
	return ret
}
