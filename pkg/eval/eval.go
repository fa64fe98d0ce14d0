// Package eval computes optimal differential scores of strings-and-coins
// positions: the mover's captures minus the opponent's under best play.
package eval

import (
	"github.com/amdw/dotsandboxes/pkg/board"
	"github.com/amdw/dotsandboxes/pkg/nimstring"
	"github.com/seekerror/stdlib/pkg/lang"
)

type entry[M any] struct {
	value int
	best  M
}

// Evaluate returns the score the side to move achieves under optimal play,
// from the mover's point of view, and a move achieving it. The move is absent
// iff the game is over. The position is mutated during the search but
// restored bit-identically before returning.
func Evaluate[M any](pos board.Position[M]) (int, lang.Optional[M]) {
	cache := map[board.ZobristHash]entry[M]{}
	return evalCached(pos, cache)
}

func evalCached[M any](pos board.Position[M], cache map[board.ZobristHash]entry[M]) (int, lang.Optional[M]) {
	if e, ok := cache[pos.ZHash()]; ok {
		return e.value, lang.Some(e.best)
	}
	return evalMoves(pos, movesToConsider(pos), cache)
}

func evalMoves[M any](pos board.Position[M], moves []M, cache map[board.ZobristHash]entry[M]) (int, lang.Optional[M]) {
	if len(moves) == 0 {
		var none lang.Optional[M]
		return 0, none
	}

	value := 0
	best := moves[0]
	for i, m := range moves {
		outcome := pos.MakeMove(m)
		next, _ := evalCached(pos, cache)
		pos.UndoMove(m)

		// A capture retains the turn; otherwise the score flips sign.
		v := outcome.CoinsCaptured + next
		if outcome.CoinsCaptured == 0 {
			v = -next
		}
		if i == 0 || v > value {
			value, best = v, m
		}
	}

	cache[pos.ZHash()] = entry[M]{value: value, best: best}
	return value, lang.Some(best)
}

// movesToConsider prunes the candidate moves using the Nimstring structure of
// the position:
//
//   - A capture that does not end the looniness of the position is forced and
//     is the only candidate. In a non-loony position any capture qualifies.
//   - In a loony position the mover either takes everything or declines the
//     last two coins with the hard-hearted handout, so only the capture and
//     its double-dealing alternative survive.
//   - Otherwise all legal moves are considered.
func movesToConsider[M any](pos board.Position[M]) []M {
	legal := pos.LegalMoves()
	loony := pos.IsLoony()

	var capture M
	hasCapture := false
	for _, m := range legal {
		if pos.WouldCapture(m) == 0 {
			continue
		}
		capture, hasCapture = m, true
		if !loony || nimstring.WouldBeLoony(pos, m) {
			return []M{m}
		}
	}

	if loony {
		if !hasCapture {
			panic("loony position without a capture")
		}
		return []M{capture, pos.FindDdealMove(capture)}
	}
	return legal
}
