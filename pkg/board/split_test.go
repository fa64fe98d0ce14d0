package board_test

import (
	"testing"

	"github.com/amdw/dotsandboxes/pkg/board"
	"github.com/amdw/dotsandboxes/pkg/examples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitP50(t *testing.T) {
	pos := examples.P50()
	frags := pos.Fragments()
	require.Len(t, frags, 3)

	find := func(xOff, yOff int) board.Fragment {
		for _, f := range frags {
			if f.XOffset == xOff && f.YOffset == yOff {
				return f
			}
		}
		t.Fatalf("no fragment at offset (%v,%v)", xOff, yOff)
		return board.Fragment{}
	}

	assert.True(t, find(0, 0).Pos.Equal(examples.P50Top()))
	assert.True(t, find(0, 2).Pos.Equal(examples.P50BottomLeft()))
	assert.True(t, find(3, 2).Pos.Equal(examples.P50BottomRight()))
}

func TestSplitUnsplittable(t *testing.T) {
	pos := board.NewGame(3, 3)
	frags := pos.Fragments()
	require.Len(t, frags, 1)
	assert.Equal(t, 0, frags[0].XOffset)
	assert.Equal(t, 0, frags[0].YOffset)
	assert.True(t, frags[0].Pos.Equal(pos))
}

func TestSplitIdempotent(t *testing.T) {
	for _, frag := range examples.P50().Split() {
		again := frag.Split()
		require.Len(t, again, 1)
		assert.True(t, again[0].Equal(frag))
	}
}

func TestSplitSkipsCapturedSquares(t *testing.T) {
	// Cut a 1x1 board down to nothing: its square has valency 0 and must not
	// seed a fragment.
	pos := board.NewGame(1, 1)
	for _, m := range pos.LegalMoves() {
		pos.MakeMove(m)
	}
	assert.Empty(t, pos.Fragments())
}

func TestSplitPartition(t *testing.T) {
	pos := examples.P50()
	frags := pos.Fragments()

	// Every uncaptured square appears in exactly one fragment, and fragment
	// edges match the source.
	covered := map[[2]int]int{}
	for _, f := range frags {
		p := f.Pos
		for x := 0; x < p.Width(); x++ {
			for y := 0; y < p.Height(); y++ {
				if p.Valency(x, y) == 0 {
					continue
				}
				covered[[2]int{x + f.XOffset, y + f.YOffset}]++
				for _, s := range board.Sides() {
					assert.Equal(t,
						pos.IsLegalMove(board.NewMove(x+f.XOffset, y+f.YOffset, s)),
						p.IsLegalMove(board.NewMove(x, y, s)))
				}
			}
		}
	}
	for x := 0; x < pos.Width(); x++ {
		for y := 0; y < pos.Height(); y++ {
			if pos.Valency(x, y) > 0 {
				assert.Equal(t, 1, covered[[2]int{x, y}], "square (%v,%v)", x, y)
			}
		}
	}
}

func TestCompoundSplit(t *testing.T) {
	pos := examples.OneLongMultiThree(2, 5)
	parts := pos.Split()
	require.Len(t, parts, 3)
	assert.True(t, parts[0].Equal(examples.MakeChain(5)))
	assert.True(t, parts[1].Equal(examples.MakeChain(3)))
	assert.True(t, parts[2].Equal(examples.MakeChain(3)))
}
