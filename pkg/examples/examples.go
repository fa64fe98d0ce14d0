// Package examples holds study positions: chain and loop families and the
// endgames from Berlekamp's "Dots and Boxes: Sophisticated Child's Play".
package examples

import (
	"github.com/amdw/dotsandboxes/pkg/board"
)

func cut(p *board.SimplePosition, x, y int, s board.Side) {
	p.MakeMove(board.Move{X: x, Y: y, Side: s})
}

// P50Top is the top component of the page-50 example from Berlekamp's book.
func P50Top() *board.SimplePosition {
	p := board.NewGame(5, 2)
	cut(p, 0, 0, board.Top)
	cut(p, 1, 0, board.Top)
	cut(p, 0, 0, board.Left)
	cut(p, 0, 1, board.Left)
	cut(p, 1, 0, board.Bottom)
	cut(p, 2, 0, board.Bottom)
	cut(p, 3, 0, board.Bottom)
	cut(p, 3, 0, board.Right)
	for x := 0; x < 5; x++ {
		cut(p, x, 1, board.Bottom)
	}
	return p
}

// P50BottomLeft is the bottom-left component of the page-50 example.
func P50BottomLeft() *board.SimplePosition {
	p := board.NewGame(3, 2)
	cut(p, 0, 0, board.Top)
	cut(p, 1, 0, board.Top)
	cut(p, 2, 0, board.Top)
	cut(p, 2, 0, board.Right)
	cut(p, 2, 1, board.Right)
	cut(p, 1, 0, board.Bottom)
	return p
}

// P50BottomRight is the bottom-right component of the page-50 example.
func P50BottomRight() *board.SimplePosition {
	p := board.NewGame(2, 2)
	cut(p, 0, 0, board.Top)
	cut(p, 1, 0, board.Top)
	cut(p, 0, 0, board.Left)
	cut(p, 0, 1, board.Left)
	return p
}

// P50 is the composite example from page 50 of Berlekamp's book.
func P50() *board.SimplePosition {
	p := board.NewGame(5, 4)
	cut(p, 0, 0, board.Top)
	cut(p, 0, 0, board.Left)
	cut(p, 1, 0, board.Top)
	cut(p, 1, 0, board.Bottom)
	cut(p, 2, 0, board.Bottom)
	cut(p, 3, 0, board.Bottom)
	cut(p, 3, 0, board.Right)
	cut(p, 0, 1, board.Left)
	cut(p, 0, 1, board.Bottom)
	cut(p, 1, 1, board.Bottom)
	cut(p, 2, 1, board.Bottom)
	cut(p, 3, 1, board.Bottom)
	cut(p, 4, 1, board.Bottom)
	cut(p, 1, 2, board.Bottom)
	cut(p, 2, 2, board.Right)
	cut(p, 2, 3, board.Right)
	return p
}

// Icelandic is the Icelandic opening: all ground strings on the top and left
// borders cut.
func Icelandic(width, height int) *board.SimplePosition {
	p := board.NewGame(width, height)
	for y := 0; y < height; y++ {
		cut(p, 0, y, board.Left)
	}
	for x := 0; x < width; x++ {
		cut(p, x, 0, board.Top)
	}
	return p
}

// MultiChains is a position of chainCount horizontal chains of chainSize
// coins each.
func MultiChains(chainSize, chainCount int) *board.SimplePosition {
	p := board.NewGame(chainSize, chainCount)
	for x := 0; x < chainSize; x++ {
		cut(p, x, 0, board.Top)
		for y := 0; y < chainCount; y++ {
			cut(p, x, y, board.Bottom)
		}
	}
	return p
}

// MakeChain is a single horizontal chain of the given length.
func MakeChain(length int) *board.SimplePosition {
	return MultiChains(length, 1)
}

// DoubleChain is two horizontal chains of the given length.
func DoubleChain(length int) *board.SimplePosition {
	return MultiChains(length, 2)
}

// DoubleLoop is two loops of the given width. Requires width >= 2.
func DoubleLoop(width int) *board.SimplePosition {
	p := board.NewGame(width, 4)
	for x := 0; x < width; x++ {
		cut(p, x, 0, board.Top)
		cut(p, x, 1, board.Bottom)
		cut(p, x, 3, board.Bottom)
	}
	for y := 0; y < 4; y++ {
		cut(p, 0, y, board.Left)
		cut(p, width-1, y, board.Right)
	}
	for x := 1; x < width-1; x++ {
		cut(p, x, 0, board.Bottom)
		cut(p, x, 2, board.Bottom)
	}
	return p
}

// Ex3p1 is Exercise 3.1 from Berlekamp's book.
func Ex3p1() *board.SimplePosition {
	p := board.NewGame(3, 3)
	cut(p, 0, 0, board.Top)
	cut(p, 0, 0, board.Left)
	cut(p, 1, 0, board.Top)
	cut(p, 1, 0, board.Bottom)
	cut(p, 2, 0, board.Bottom)
	cut(p, 0, 1, board.Left)
	cut(p, 0, 1, board.Right)
	cut(p, 0, 2, board.Right)
	cut(p, 1, 2, board.Bottom)
	cut(p, 2, 2, board.Right)
	return p
}

// Ex3p12 is Exercise 3.12 from Berlekamp's book.
func Ex3p12() *board.SimplePosition {
	p := board.NewGame(5, 5)
	for x := 0; x < 5; x++ {
		cut(p, x, 0, board.Top)
	}
	cut(p, 0, 0, board.Bottom)
	cut(p, 2, 0, board.Right)
	cut(p, 0, 1, board.Left)
	cut(p, 1, 1, board.Bottom)
	cut(p, 1, 1, board.Right)
	cut(p, 2, 1, board.Right)
	cut(p, 3, 1, board.Bottom)
	cut(p, 4, 1, board.Bottom)
	cut(p, 0, 2, board.Right)
	cut(p, 0, 2, board.Bottom)
	cut(p, 2, 2, board.Right)
	cut(p, 2, 2, board.Bottom)
	cut(p, 4, 2, board.Right)
	cut(p, 0, 3, board.Right)
	cut(p, 2, 3, board.Bottom)
	cut(p, 3, 3, board.Bottom)
	cut(p, 3, 3, board.Right)
	cut(p, 4, 3, board.Right)
	cut(p, 0, 4, board.Right)
	cut(p, 1, 4, board.Right)
	cut(p, 3, 4, board.Bottom)
	cut(p, 4, 4, board.Bottom)
	cut(p, 4, 4, board.Right)
	return p
}

// Ex6p2 is Exercise 6.2 from Berlekamp's book.
func Ex6p2() *board.SimplePosition {
	p := board.NewGame(3, 2)
	for x := 0; x < 3; x++ {
		cut(p, x, 0, board.Top)
	}
	for y := 0; y < 2; y++ {
		cut(p, 2, y, board.Right)
	}
	cut(p, 1, 0, board.Bottom)
	return p
}

// Ex7p2 is Exercise 7.2 from Berlekamp's book.
func Ex7p2() *board.SimplePosition {
	p := board.NewGame(5, 5)
	cut(p, 0, 0, board.Right)
	cut(p, 1, 0, board.Right)
	cut(p, 3, 0, board.Right)
	cut(p, 0, 1, board.Left)
	cut(p, 0, 1, board.Right)
	cut(p, 3, 1, board.Right)
	cut(p, 1, 1, board.Bottom)
	cut(p, 2, 1, board.Bottom)
	cut(p, 3, 1, board.Bottom)
	cut(p, 0, 2, board.Bottom)
	cut(p, 0, 2, board.Right)
	cut(p, 2, 2, board.Bottom)
	cut(p, 3, 2, board.Right)
	cut(p, 4, 2, board.Right)
	cut(p, 1, 3, board.Right)
	cut(p, 3, 3, board.Right)
	cut(p, 3, 3, board.Bottom)
	cut(p, 1, 4, board.Right)
	cut(p, 2, 4, board.Right)
	return p
}

// OneLongMultiThree is the one-long-chain multiple-3-chain compound family:
// a single chain of longChainSize coins as part 0, followed by threeChainCount
// 3-chains.
func OneLongMultiThree(threeChainCount, longChainSize int) *board.CompoundPosition {
	parts := make([]*board.SimplePosition, 0, threeChainCount+1)
	parts = append(parts, MakeChain(longChainSize))
	for i := 0; i < threeChainCount; i++ {
		parts = append(parts, MakeChain(3))
	}
	return board.NewCompound(parts)
}
