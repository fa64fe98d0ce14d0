package engine_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amdw/dotsandboxes/pkg/board"
	"github.com/amdw/dotsandboxes/pkg/engine"
	"github.com/amdw/dotsandboxes/pkg/examples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(parts ...*board.SimplePosition) *engine.Engine {
	return engine.New(context.Background(), "test", "tester", board.NewCompound(parts))
}

func execute(t *testing.T, e *engine.Engine, cmd engine.Command) []string {
	var out []string
	quit, err := e.Execute(context.Background(), cmd, func(s string) { out = append(out, s) })
	require.NoError(t, err)
	require.False(t, quit)
	return out
}

func TestExecuteMakeAndUndo(t *testing.T) {
	e := newTestEngine(board.NewGame(2, 2))
	m := board.NewPartMove(0, 0, 0, board.Top)

	require.NoError(t, e.MakeMove(m))
	assert.False(t, e.Position().IsLegalMove(m))

	// Making the same move again is refused.
	assert.Error(t, e.MakeMove(m))

	require.NoError(t, e.UndoMove(m))
	assert.True(t, e.Position().IsLegalMove(m))

	// Undoing an uncut edge is refused rather than corrupting the position.
	assert.Error(t, e.UndoMove(m))

	// Out-of-bounds parts and coordinates are refused.
	assert.Error(t, e.MakeMove(board.NewPartMove(1, 0, 0, board.Top)))
	assert.Error(t, e.MakeMove(board.NewPartMove(0, 5, 0, board.Top)))
	assert.Error(t, e.UndoMove(board.NewPartMove(1, 0, 0, board.Top)))
	assert.Error(t, e.UndoMove(board.NewPartMove(0, 5, 0, board.Top)))
}

func TestExecuteNimstringValue(t *testing.T) {
	e := newTestEngine(examples.MakeChain(1))

	out := execute(t, e, engine.Command{Kind: engine.NimstringValue})
	require.Len(t, out, 3)
	assert.Equal(t, "Position value is *1", out[0])
	assert.Equal(t, "(0, 0) Left *0", out[1])
	assert.Equal(t, "(0, 0) Right *0", out[2])
}

func TestExecuteNimstringValueCompound(t *testing.T) {
	e := newTestEngine(examples.MakeChain(1), examples.MakeChain(1))

	out := execute(t, e, engine.Command{Kind: engine.NimstringValue})
	require.Len(t, out, 5)
	assert.Equal(t, "Position value is *0", out[0])
	assert.Equal(t, "Part 0: (0, 0) Left *1", out[1])
	assert.Equal(t, "Part 0: (0, 0) Right *1", out[2])
	assert.Equal(t, "Part 1: (0, 0) Left *1", out[3])
	assert.Equal(t, "Part 1: (0, 0) Right *1", out[4])
}

func TestExecuteEvaluate(t *testing.T) {
	e := newTestEngine(examples.MakeChain(1))

	out := execute(t, e, engine.Command{Kind: engine.Evaluate})
	require.Len(t, out, 1)
	assert.True(t, strings.HasPrefix(out[0], "V(P) = -1, best move "), out[0])
}

func TestExecuteEvaluateEndOfGame(t *testing.T) {
	e := newTestEngine(board.NewEndGame(2, 2))

	out := execute(t, e, engine.Command{Kind: engine.Evaluate})
	require.Len(t, out, 1)
	assert.Equal(t, "V(P) = 0", out[0])
}

func TestExecuteHelp(t *testing.T) {
	e := newTestEngine(board.NewGame(2, 2))
	out := execute(t, e, engine.Command{Kind: engine.Help})
	require.NotEmpty(t, out)
	assert.Equal(t, "Available commands:", out[0])
}

func TestExecuteQuit(t *testing.T) {
	e := newTestEngine(board.NewGame(2, 2))
	quit, err := e.Execute(context.Background(), engine.Command{Kind: engine.Quit}, func(string) {})
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestRenderSinglePart(t *testing.T) {
	e := newTestEngine(board.NewGame(2, 1))
	assert.False(t, strings.HasPrefix(e.Render(), "Component"))

	e = newTestEngine(board.NewGame(2, 1), board.NewGame(2, 1))
	assert.True(t, strings.HasPrefix(e.Render(), "Component 0:"))
}

func TestElapsed(t *testing.T) {
	_, ok := engine.Elapsed(50 * time.Millisecond)
	assert.False(t, ok)

	msg, ok := engine.Elapsed(2500 * time.Millisecond)
	assert.True(t, ok)
	assert.Equal(t, "(2.5 seconds)", msg)
}
