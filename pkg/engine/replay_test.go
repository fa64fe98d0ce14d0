package engine_test

import (
	"context"
	"strings"
	"testing"

	"github.com/amdw/dotsandboxes/pkg/board"
	"github.com/amdw/dotsandboxes/pkg/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, content string) (*engine.Engine, []string, error) {
	t.Helper()
	var out []string
	e, err := engine.Load(context.Background(), "test", "tester", strings.NewReader(content),
		func(s string) { out = append(out, s) })
	return e, out, err
}

func TestLoadSinglePart(t *testing.T) {
	e, _, err := load(t, "3 2\n")
	require.NoError(t, err)

	parts := e.Position().Parts()
	require.Len(t, parts, 1)
	assert.Equal(t, 3, parts[0].Width())
	assert.Equal(t, 2, parts[0].Height())
}

func TestLoadMultiPart(t *testing.T) {
	e, _, err := load(t, "4 1 3 1 3 1\n")
	require.NoError(t, err)

	parts := e.Position().Parts()
	require.Len(t, parts, 3)
	assert.Equal(t, 4, parts[0].Width())
	assert.Equal(t, 3, parts[1].Width())
	assert.Equal(t, 3, parts[2].Width())
}

func TestLoadReplaysMoves(t *testing.T) {
	content := `
# A 2x2 game with two moves made, one per grammar form.
2 2

0 0 t
0 1 1 left
`
	e, _, err := load(t, content)
	require.NoError(t, err)

	pos := e.Position()
	assert.False(t, pos.IsLegalMove(board.NewPartMove(0, 0, 0, board.Top)))
	assert.False(t, pos.IsLegalMove(board.NewPartMove(0, 1, 1, board.Left)))
	assert.Len(t, pos.LegalMoves(), 10)
}

func TestLoadUndo(t *testing.T) {
	content := "2 2\n0 0 t\nu 0 0 t\n"
	e, _, err := load(t, content)
	require.NoError(t, err)
	assert.Len(t, e.Position().LegalMoves(), 12)
}

func TestLoadEmitsAnalysis(t *testing.T) {
	_, out, err := load(t, "1 1\n0 0 t\n0 0 b\neval\n")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "V(P) = -1, best move (0, 0) Left", out[len(out)-1])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty input", ""},
		{"blank input", "\n\n# comment only\n"},
		{"odd dimension count", "3 2 4\n"},
		{"non-integer dimension", "3 x\n"},
		{"zero dimension", "0 2\n"},
		{"negative dimension", "3 -1\n"},
		{"unparseable command", "2 2\nbogus\n"},
		{"unknown side", "2 2\n0 0 q\n"},
		{"out of bounds part", "2 2\n1 0 0 t\n"},
		{"illegal move", "2 2\n0 0 t\n0 0 t\n"},
		{"undo uncut edge", "2 2\nu 0 0 t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := load(t, tt.content)
			assert.Error(t, err)
		})
	}
}

func TestLoadStopsAtQuit(t *testing.T) {
	e, out, err := load(t, "2 2\nquit\n0 0 t\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Bye bye!")
	// Commands after quit are not replayed.
	assert.Len(t, e.Position().LegalMoves(), 12)
}
