package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amdw/dotsandboxes/pkg/board"
	"github.com/seekerror/logw"
)

// Load builds an engine from a replay stream. The first content line holds an
// even count of positive integers "w1 h1 w2 h2 ...", one part per pair;
// subsequent lines are commands in the console grammar. Blank lines and lines
// starting with '#' are ignored. Any malformed or refused command aborts with
// a descriptive error.
func Load(ctx context.Context, name, author string, r io.Reader, emit func(string)) (*Engine, error) {
	scanner := bufio.NewScanner(r)

	e, err := loadPosition(ctx, name, author, scanner)
	if err != nil {
		return nil, err
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := ParseCommand(len(e.Position().Parts()), line)
		if err != nil {
			return nil, fmt.Errorf("cannot execute [%v]: %w", line, err)
		}
		quit, err := e.Execute(ctx, cmd, emit)
		if err != nil {
			return nil, fmt.Errorf("cannot execute [%v]: %w", line, err)
		}
		if quit {
			logw.Infof(ctx, "Replay requested quit")
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read replay: %w", err)
	}
	return e, nil
}

func loadPosition(ctx context.Context, name, author string, scanner *bufio.Scanner) (*Engine, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dims := strings.Fields(line)
		if len(dims)%2 != 0 {
			return nil, fmt.Errorf("odd dimension count in [%v]", line)
		}

		var parts []*board.SimplePosition
		for i := 0; i < len(dims); i += 2 {
			w, err := strconv.Atoi(dims[i])
			if err != nil || w <= 0 {
				return nil, fmt.Errorf("invalid width [%v]", dims[i])
			}
			h, err := strconv.Atoi(dims[i+1])
			if err != nil || h <= 0 {
				return nil, fmt.Errorf("invalid height [%v]", dims[i+1])
			}
			parts = append(parts, board.NewGame(w, h))
		}
		return New(ctx, name, author, board.NewCompound(parts)), nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read replay: %w", err)
	}
	return nil, fmt.Errorf("empty replay: no board size line")
}
