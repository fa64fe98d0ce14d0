package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/amdw/dotsandboxes/pkg/board"
	"github.com/amdw/dotsandboxes/pkg/engine"
	"github.com/amdw/dotsandboxes/pkg/engine/console"
	"github.com/seekerror/logw"
)

const (
	name   = "dotsandboxes"
	author = "amdw"
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: dotsandboxes W H | FILE

DOTSANDBOXES is a Dots-and-Boxes and Nimstring analysis engine.

  W H   - start a new game of width W, height H
  FILE  - replay commands from FILE and start the console from there

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	var e *engine.Engine
	switch args := flag.Args(); len(args) {
	case 2:
		w, werr := strconv.Atoi(args[0])
		h, herr := strconv.Atoi(args[1])
		if werr != nil || herr != nil || w <= 0 || h <= 0 {
			flag.Usage()
			os.Exit(1)
		}
		e = engine.New(ctx, name, author, board.NewCompound([]*board.SimplePosition{board.NewGame(w, h)}))

	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			logw.Exitf(ctx, "Could not open file [%v]: %v", args[0], err)
		}
		e, err = engine.Load(ctx, name, author, f, func(s string) { fmt.Println(s) })
		_ = f.Close()
		if err != nil {
			logw.Exitf(ctx, "Could not replay [%v]: %v", args[0], err)
		}

	default:
		flag.Usage()
		os.Exit(1)
	}

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
