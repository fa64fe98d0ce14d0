// Package console implements the interactive analysis console.
package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/amdw/dotsandboxes/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Driver runs the console protocol: it prints the position, reads commands
// from the input channel and emits responses on the output channel until the
// user quits or the input breaks.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printPosition()

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}
			if strings.TrimSpace(line) == "" {
				break
			}

			cmd, err := engine.ParseCommand(len(d.e.Position().Parts()), line)
			if err != nil {
				d.out <- fmt.Sprintf("Cannot execute [%v]: %v", line, err)
				d.out <- "For help, try 'help'"
				break
			}

			start := time.Now()
			quit, err := d.e.Execute(ctx, cmd, func(s string) { d.out <- s })
			if err != nil {
				d.out <- err.Error()
			}
			if quit {
				return
			}
			if msg, ok := engine.Elapsed(time.Since(start)); ok {
				d.out <- msg
			}
			d.out <- ""
			d.printPosition()

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) printPosition() {
	d.out <- d.e.Render()
}
