package maincmd

import (
	"bufio"
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/slang/lang/diag"
	"github.com/mna/slang/lang/interp"
)

// runREPL runs the interactive loop: prompt "> ", read one line, run it,
// clear the static-error latch, loop; an empty line terminates. The
// interpreter and its global frame persist across lines so a `let` in one
// line is visible to the next; a fresh resolver runs each line and the
// static-error latch is cleared so one bad line cannot poison the rest of
// the session.
func (c *Cmd) runREPL(ctx context.Context, stdio mainer.Stdio) mainer.ExitCode {
	it := interp.New(stdio.Stdout, nil)
	sink := diag.New(stdio.Stderr)
	scan := bufio.NewScanner(stdio.Stdin)

	for {
		select {
		case <-ctx.Done():
			return mainer.Success
		default:
		}

		fmt.Fprint(stdio.Stdout, "> ")
		if !scan.Scan() {
			return mainer.Success
		}
		line := scan.Text()
		if line == "" {
			return mainer.Success
		}

		runSource(ctx, it, sink, []byte(line))
		sink.ClearStaticError()
	}
}
