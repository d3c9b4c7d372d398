package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/slang/lang/diag"
	"github.com/mna/slang/lang/interp"
)

// runFile is the "one path" branch of the CLI: read the file, run it to
// completion or first error, and map the diagnostic sink's latches to an
// exit code (65 static, 70 runtime).
func (c *Cmd) runFile(ctx context.Context, stdio mainer.Stdio, path string) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", binName, err)
		return mainer.ExitCode(74)
	}

	sink := diag.New(stdio.Stderr)
	it := interp.New(stdio.Stdout, nil)
	runSource(ctx, it, sink, src)

	switch {
	case sink.HadError():
		return mainer.ExitCode(65)
	case sink.HadRuntimeError():
		return mainer.ExitCode(70)
	default:
		return mainer.Success
	}
}

// runSource scans, parses, resolves and interprets src against it. Static
// errors (scanner, parser, resolver) suppress execution entirely; a runtime
// error aborts the interpret call partway through. Either is recorded on
// sink, which the caller inspects. ctx is forwarded to Interpret so a
// diverging while loop can be aborted (e.g. Ctrl-C cancels it).
func runSource(ctx context.Context, it *interp.Interpreter, sink *diag.Sink, src []byte) {
	stmts := parseSource(src, sink)
	if sink.HadError() {
		return
	}
	locals := resolveProgram(stmts, sink)
	if sink.HadError() {
		return
	}
	it.MergeLocals(locals)
	if rerr := it.Interpret(ctx, stmts); rerr != nil {
		sink.RuntimeError(rerr)
	}
}
