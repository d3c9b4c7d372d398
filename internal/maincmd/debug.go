package maincmd

import (
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/slang/lang/ast"
	"github.com/mna/slang/lang/diag"
)

// runDebug dispatches the supplemental tokenize|parse|resolve subcommands:
// each runs only a prefix of the pipeline and prints its intermediate
// result instead of executing the program. They exist for inspecting what
// the scanner, parser and resolver produced. Unlike runFile and runREPL,
// this never evaluates the program, so it has no loop to cancel and takes
// no context.
func (c *Cmd) runDebug(stdio mainer.Stdio, cmdName, path string) mainer.ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s: %s\n", binName, err)
		return mainer.ExitCode(74)
	}

	sink := diag.New(stdio.Stderr)

	if cmdName == "tokenize" {
		for _, tok := range scanAll(src, sink) {
			fmt.Fprintln(stdio.Stdout, tok)
		}
		if sink.HadError() {
			return mainer.ExitCode(65)
		}
		return mainer.Success
	}

	stmts := parseSource(src, sink)
	if cmdName == "resolve" {
		resolveProgram(stmts, sink)
	}

	printer := ast.Printer{Output: stdio.Stdout}
	if err := printer.Print(stmts); err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return mainer.ExitCode(70)
	}
	if sink.HadError() {
		return mainer.ExitCode(65)
	}
	return mainer.Success
}
