// Package maincmd implements the CLI dispatch for the slang binary:
// argument parsing via mna/mainer and the run/REPL/debug-subcommand
// contract.
package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/mainer"
)

const binName = "slang"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<path>]
       %[1]s [<option>...] tokenize|parse|resolve <path>
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<path>]
       %[1]s [<option>...] tokenize|parse|resolve <path>
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the %[1]s scripting language.

With no <path>, starts an interactive REPL. With one <path>, runs that
script file. Apart from the debug subcommands below, more than one
positional argument is a usage error.

The debug subcommands run only a prefix of the pipeline and print its
result instead of executing the program:
       tokenize <path>           Print the token stream.
       parse <path>              Print the parsed syntax tree.
       resolve <path>            Print the syntax tree after resolution.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the mainer.Cmd implementation for the slang binary.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 2 {
		return fmt.Errorf("usage: %s [path]", binName)
	}
	if len(c.args) == 2 {
		switch c.args[0] {
		case "tokenize", "parse", "resolve":
		default:
			return fmt.Errorf("unknown command: %s", c.args[0])
		}
	}
	return nil
}

// Main is the mainer.Cmd entry point, wired from cmd/slang/main.go.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(64)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	switch len(c.args) {
	case 0:
		ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
		return c.runREPL(ctx, stdio)
	case 1:
		ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
		return c.runFile(ctx, stdio, c.args[0])
	default:
		return c.runDebug(stdio, c.args[0], c.args[1])
	}
}
