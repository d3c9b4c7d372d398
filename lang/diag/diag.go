// Package diag implements the diagnostic sink: the boundary object that the
// scanner, parser, resolver and interpreter report errors to. It is
// deliberately not a logging framework — it writes straight to the given
// io.Writer — and it keeps the two latches (had a static error, had a
// runtime error) the REPL and the file runner use to pick an exit code.
package diag

import (
	"fmt"
	"io"

	"github.com/mna/slang/lang/interp"
	"github.com/mna/slang/lang/token"
)

// Sink reports each diagnostic to Stderr as soon as it is received and keeps
// only the two latches, not the messages. It is not safe for concurrent
// use; the interpreter is single-threaded.
type Sink struct {
	Stderr io.Writer

	hadError        bool
	hadRuntimeError bool
}

// New returns a Sink that reports to stderr.
func New(stderr io.Writer) *Sink {
	return &Sink{Stderr: stderr}
}

// Error reports a static error (scanner or free-standing line-numbered
// error) and latches HadError.
func (s *Sink) Error(line int, message string) {
	s.report(line, " ", message)
}

// ErrorAt reports a static error (parser or resolver) anchored to a token,
// rendering "at end" for an EOF token and "at '<lexeme>'" otherwise.
func (s *Sink) ErrorAt(tok token.Token, message string) {
	if tok.Kind == token.EOF {
		s.report(tok.Line, " at end", message)
		return
	}
	s.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
}

func (s *Sink) report(line int, where, message string) {
	fmt.Fprintf(s.Stderr, "[line %d] Error%s: %s\n", line, where, message)
	s.hadError = true
}

// RuntimeError reports a runtime error and latches HadRuntimeError. Format:
// "<message>\n[line N]".
func (s *Sink) RuntimeError(err *interp.RuntimeError) {
	fmt.Fprintf(s.Stderr, "%s\n[line %d]\n", err.Message, err.Token.Line)
	s.hadRuntimeError = true
}

// HadError reports whether any static error (scanner, parser or resolver)
// has been recorded since the sink was created or last cleared.
func (s *Sink) HadError() bool { return s.hadError }

// HadRuntimeError reports whether a runtime error has been recorded.
func (s *Sink) HadRuntimeError() bool { return s.hadRuntimeError }

// ClearStaticError resets the static-error latch, used by the REPL between
// lines so one bad line does not poison the rest of the session.
func (s *Sink) ClearStaticError() { s.hadError = false }
