package interp

import "github.com/mna/slang/lang/token"

// RuntimeError is a runtime failure carrying the offending token so it can
// be reported with a line number. It aborts the current run by unwinding to
// the top-level Interpret call: the interpreter raises these via panic and
// Interpret recovers them; it never returns them as a Go error value along
// the normal call chain, since every evaluator method already returns a
// Value and threading a second error return through every case of the
// visitor would obscure the grammar the methods mirror.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }
