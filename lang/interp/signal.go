package interp

// returnSignal and breakSignal are non-local exits, not errors. They unwind
// through panic/recover the same way the parser unwinds a syntax error to
// its nearest statement boundary: execute panics with one of these, and the
// sole designated handler recovers it — Function.Call for returnSignal,
// execWhile for breakSignal. Any other panic value (a *RuntimeError, or a Go
// runtime panic) is re-raised unchanged.
type returnSignal struct {
	value Value
}

type breakSignal struct{}

// recoverReturn must be deferred by the sole Return handler (Fn.Call). On a
// returnSignal it stores the carried value in *out and swallows the panic;
// any other panic is re-raised.
func recoverReturn(out *Value) {
	switch r := recover().(type) {
	case nil:
	case returnSignal:
		*out = r.value
	default:
		panic(r)
	}
}

// recoverBreak must be deferred by the sole Break handler (execWhile). On a
// breakSignal it sets *broke and swallows the panic; any other panic is
// re-raised.
func recoverBreak(broke *bool) {
	switch r := recover().(type) {
	case nil:
	case breakSignal:
		*broke = true
	default:
		panic(r)
	}
}
