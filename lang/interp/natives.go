package interp

import "time"

// defineGlobals installs the native values exposed to user code. Presently
// only clock(), an opaque tick count comparable to itself. Its display name
// is capitalized ("<native fn Clock>"), distinct from the lowercase "clock"
// identifier bound in the global frame.
func defineGlobals(env *Environment) {
	env.Define("clock", &Native{
		Name: "Clock",
		Arg:  0,
		Fn: func(in *Interpreter, args []Value) Value {
			return Number(time.Now().UnixNano()) / Number(time.Second)
		},
	})
}
