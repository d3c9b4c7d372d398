// Package interp implements the tree-walking evaluator: the runtime value
// model, the environment chain, and the Interpreter that walks the resolved
// AST a second time.
package interp

import (
	"strconv"
	"strings"
)

// Value is the interface implemented by every runtime value: numbers,
// booleans, strings, none, callables and class instances.
type Value interface {
	// String returns the value's display form, as printed by the print
	// statement and the REPL.
	String() string

	// Type returns a short name for the value's runtime type, used in error
	// messages.
	Type() string
}

// Number is a 64-bit float, Slang's only numeric type.
type Number float64

func (n Number) Type() string { return "number" }
func (n Number) String() string {
	s := strconv.FormatFloat(float64(n), 'f', 6, 64)
	return strings.TrimSuffix(s, ".000000")
}

// Boolean is a truth value.
type Boolean bool

func (b Boolean) Type() string { return "boolean" }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Str is a Slang string value.
type Str string

func (s Str) Type() string   { return "string" }
func (s Str) String() string { return string(s) }

// NilValue is Slang's unit "none" value.
type NilValue struct{}

func (NilValue) Type() string   { return "none" }
func (NilValue) String() string { return "none" }

// Nil is the single instance of the "none" value.
var Nil Value = NilValue{}

// IsTruthy reports whether v counts as true in a condition: none is false, a
// boolean is itself, numeric 0 is false (a deliberate deviation from
// mainstream Lox), and everything else is true.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case NilValue:
		return false
	case Boolean:
		return bool(v)
	case Number:
		return v != 0
	default:
		return true
	}
}

// Equal reports whether a and b are equal: numeric equality is IEEE-754 (so
// NaN != NaN), string and boolean equality are structural, nil equals only
// nil, and cross-kind equality is always false.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case Boolean:
		bb, ok := b.(Boolean)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case Str:
		bb, ok := b.(Str)
		return ok && a == bb
	default:
		return a == b
	}
}
