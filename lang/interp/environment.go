package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/slang/lang/token"
)

// Environment is a single frame in the chain of name→value bindings: a map
// plus a parent link. The global frame has a nil parent. Frames are
// heap-allocated and reference-shared (not copied) so that a closure
// capturing one keeps it alive, and so that assignment from inside a
// closure mutates the same frame any other holder sees.
//
// The identifier table is a swiss.Map rather than a built-in Go map: an
// open-addressing map applied here to the hottest path in the interpreter —
// every variable read and property access goes through one.
type Environment struct {
	parent   *Environment
	bindings *swiss.Map[string, Value]
}

// NewEnvironment creates a frame whose parent is enclosing (nil for the
// global frame).
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{parent: enclosing, bindings: swiss.NewMap[string, Value](8)}
}

// Define unconditionally inserts or overwrites name in this frame. Unlike
// Assign, it never walks to a parent frame: this is how `let` introduces a
// new binding even when an outer scope already defines the same name.
func (e *Environment) Define(name string, val Value) {
	e.bindings.Put(name, val)
}

// Get resolves name by walking from this frame outward to the global frame.
// It panics with a *RuntimeError if name is bound nowhere, matching how the
// rest of the interpreter reports and unwinds on a runtime failure: a
// runtime error aborts the current run by unwinding to the top-level
// interpret entry.
func (e *Environment) Get(name token.Token) Value {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.bindings.Get(name.Lexeme); ok {
			return v
		}
	}
	panic(&RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."})
}

// Assign walks from this frame outward looking for an existing binding of
// name and overwrites it in place. It never creates a new binding —
// assigning to an undeclared name panics with a *RuntimeError.
func (e *Environment) Assign(name token.Token, val Value) {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.bindings.Get(name.Lexeme); ok {
			env.bindings.Put(name.Lexeme, val)
			return
		}
	}
	panic(&RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."})
}

// Ancestor walks k parent links up from e and returns that frame. It panics
// if the chain is shorter than k, which would indicate a resolver bug (the
// resolver only ever records distances it can prove exist).
func (e *Environment) Ancestor(k int) *Environment {
	env := e
	for i := 0; i < k; i++ {
		if env.parent == nil {
			panic(fmt.Sprintf("environment: ancestor(%d) out of range", k))
		}
		env = env.parent
	}
	return env
}

// GetAt reads name directly from the frame k parents up, the fast path used
// when the resolver recorded a scope distance for the referencing
// expression.
func (e *Environment) GetAt(k int, name string) (Value, bool) {
	return e.Ancestor(k).bindings.Get(name)
}

// AssignAt writes val directly into the frame k parents up.
func (e *Environment) AssignAt(k int, name string, val Value) {
	e.Ancestor(k).bindings.Put(name, val)
}
