package interp

import (
	"fmt"

	"github.com/mna/slang/lang/ast"
)

// Callable is a value that supports invocation with an argument list: a
// user function, a class used as a constructor, or a native function.
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) Value
}

// Function is a user-defined function value: an *ast.Fn declaration paired
// with the environment that was live at the point it was declared. Keeping
// that environment alive (rather than re-deriving it) is what gives Slang
// closures: returning a Function from an enclosing call keeps its defining
// frame reachable past the call's own return. Call must build each
// invocation's frame as a child of Closure, not of the interpreter's
// current or global frame, or nested closures over the same function
// silently alias each other's locals.
type Function struct {
	Declaration *ast.Fn
	Closure     *Environment
}

var _ Callable = (*Function)(nil)

func (f *Function) Type() string   { return "function" }
func (f *Function) String() string { return "<fn " + f.Declaration.Name.Lexeme + ">" }
func (f *Function) Arity() int     { return len(f.Declaration.Params) }

// Call runs the function body in a fresh frame, child of the closure frame,
// with each parameter bound to its argument. A `return` inside the body
// unwinds to here via returnSignal; falling off the end of the body returns
// Nil.
func (f *Function) Call(in *Interpreter, args []Value) (result Value) {
	result = Nil
	defer recoverReturn(&result)

	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}
	in.executeBlock(f.Declaration.Body, env)
	return result
}

// Native is a host-provided function exposed to user code (presently only
// clock()).
type Native struct {
	Name string
	Arg  int
	Fn   func(in *Interpreter, args []Value) Value
}

var _ Callable = (*Native)(nil)

func (n *Native) Type() string   { return "native function" }
func (n *Native) String() string { return fmt.Sprintf("<native fn %s>", n.Name) }
func (n *Native) Arity() int     { return n.Arg }
func (n *Native) Call(in *Interpreter, args []Value) Value {
	return n.Fn(in, args)
}
