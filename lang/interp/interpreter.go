package interp

import (
	"context"
	"fmt"
	"io"

	"github.com/dolthub/swiss"
	"github.com/mna/slang/lang/ast"
	"github.com/mna/slang/lang/token"
)

// Locals is the resolver's output consumed here: a side-table from
// expression identity to lexical scope distance, keyed by pointer since
// ast.Expr nodes are allocated once by the parser and never copied. A
// Variable or Assign expression not present in the table is resolved
// against the global frame directly.
type Locals = map[ast.Expr]int

// Interpreter walks a resolved AST, evaluating statements for effect and
// expressions for value. It carries the global frame, the current frame,
// and the resolver's locals table; it is not safe for concurrent use —
// execution is strictly single-threaded.
type Interpreter struct {
	Stdout  io.Writer
	Globals *Environment
	env     *Environment
	locals  Locals
	ctx     context.Context
}

// New returns an Interpreter with a fresh global frame holding the native
// globals.
func New(stdout io.Writer, locals Locals) *Interpreter {
	globals := NewEnvironment(nil)
	defineGlobals(globals)
	if locals == nil {
		locals = make(Locals)
	}
	return &Interpreter{Stdout: stdout, Globals: globals, env: globals, locals: locals, ctx: context.Background()}
}

// MergeLocals adds more to the interpreter's locals table, used by the REPL
// to fold in each line's resolver output without discarding bindings
// resolved for earlier lines: the REPL loop runs the resolver fresh per
// line, but the interpreter and its global frame persist.
func (in *Interpreter) MergeLocals(more Locals) {
	for k, v := range more {
		in.locals[k] = v
	}
}

// Interpret runs a resolved program: stmts in order, in the global frame.
// A runtime error aborts the run and is returned for the caller to report
// with a line number and an exit code of 70. ctx is checked by looping
// constructs (see execWhile) so a diverging program can be aborted from
// outside; pass context.Background() to run to completion regardless.
func (in *Interpreter) Interpret(ctx context.Context, stmts []ast.Stmt) (err *RuntimeError) {
	in.ctx = ctx
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			err = re
		}
	}()
	for _, s := range stmts {
		in.execute(s)
	}
	return nil
}

// execute dispatches a single statement by concrete type, generalizing the
// visitor traversals used elsewhere in this tree to a type switch since
// statements carry no Accept method here.
func (in *Interpreter) execute(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		in.eval(s.Expr)
	case *ast.PrintStmt:
		fmt.Fprintln(in.Stdout, in.eval(s.Expr).String())
	case *ast.VarStmt:
		var val Value = Nil
		if s.Initializer != nil {
			val = in.eval(s.Initializer)
		}
		in.env.Define(s.Name.Lexeme, val)
	case *ast.Block:
		in.executeBlock(s.Stmts, NewEnvironment(in.env))
	case *ast.If:
		if IsTruthy(in.eval(s.Cond)) {
			in.execute(s.Then)
		} else if s.Else != nil {
			in.execute(s.Else)
		}
	case *ast.While:
		in.execWhile(s)
	case *ast.Fn:
		fn := &Function{Declaration: s, Closure: in.env}
		in.env.Define(s.Name.Lexeme, fn)
	case *ast.Return:
		var val Value = Nil
		if s.Value != nil {
			val = in.eval(s.Value)
		}
		panic(returnSignal{value: val})
	case *ast.Break:
		panic(breakSignal{})
	case *ast.Class:
		in.execClass(s)
	default:
		panic(fmt.Sprintf("interp: unhandled statement %T", s))
	}
}

// execWhile runs a while loop: Else runs only when Cond is false on the
// very first check, a Slang extension over mainstream Lox. Break unwinds
// here via breakSignal and is consumed, not re-raised. Each iteration
// checks in.ctx so a diverging loop can be aborted from outside the
// evaluator (Ctrl-C in the REPL or a canceled run).
func (in *Interpreter) execWhile(s *ast.While) {
	var broke bool
	defer recoverBreak(&broke)

	ranOnce := false
	for IsTruthy(in.eval(s.Cond)) {
		select {
		case <-in.ctx.Done():
			panic(&RuntimeError{Token: s.Keyword, Message: "Interrupted."})
		default:
		}
		ranOnce = true
		in.execute(s.Body)
		if broke {
			return
		}
	}
	if !ranOnce && s.Else != nil {
		in.execute(s.Else)
	}
}

// execClass runs a class declaration: declare the name, build a method
// table using the current environment as every method's closure, assign
// the class value to the name.
func (in *Interpreter) execClass(s *ast.Class) {
	in.env.Define(s.Name.Lexeme, Nil)

	methods := swiss.NewMap[string, *Function](uint32(len(s.Methods)) + 1)
	for _, m := range s.Methods {
		methods.Put(m.Name.Lexeme, &Function{Declaration: m, Closure: in.env})
	}
	class := &Class{Name: s.Name.Lexeme, Methods: methods}
	in.env.Assign(s.Name, class)
}

// executeBlock runs stmts in env, restoring the interpreter's previous frame
// on the way out even if a statement panics (return, break, or a runtime
// error unwinding further up).
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) {
	prev := in.env
	in.env = env
	defer func() { in.env = prev }()
	for _, s := range stmts {
		in.execute(s)
	}
}

// eval dispatches a single expression by concrete type and returns its
// value.
func (in *Interpreter) eval(e ast.Expr) Value {
	switch e := e.(type) {
	case *ast.Literal:
		return literalValue(e.Value)
	case *ast.Grouping:
		return in.eval(e.Inner)
	case *ast.Variable:
		return in.lookupVariable(e.Name, e)
	case *ast.Assign:
		val := in.eval(e.Value)
		if dist, ok := in.locals[e]; ok {
			in.env.AssignAt(dist, e.Name.Lexeme, val)
		} else {
			in.Globals.Assign(e.Name, val)
		}
		return val
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Logical:
		return in.evalLogical(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		return in.evalGet(e)
	case *ast.Set:
		return in.evalSet(e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression %T", e))
	}
}

func literalValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Nil
	case float64:
		return Number(v)
	case string:
		return Str(v)
	case bool:
		return Boolean(v)
	default:
		panic(fmt.Sprintf("interp: unhandled literal payload %T", v))
	}
}

// lookupVariable resolves a Variable reference using the resolver's
// distance if one was recorded for it, falling back to the global frame
// directly.
func (in *Interpreter) lookupVariable(name token.Token, expr ast.Expr) Value {
	if dist, ok := in.locals[expr]; ok {
		if v, ok := in.env.GetAt(dist, name.Lexeme); ok {
			return v
		}
	}
	return in.Globals.Get(name)
}

func (in *Interpreter) evalUnary(e *ast.Unary) Value {
	right := in.eval(e.Right)
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			panic(&RuntimeError{Token: e.Op, Message: "Operand must be a number."})
		}
		return -n
	case token.BANG:
		return Boolean(!IsTruthy(right))
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %v", e.Op.Kind))
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) Value {
	left := in.eval(e.Left)
	if e.Op.Kind == token.OR {
		if IsTruthy(left) {
			return left
		}
	} else {
		if !IsTruthy(left) {
			return left
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) Value {
	left := in.eval(e.Left)
	right := in.eval(e.Right)

	switch e.Op.Kind {
	case token.EQ_EQ:
		return Boolean(Equal(left, right))
	case token.BANG_EQ:
		return Boolean(!Equal(left, right))
	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn
			}
		}
		if ls, ok := left.(Str); ok {
			if rs, ok := right.(Str); ok {
				return ls + rs
			}
		}
		panic(&RuntimeError{Token: e.Op, Message: "Operands must be two numbers or two strings."})
	case token.MINUS:
		l, r := in.numberOperands(e.Op, left, right)
		return l - r
	case token.STAR:
		l, r := in.numberOperands(e.Op, left, right)
		return l * r
	case token.SLASH:
		l, r := in.numberOperands(e.Op, left, right)
		return l / r
	case token.GREATER:
		l, r := in.numberOperands(e.Op, left, right)
		return Boolean(l > r)
	case token.GREATER_EQ:
		l, r := in.numberOperands(e.Op, left, right)
		return Boolean(l >= r)
	case token.LESS:
		l, r := in.numberOperands(e.Op, left, right)
		return Boolean(l < r)
	case token.LESS_EQ:
		l, r := in.numberOperands(e.Op, left, right)
		return Boolean(l <= r)
	default:
		panic(fmt.Sprintf("interp: unhandled binary operator %v", e.Op.Kind))
	}
}

func (in *Interpreter) numberOperands(op token.Token, left, right Value) (Number, Number) {
	l, lok := left.(Number)
	r, rok := right.(Number)
	if !lok || !rok {
		panic(&RuntimeError{Token: op, Message: "Operands must be numbers."})
	}
	return l, r
}

func (in *Interpreter) evalCall(e *ast.Call) Value {
	callee := in.eval(e.Callee)
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		args[i] = in.eval(a)
	}

	fn, ok := callee.(Callable)
	if !ok {
		panic(&RuntimeError{Token: e.Paren, Message: "Can only call functions."})
	}
	if len(args) != fn.Arity() {
		panic(&RuntimeError{Token: e.Paren, Message: fmt.Sprintf(
			"Expected %d arguments, but got %d.", fn.Arity(), len(args))})
	}
	return fn.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.Get) Value {
	obj := in.eval(e.Object)
	inst, ok := obj.(*Instance)
	if !ok {
		panic(&RuntimeError{Token: e.Name, Message: "Only instances have properties."})
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		panic(&RuntimeError{Token: e.Name, Message: "Undefined property '" + e.Name.Lexeme + "'."})
	}
	return v
}

func (in *Interpreter) evalSet(e *ast.Set) Value {
	obj := in.eval(e.Object)
	inst, ok := obj.(*Instance)
	if !ok {
		panic(&RuntimeError{Token: e.Name, Message: "Only instances have fields."})
	}
	val := in.eval(e.Value)
	inst.Set(e.Name.Lexeme, val)
	return val
}
