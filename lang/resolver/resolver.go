// Package resolver implements the static pass between parsing and
// evaluation: a single walk over the AST that resolves every variable
// reference to a lexical scope distance, so the interpreter can look up a
// binding in O(depth) without falling back to name-based dynamic scope.
//
// It also rejects two classes of statement that are only detectable once
// enclosing-function/enclosing-loop context is tracked: `return` outside a
// function, and `break` outside a loop.
package resolver

import (
	"github.com/mna/slang/lang/ast"
	"github.com/mna/slang/lang/diag"
	"github.com/mna/slang/lang/token"
)

// functionKind tracks what, if anything, the resolver is currently inside,
// so a bare `return` can be rejected at the top level.
type functionKind int

const (
	kindNone functionKind = iota
	kindFunction
)

// scope is one lexical block: name → whether its declaration has finished
// resolving its own initializer yet. A name present with value false is
// "declared but not yet defined" — referencing it in its own initializer
// is a static error, the classic `let a = a;` self-reference trap.
type scope map[string]bool

// Resolver walks a parsed program and builds Locals, the side-table
// interp.Interpreter consumes, keyed by expression pointer identity since
// the parser allocates each node exactly once and never copies it.
type Resolver struct {
	sink   *diag.Sink
	scopes []scope
	locals map[ast.Expr]int

	currentFn functionKind
	inLoop    bool
}

// New returns a Resolver reporting to sink.
func New(sink *diag.Sink) *Resolver {
	return &Resolver{sink: sink, locals: make(map[ast.Expr]int)}
}

// Resolve walks stmts and returns the locals table. The resolver never
// aborts on error: it reports and keeps going, the same suppression rule
// syntactic errors use, so a single run can surface more than one problem.
// The returned table should only be trusted by the caller if
// sink.HadError() is false afterward.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.Expr]int {
	r.resolveStmts(stmts)
	return r.locals
}

func (r *Resolver) push() { r.scopes = append(r.scopes, scope{}) }
func (r *Resolver) pop()  { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) peek() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare introduces name in the innermost scope as not-yet-defined. At the
// top level (no open scope) declarations fall through to the interpreter's
// global frame and need no tracking here.
func (r *Resolver) declare(name token.Token) {
	sc := r.peek()
	if sc == nil {
		return
	}
	if _, ok := sc[name.Lexeme]; ok {
		r.sink.ErrorAt(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope.
func (r *Resolver) define(name token.Token) {
	if sc := r.peek(); sc != nil {
		sc[name.Lexeme] = true
	}
}

// resolveLocal records the scope distance from the innermost scope out to
// the one binding name, for the given expression (a *ast.Variable or
// *ast.Assign). No entry is recorded if name is bound in no open scope; the
// interpreter then falls back to the global frame.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Block:
		r.push()
		r.resolveStmts(s.Stmts)
		r.pop()
	case *ast.If:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.While:
		r.resolveExpr(s.Cond)
		enclosingLoop := r.inLoop
		r.inLoop = true
		r.resolveStmt(s.Body)
		r.inLoop = enclosingLoop
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.Fn:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, kindFunction)
	case *ast.Return:
		if r.currentFn == kindNone {
			r.sink.ErrorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *ast.Break:
		if !r.inLoop {
			r.sink.ErrorAt(s.Keyword, "Can't break outside of a loop.")
		}
	case *ast.Class:
		r.declare(s.Name)
		r.define(s.Name)
		for _, m := range s.Methods {
			r.resolveFunction(m, kindFunction)
		}
	}
}

// resolveFunction resolves a function/method body in its own scope, with
// each parameter declared and defined there, tracking the enclosing
// function kind so a nested `return` still resolves correctly and an
// enclosing loop does not leak `break` into the new function (a `break`
// inside a function body defined textually inside a loop must still be
// rejected, since it cannot reach that loop at run time).
func (r *Resolver) resolveFunction(fn *ast.Fn, kind functionKind) {
	enclosingFn := r.currentFn
	enclosingLoop := r.inLoop
	r.currentFn = kind
	r.inLoop = false

	r.push()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.pop()

	r.currentFn = enclosingFn
	r.inLoop = enclosingLoop
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch e := e.(type) {
	case *ast.Literal:
		// no identifiers to resolve
	case *ast.Variable:
		if sc := r.peek(); sc != nil {
			if defined, ok := sc[e.Name.Lexeme]; ok && !defined {
				r.sink.ErrorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	}
}
