package resolver_test

import (
	"bytes"
	"testing"

	"github.com/mna/slang/lang/ast"
	"github.com/mna/slang/lang/diag"
	"github.com/mna/slang/lang/parser"
	"github.com/mna/slang/lang/resolver"
	"github.com/mna/slang/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseForResolve(t *testing.T, src string) ([]ast.Stmt, *diag.Sink) {
	t.Helper()
	var errBuf bytes.Buffer
	sink := diag.New(&errBuf)
	toks := scanner.ScanAll([]byte(src), sink.Error)
	stmts := parser.New(toks, sink).Parse()
	require.False(t, sink.HadError(), "fixture must parse cleanly: %s", errBuf.String())
	return stmts, sink
}

func resolve(t *testing.T, src string) (map[ast.Expr]int, *diag.Sink) {
	t.Helper()
	stmts, sink := parseForResolve(t, src)
	locals := resolver.New(sink).Resolve(stmts)
	return locals, sink
}

func TestResolveLocalVariableDistance(t *testing.T) {
	locals, sink := resolve(t, `{ let a = 1; { print a; } }`)
	require.False(t, sink.HadError())
	assert.Len(t, locals, 1)
	for _, dist := range locals {
		assert.Equal(t, 1, dist)
	}
}

func TestResolveGlobalLeftUntracked(t *testing.T) {
	locals, sink := resolve(t, `let a = 1; print a;`)
	require.False(t, sink.HadError())
	assert.Empty(t, locals, "a top-level reference must not get a recorded distance")
}

func TestResolveSelfInitializerIsError(t *testing.T) {
	_, sink := resolve(t, `{ let a = a; }`)
	assert.True(t, sink.HadError())
}

func TestResolveRedeclarationInSameScopeIsError(t *testing.T) {
	_, sink := resolve(t, `{ let a = 1; let a = 2; }`)
	assert.True(t, sink.HadError())
}

func TestResolveShadowingInNestedScopeIsAllowed(t *testing.T) {
	_, sink := resolve(t, `{ let a = 1; { let a = 2; } }`)
	assert.False(t, sink.HadError())
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	_, sink := resolve(t, `return 1;`)
	assert.True(t, sink.HadError())
}

func TestResolveReturnInsideFunctionIsAllowed(t *testing.T) {
	_, sink := resolve(t, `fn f() { return 1; }`)
	assert.False(t, sink.HadError())
}

func TestResolveBreakOutsideLoopIsError(t *testing.T) {
	_, sink := resolve(t, `break;`)
	assert.True(t, sink.HadError())
}

func TestResolveBreakInsideWhileIsAllowed(t *testing.T) {
	_, sink := resolve(t, `while (true) { break; }`)
	assert.False(t, sink.HadError())
}

func TestResolveIsolationAcrossLaterShadowingDeclaration(t *testing.T) {
	// { let x = "outer"; { fn show() { print x; } show(); let x = "inner"; show(); } }
	// The closure created by `show` must resolve `x` to the outer binding,
	// unaffected by the later `let x = "inner"` in the same block.
	stmts, sink := parseForResolve(t, `{
		let x = "outer";
		{
			fn show() { print x; }
			show();
			let x = "inner";
			show();
		}
	}`)
	require.False(t, sink.HadError())

	// dig out the *ast.Variable for x inside show's body: the sole statement
	// of the sole function declared in the inner block.
	outer := stmts[0].(*ast.Block)
	inner := outer.Stmts[1].(*ast.Block)
	show := inner.Stmts[0].(*ast.Fn)
	printX := show.Body[0].(*ast.PrintStmt)
	xRef := printX.Expr.(*ast.Variable)

	locals := resolver.New(sink).Resolve(stmts)
	require.False(t, sink.HadError())
	dist, ok := locals[xRef]
	require.True(t, ok, "x inside show's body must resolve to an enclosing scope")
	assert.Equal(t, 2, dist, "show's body is 2 scopes inside the outer x's declaring scope")
}
