package interp_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mna/slang/lang/diag"
	"github.com/mna/slang/lang/interp"
	"github.com/mna/slang/lang/parser"
	"github.com/mna/slang/lang/resolver"
	"github.com/mna/slang/lang/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes src end to end (scan, parse, resolve, interpret) and returns
// captured stdout, mirroring what maincmd.runSource does for a file.
func run(t *testing.T, src string) (string, *diag.Sink) {
	t.Helper()
	var out, errs bytes.Buffer
	sink := diag.New(&errs)

	toks := scanner.ScanAll([]byte(src), sink.Error)
	stmts := parser.New(toks, sink).Parse()
	require.False(t, sink.HadError(), "fixture must parse cleanly: %s", errs.String())

	locals := resolver.New(sink).Resolve(stmts)
	require.False(t, sink.HadError(), "fixture must resolve cleanly: %s", errs.String())

	it := interp.New(&out, locals)
	if rerr := it.Interpret(context.Background(), stmts); rerr != nil {
		sink.RuntimeError(rerr)
	}
	return out.String(), sink
}

func TestArithmeticPrecedence(t *testing.T) {
	out, sink := run(t, `print 1 + 2 * 3;`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}

func TestBlockScoping(t *testing.T) {
	out, sink := run(t, `let a = 1; { let a = 2; print a; } print a;`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "2\n1\n", out)
}

func TestWhileLoop(t *testing.T) {
	out, sink := run(t, `let i = 0; while (i < 3) { print i; i = i + 1; }`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestWhileElseRunsOnlyWhenConditionInitiallyFalse(t *testing.T) {
	out, sink := run(t, `let i = 0; while (i < 0) { print "loop"; } else { print "else"; }`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "else\n", out)

	out, sink = run(t, `let i = 0; while (i < 1) { i = i + 1; } else { print "else"; }`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "", out)
}

func TestRecursion(t *testing.T) {
	out, sink := run(t, `fn fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); } print fib(10);`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "55\n", out)
}

func TestClosureCaptureIndependentCounters(t *testing.T) {
	out, sink := run(t, `
		fn make() {
			let n = 0;
			fn inc() { n = n + 1; return n; }
			return inc;
		}
		let c1 = make();
		let c2 = make();
		print c1(); print c1(); print c1();
		print c2();
	`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "1\n2\n3\n1\n", out)
}

func TestClassInstanceFields(t *testing.T) {
	out, sink := run(t, `class Point {} let p = Point(); p.x = 3; p.y = 4; print p.x + p.y;`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "7\n", out)
}

func TestClassMethodLookup(t *testing.T) {
	out, sink := run(t, `
		class Greeter {
			hello() { return "hi"; }
		}
		let g = Greeter();
		print g.hello();
	`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "hi\n", out)
}

func TestShortCircuitAnd(t *testing.T) {
	out, sink := run(t, `
		fn boom() { print "called"; return true; }
		print false and boom();
	`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "false\n", out)
}

func TestShortCircuitOrReturnsOperandNotBool(t *testing.T) {
	out, sink := run(t, `print none or "fallback";`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "fallback\n", out)
}

func TestRuntimeTypeErrors(t *testing.T) {
	cases := []string{
		`print "a" - 1;`,
		`print -"x";`,
		`print 1 < "x";`,
	}
	for _, src := range cases {
		_, sink := run(t, src)
		assert.True(t, sink.HadRuntimeError(), "expected a runtime error for: %s", src)
	}
}

func TestGetOnNonInstanceIsRuntimeError(t *testing.T) {
	_, sink := run(t, `let a = 1; print a.foo;`)
	assert.True(t, sink.HadRuntimeError())
}

func TestEquality(t *testing.T) {
	out, sink := run(t, `
		print 1 == "1";
		print none == none;
		print none == false;
	`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "false\ntrue\nfalse\n", out)
}

func TestBreakExitsLoop(t *testing.T) {
	out, sink := run(t, `
		let i = 0;
		while (true) {
			if (i == 3) break;
			print i;
			i = i + 1;
		}
	`)
	require.False(t, sink.HadRuntimeError())
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, sink := run(t, `print undeclared;`)
	assert.True(t, sink.HadRuntimeError())
}

func TestCanceledContextAbortsDivergingWhile(t *testing.T) {
	var out, errs bytes.Buffer
	sink := diag.New(&errs)

	toks := scanner.ScanAll([]byte(`while (true) { }`), sink.Error)
	stmts := parser.New(toks, sink).Parse()
	require.False(t, sink.HadError())
	locals := resolver.New(sink).Resolve(stmts)
	require.False(t, sink.HadError())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	it := interp.New(&out, locals)
	rerr := it.Interpret(ctx, stmts)
	require.NotNil(t, rerr)
	assert.Equal(t, "Interrupted.", rerr.Message)
}
