package maincmd

import (
	"github.com/mna/slang/lang/ast"
	"github.com/mna/slang/lang/diag"
	"github.com/mna/slang/lang/interp"
	"github.com/mna/slang/lang/parser"
	"github.com/mna/slang/lang/resolver"
	"github.com/mna/slang/lang/scanner"
	"github.com/mna/slang/lang/token"
)

// scanAll runs only the scanner over src, reporting errors to sink.
func scanAll(src []byte, sink *diag.Sink) []token.Token {
	return scanner.ScanAll(src, sink.Error)
}

// parseSource runs the scanner and parser over src, reporting errors to
// sink. It always returns whatever statements it could recover; the caller
// must check sink.HadError() before trusting them.
func parseSource(src []byte, sink *diag.Sink) []ast.Stmt {
	return parser.New(scanAll(src, sink), sink).Parse()
}

// resolveProgram runs the resolver over stmts, reporting errors to sink,
// and returns the locals side-table interp.Interpreter needs.
func resolveProgram(stmts []ast.Stmt, sink *diag.Sink) interp.Locals {
	return resolver.New(sink).Resolve(stmts)
}
