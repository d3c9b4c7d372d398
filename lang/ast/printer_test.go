package ast_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mna/slang/lang/ast"
	"github.com/mna/slang/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterIndentsNestedBlocks(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.Block{Stmts: []ast.Stmt{
			&ast.PrintStmt{Expr: &ast.Literal{Value: float64(1)}},
		}},
	}
	var buf bytes.Buffer
	p := ast.Printer{Output: &buf}
	require.NoError(t, p.Print(stmts))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "block {stmts=1}", lines[0])
	assert.Equal(t, ". print", lines[1])
	assert.Equal(t, ". . literal 1", lines[2])
}

func TestPrinterLabelsVarStmtAndLiteral(t *testing.T) {
	name := token.Token{Kind: token.IDENTIFIER, Lexeme: "x", Line: 1}
	stmts := []ast.Stmt{
		&ast.VarStmt{Name: name, Initializer: &ast.Literal{Value: float64(1)}},
	}
	var buf bytes.Buffer
	p := ast.Printer{Output: &buf}
	require.NoError(t, p.Print(stmts))
	assert.Contains(t, buf.String(), "let x")
	assert.Contains(t, buf.String(), "literal 1")
}
