package ast

import (
	"fmt"
	"strings"

	"github.com/mna/slang/lang/token"
)

type (
	// ExpressionStmt represents an expression used as a statement.
	ExpressionStmt struct {
		Expr Expr
	}

	// PrintStmt represents a print statement.
	PrintStmt struct {
		Expr Expr
	}

	// VarStmt represents a variable declaration, optionally with an
	// initializer.
	VarStmt struct {
		Name        token.Token
		Initializer Expr // nil if absent
	}

	// Block represents a brace-delimited sequence of statements introducing a
	// new lexical scope.
	Block struct {
		Stmts []Stmt
	}

	// If represents an if statement, with an optional else branch.
	If struct {
		Cond Expr
		Then Stmt
		Else Stmt // nil if absent
	}

	// While represents a while statement. Else runs when Cond is false on the
	// very first check (a Slang extension over mainstream Lox, see the design
	// notes). Keyword anchors an interpreter-level interruption error to a
	// line, the same way Return and Break do.
	While struct {
		Keyword token.Token
		Cond    Expr
		Body    Stmt
		Else    Stmt // nil if absent
	}

	// Fn represents a function declaration (top-level function or method).
	Fn struct {
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// Return represents a return statement, optionally with a value.
	Return struct {
		Keyword token.Token
		Value   Expr // nil if absent
	}

	// Break represents a break statement.
	Break struct {
		Keyword token.Token
	}

	// Class represents a class declaration. This core does not model
	// inheritance: declarations parse, but no superclass is resolved or
	// looked up at run time.
	Class struct {
		Name    token.Token
		Methods []*Fn
	}
)

var (
	_ Stmt = (*ExpressionStmt)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*VarStmt)(nil)
	_ Stmt = (*Block)(nil)
	_ Stmt = (*If)(nil)
	_ Stmt = (*While)(nil)
	_ Stmt = (*Fn)(nil)
	_ Stmt = (*Return)(nil)
	_ Stmt = (*Break)(nil)
	_ Stmt = (*Class)(nil)
)

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*Block) stmtNode()          {}
func (*If) stmtNode()             {}
func (*While) stmtNode()          {}
func (*Fn) stmtNode()             {}
func (*Return) stmtNode()         {}
func (*Break) stmtNode()          {}
func (*Class) stmtNode()          {}

func (n *ExpressionStmt) String() string { return n.Expr.String() + ";" }
func (n *ExpressionStmt) Walk(v Visitor) { Walk(v, n.Expr) }

func (n *PrintStmt) String() string { return "print " + n.Expr.String() + ";" }
func (n *PrintStmt) Walk(v Visitor) { Walk(v, n.Expr) }

func (n *VarStmt) String() string {
	if n.Initializer == nil {
		return "let " + n.Name.Lexeme + ";"
	}
	return fmt.Sprintf("let %s = %s;", n.Name.Lexeme, n.Initializer)
}
func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}

func (n *Block) String() string {
	parts := make([]string, len(n.Stmts))
	for i, s := range n.Stmts {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}
func (n *Block) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func (n *If) String() string {
	if n.Else == nil {
		return fmt.Sprintf("if (%s) %s", n.Cond, n.Then)
	}
	return fmt.Sprintf("if (%s) %s else %s", n.Cond, n.Then, n.Else)
}
func (n *If) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}

func (n *While) String() string {
	if n.Else == nil {
		return fmt.Sprintf("while (%s) %s", n.Cond, n.Body)
	}
	return fmt.Sprintf("while (%s) %s else %s", n.Cond, n.Body, n.Else)
}
func (n *While) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}

func (n *Fn) String() string {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Lexeme
	}
	return fmt.Sprintf("fn %s(%s) { ... }", n.Name.Lexeme, strings.Join(params, ", "))
}
func (n *Fn) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}

func (n *Return) String() string {
	if n.Value == nil {
		return "return;"
	}
	return "return " + n.Value.String() + ";"
}
func (n *Return) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}

func (n *Break) String() string { return "break;" }
func (n *Break) Walk(Visitor)   {}

func (n *Class) String() string {
	return fmt.Sprintf("class %s { %d methods }", n.Name.Lexeme, len(n.Methods))
}
func (n *Class) Walk(v Visitor) {
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
