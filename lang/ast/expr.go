package ast

import (
	"fmt"
	"strings"

	"github.com/mna/slang/lang/token"
)

type (
	// Literal represents a literal number, string, boolean or none value.
	Literal struct {
		Value any // float64 | string | bool | nil
	}

	// Variable represents a reference to a named binding, e.g. x.
	Variable struct {
		Name token.Token
	}

	// Assign represents an assignment expression, e.g. x = y.
	Assign struct {
		Name  token.Token
		Value Expr
	}

	// Unary represents a unary operator expression, e.g. -x or !x.
	Unary struct {
		Op    token.Token
		Right Expr
	}

	// Binary represents a binary operator expression, e.g. x + y.
	Binary struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// Logical represents a short-circuiting 'and'/'or' expression.
	Logical struct {
		Left  Expr
		Op    token.Token
		Right Expr
	}

	// Grouping represents a parenthesized expression, e.g. (x).
	Grouping struct {
		Inner Expr
	}

	// Call represents a function call, e.g. f(x, y).
	Call struct {
		Callee Expr
		Paren  token.Token // the closing ')', used to report arity errors
		Args   []Expr
	}

	// Get represents a property read, e.g. x.y.
	Get struct {
		Object Expr
		Name   token.Token
	}

	// Set represents a property write, e.g. x.y = z.
	Set struct {
		Object Expr
		Name   token.Token
		Value  Expr
	}
)

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*Variable)(nil)
	_ Expr = (*Assign)(nil)
	_ Expr = (*Unary)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Logical)(nil)
	_ Expr = (*Grouping)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Get)(nil)
	_ Expr = (*Set)(nil)
)

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Set) exprNode()      {}

func (n *Literal) String() string {
	if n.Value == nil {
		return "none"
	}
	if s, ok := n.Value.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", n.Value)
}
func (n *Literal) Walk(Visitor) {}

func (n *Variable) String() string { return n.Name.Lexeme }
func (n *Variable) Walk(Visitor)   {}

func (n *Assign) String() string { return n.Name.Lexeme + " = " + n.Value.String() }
func (n *Assign) Walk(v Visitor) { Walk(v, n.Value) }

func (n *Unary) String() string { return n.Op.Lexeme + n.Right.String() }
func (n *Unary) Walk(v Visitor) { Walk(v, n.Right) }

func (n *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op.Lexeme, n.Right)
}
func (n *Binary) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op.Lexeme, n.Right)
}
func (n *Logical) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

func (n *Grouping) String() string { return "(group " + n.Inner.String() + ")" }
func (n *Grouping) Walk(v Visitor) { Walk(v, n.Inner) }

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Callee, strings.Join(args, ", "))
}
func (n *Call) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}

func (n *Get) String() string { return n.Object.String() + "." + n.Name.Lexeme }
func (n *Get) Walk(v Visitor) { Walk(v, n.Object) }

func (n *Set) String() string {
	return fmt.Sprintf("%s.%s = %s", n.Object, n.Name.Lexeme, n.Value)
}
func (n *Set) Walk(v Visitor) {
	Walk(v, n.Object)
	Walk(v, n.Value)
}
