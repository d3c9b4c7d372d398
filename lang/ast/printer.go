package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer pretty-prints a statement list as an indented tree, one node per
// line. It is the third of the three AST traversals (the other two being
// the resolver and the interpreter), and the only one that goes through
// the Visitor contract and Walk.
type Printer struct {
	Output io.Writer
}

// Print writes an indented dump of stmts to p.Output.
func (p *Printer) Print(stmts []Stmt) error {
	pp := &printer{w: p.Output}
	for _, s := range stmts {
		Walk(pp, s)
	}
	return pp.err
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit {
		p.depth--
		return nil
	}
	if p.err != nil {
		return nil
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(". ", p.depth), label(n))
	p.depth++
	return p
}

// label returns a short, single-line description of n, without recursing
// into children (Walk handles that via indentation).
func label(n Node) string {
	switch n := n.(type) {
	case *Literal:
		return "literal " + n.String()
	case *Variable:
		return "variable " + n.Name.Lexeme
	case *Assign:
		return "assign " + n.Name.Lexeme
	case *Unary:
		return "unary " + n.Op.Lexeme
	case *Binary:
		return "binary " + n.Op.Lexeme
	case *Logical:
		return "logical " + n.Op.Lexeme
	case *Grouping:
		return "group"
	case *Call:
		return fmt.Sprintf("call {args=%d}", len(n.Args))
	case *Get:
		return "get ." + n.Name.Lexeme
	case *Set:
		return "set ." + n.Name.Lexeme
	case *ExpressionStmt:
		return "expr stmt"
	case *PrintStmt:
		return "print"
	case *VarStmt:
		return "let " + n.Name.Lexeme
	case *Block:
		return fmt.Sprintf("block {stmts=%d}", len(n.Stmts))
	case *If:
		return "if"
	case *While:
		return "while"
	case *Fn:
		return "fn " + n.Name.Lexeme
	case *Return:
		return "return"
	case *Break:
		return "break"
	case *Class:
		return "class " + n.Name.Lexeme
	default:
		return fmt.Sprintf("%T", n)
	}
}
