package ast

// VisitDirection indicates whether a call to Visit enters or exits a node.
type VisitDirection int

// List of visit directions.
const (
	VisitEnter VisitDirection = iota
	VisitExit
)

// Visitor is implemented by traversals that walk the AST through Walk; in
// this tree that is the debug Printer. The resolver and the interpreter
// traverse the same node set with type switches instead. A node's children
// can be skipped by returning a nil Visitor from Visit.
type Visitor interface {
	Visit(n Node, dir VisitDirection) (w Visitor)
}

// VisitorFunc is a function that implements the Visitor interface.
type VisitorFunc func(n Node, dir VisitDirection) Visitor

// Visit implements the Visitor interface for VisitorFunc.
func (f VisitorFunc) Visit(n Node, dir VisitDirection) Visitor { return f(n, dir) }

// Walk visits node with Visitor v: it calls Visit in VisitEnter direction,
// and if that returns a non-nil Visitor, recurses into the node's children
// before calling Visit again in VisitExit direction.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node, VisitEnter); v == nil {
		return
	}
	node.Walk(v)
	v.Visit(node, VisitExit)
}
