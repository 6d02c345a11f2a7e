package model

// ExpressionNode is one node of a rate-law expression tree. Operators have an
// empty name; leaves have no children. Trees are finite and acyclic.
type ExpressionNode interface {
	Name() string
	Children() []ExpressionNode
}

// Expr is a plain ExpressionNode, used by loaders that materialise their tree
// up front and by tests.
type Expr struct {
	Ident string
	Args  []*Expr
}

// Name implements ExpressionNode. A nil expression has no name.
func (e *Expr) Name() string {
	if e == nil {
		return ""
	}
	return e.Ident
}

// Children implements ExpressionNode. Nil operands are left out.
func (e *Expr) Children() []ExpressionNode {
	if e == nil {
		return nil
	}
	children := make([]ExpressionNode, 0, len(e.Args))
	for _, a := range e.Args {
		if a != nil {
			children = append(children, a)
		}
	}
	return children
}

// Ref returns a leaf expression naming an identifier.
func Ref(name string) *Expr {
	return &Expr{Ident: name}
}

// Op returns an unnamed operator expression over the given operands.
func Op(args ...*Expr) *Expr {
	return &Expr{Args: args}
}
