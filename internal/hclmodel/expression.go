package hclmodel

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/netgraph/internal/model"
)

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, e.g. `cell.A[0]`.
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// syntaxNode exposes a native HCL syntax tree as a model.ExpressionNode.
type syntaxNode struct {
	expr hclsyntax.Expression
}

// newExpression wraps a rate-law expression. Expressions that did not come
// from native syntax are reduced to an operator over the roots of the
// variables they mention.
func newExpression(expr hcl.Expression) model.ExpressionNode {
	if syntaxExpr, ok := expr.(hclsyntax.Expression); ok {
		return syntaxNode{expr: syntaxExpr}
	}
	op := &model.Expr{}
	for _, traversal := range expr.Variables() {
		op.Args = append(op.Args, model.Ref(traversal.RootName()))
	}
	return op
}

// Name returns the identifier of a bare variable reference or the name of a
// called function. Longer traversals return their canonical text, which can
// never equal a plain identifier. Everything else is an unnamed operator.
func (n syntaxNode) Name() string {
	switch e := n.expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) == 1 {
			return e.Traversal.RootName()
		}
		return TraversalKey(e.Traversal)
	case *hclsyntax.FunctionCallExpr:
		return e.Name
	}
	return ""
}

// Children returns the direct operand expressions.
func (n syntaxNode) Children() []model.ExpressionNode {
	var children []hclsyntax.Expression
	switch e := n.expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		children = e.Args
	case *hclsyntax.BinaryOpExpr:
		children = []hclsyntax.Expression{e.LHS, e.RHS}
	case *hclsyntax.UnaryOpExpr:
		children = []hclsyntax.Expression{e.Val}
	case *hclsyntax.ConditionalExpr:
		children = []hclsyntax.Expression{e.Condition, e.TrueResult, e.FalseResult}
	case *hclsyntax.ParenthesesExpr:
		children = []hclsyntax.Expression{e.Expression}
	case *hclsyntax.TemplateExpr:
		children = e.Parts
	case *hclsyntax.TemplateWrapExpr:
		children = []hclsyntax.Expression{e.Wrapped}
	case *hclsyntax.TupleConsExpr:
		children = e.Exprs
	case *hclsyntax.ObjectConsExpr:
		// Object keys are labels, not references.
		for _, item := range e.Items {
			children = append(children, item.ValueExpr)
		}
	case *hclsyntax.ForExpr:
		children = []hclsyntax.Expression{e.CollExpr, e.KeyExpr, e.ValExpr, e.CondExpr}
	case *hclsyntax.IndexExpr:
		children = []hclsyntax.Expression{e.Collection, e.Key}
	case *hclsyntax.RelativeTraversalExpr:
		children = []hclsyntax.Expression{e.Source}
	case *hclsyntax.SplatExpr:
		children = []hclsyntax.Expression{e.Source, e.Each}
	}

	nodes := make([]model.ExpressionNode, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		nodes = append(nodes, syntaxNode{expr: c})
	}
	return nodes
}
