package hclmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/netgraph/internal/exprwalk"
	"github.com/vk/netgraph/internal/nodeid"
)

func parseExpr(t *testing.T, src string) hclsyntax.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.hcl", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return expr
}

func TestSyntaxNode_WalkFindsSpecies(t *testing.T) {
	index := exprwalk.PathSet{"/cell/A": {}, "/cell/B": {}, "/cell/E": {}, "/cell/exp": {}}

	testCases := []struct {
		name     string
		src      string
		expected []nodeid.Path
	}{
		{name: "product", src: "k1 * A * E", expected: []nodeid.Path{"/cell/A", "/cell/E"}},
		{name: "repeated reference", src: "A * A", expected: []nodeid.Path{"/cell/A", "/cell/A"}},
		{name: "function call", src: "max(A, 0) / (1 + B)", expected: []nodeid.Path{"/cell/A", "/cell/B"}},
		{name: "function name is matched", src: "exp(-k)", expected: []nodeid.Path{"/cell/exp"}},
		{name: "unary and conditional", src: "A > 0 ? -B : E", expected: []nodeid.Path{"/cell/A", "/cell/B", "/cell/E"}},
		{name: "tuple and index", src: "[A, k][0] + B", expected: []nodeid.Path{"/cell/A", "/cell/B"}},
		{name: "dotted traversal never matches", src: "cell.A * k", expected: nil},
		{name: "literal only", src: "42", expected: nil},
		{name: "object keys are not references", src: "{ A = k, x = B }", expected: []nodeid.Path{"/cell/B"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := newExpression(parseExpr(t, tc.src))

			got := exprwalk.Walk(root, "/cell", index)

			opts := []cmp.Option{
				cmpopts.SortSlices(func(a, b nodeid.Path) bool { return a < b }),
				cmpopts.EquateEmpty(),
			}
			if diff := cmp.Diff(tc.expected, got, opts...); diff != "" {
				t.Errorf("references mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSyntaxNode_Names(t *testing.T) {
	assert.Equal(t, "A", newExpression(parseExpr(t, "A")).Name())
	assert.Equal(t, "log", newExpression(parseExpr(t, "log(A)")).Name())
	assert.Equal(t, "", newExpression(parseExpr(t, "A + B")).Name())
	assert.Equal(t, "cell.A", newExpression(parseExpr(t, "cell.A")).Name())
	assert.Len(t, newExpression(parseExpr(t, "A + B")).Children(), 2)
	assert.Empty(t, newExpression(parseExpr(t, "A")).Children())
}
