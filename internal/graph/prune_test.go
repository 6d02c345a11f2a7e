package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/netgraph/internal/nodeid"
)

func TestPrune_RemovesIsolatedNodes(t *testing.T) {
	g := createTestGraph(t,
		[]nodeid.Path{"/cell/A", "/cell/orphan", "/cell/B"},
		[]nodeid.Path{"/cell/R1", "/cell/idle"},
	)
	ctx := context.Background()
	require.NoError(t, g.AddEdge(ctx, "/cell/A", "/cell/R1"))
	require.NoError(t, g.AddEdge(ctx, "/cell/R1", "/cell/B"))

	removed := g.Prune(ctx)

	assert.Equal(t, []nodeid.Path{"/cell/orphan", "/cell/idle"}, removed)
	for _, n := range g.Nodes(ctx) {
		degree, err := g.Degree(ctx, n.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, degree, 1, "node %s should have at least one edge", n.ID)
	}
	assert.Len(t, g.Nodes(ctx), 3)
}

func TestPrune_TwoConnectedNodesUnaffected(t *testing.T) {
	g := createTestGraph(t, []nodeid.Path{"/cell/A"}, []nodeid.Path{"/cell/R1"})
	ctx := context.Background()
	require.NoError(t, g.AddEdge(ctx, "/cell/A", "/cell/R1"))

	removed := g.Prune(ctx)

	assert.Empty(t, removed)
	assert.Len(t, g.Nodes(ctx), 2)
	assert.Len(t, g.Edges(ctx), 1)
}

func TestPrune_EmptyGraph(t *testing.T) {
	g := NewInMemory()
	assert.Empty(t, g.Prune(context.Background()))
}
