package inmemorytopology

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/netgraph/internal/node"
	"github.com/vk/netgraph/internal/nodeid"
	"github.com/vk/netgraph/internal/topologystore"
)

func TestAddAndGetNode(t *testing.T) {
	s := New()
	ctx := context.Background()
	testNode := node.NewSpecies("/cell/A", false)

	err := s.AddNode(ctx, testNode)
	require.NoError(t, err)

	retrievedNode, ok := s.GetNode(ctx, "/cell/A")
	require.True(t, ok)
	assert.Equal(t, testNode, retrievedNode)

	_, ok = s.GetNode(ctx, "/cell/missing")
	assert.False(t, ok)
}

func TestAddNode_Idempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	first := node.NewSpecies("/cell/A", false)

	require.NoError(t, s.AddNode(ctx, first))
	require.NoError(t, s.AddNode(ctx, node.NewSpecies("/cell/A", true)))

	nodes := s.AllNodes(ctx)
	require.Len(t, nodes, 1)
	assert.Same(t, first, nodes[0])
}

func TestAddNode_Nil(t *testing.T) {
	require.Error(t, New().AddNode(context.Background(), nil))
}

func TestAllNodes_InsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, id := range []nodeid.Path{"/cell/C", "/cell/A", "/cell/B"} {
		require.NoError(t, s.AddNode(ctx, node.NewSpecies(id, false)))
	}

	var ids []nodeid.Path
	for _, n := range s.AllNodes(ctx) {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []nodeid.Path{"/cell/C", "/cell/A", "/cell/B"}, ids)
}

func TestAddEdge(t *testing.T) {
	t.Run("parallel edges are kept", func(t *testing.T) {
		s := New()
		ctx := context.Background()
		require.NoError(t, s.AddNode(ctx, node.NewSpecies("/cell/A", false)))
		require.NoError(t, s.AddNode(ctx, node.NewReaction("/cell/R1")))

		require.NoError(t, s.AddEdge(ctx, "/cell/A", "/cell/R1"))
		require.NoError(t, s.AddEdge(ctx, "/cell/A", "/cell/R1"))

		edges := s.Edges(ctx)
		assert.Equal(t, []topologystore.Edge{
			{From: "/cell/A", To: "/cell/R1"},
			{From: "/cell/A", To: "/cell/R1"},
		}, edges)

		degree, err := s.Degree(ctx, "/cell/A")
		require.NoError(t, err)
		assert.Equal(t, 2, degree)
	})

	t.Run("error cases", func(t *testing.T) {
		s := New()
		ctx := context.Background()
		require.NoError(t, s.AddNode(ctx, node.NewSpecies("/cell/A", false)))

		assert.Error(t, s.AddEdge(ctx, "/cell/missing", "/cell/A"))
		assert.Error(t, s.AddEdge(ctx, "/cell/A", "/cell/missing"))
		assert.Empty(t, s.Edges(ctx))
	})
}

func TestRemoveNode(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.AddNode(ctx, node.NewSpecies("/cell/A", false)))
	require.NoError(t, s.AddNode(ctx, node.NewReaction("/cell/R1")))
	require.NoError(t, s.AddNode(ctx, node.NewSpecies("/cell/B", false)))
	require.NoError(t, s.AddEdge(ctx, "/cell/A", "/cell/R1"))
	require.NoError(t, s.AddEdge(ctx, "/cell/R1", "/cell/B"))

	require.NoError(t, s.RemoveNode(ctx, "/cell/A"))

	_, ok := s.GetNode(ctx, "/cell/A")
	assert.False(t, ok)
	assert.Equal(t, []topologystore.Edge{{From: "/cell/R1", To: "/cell/B"}}, s.Edges(ctx))

	degree, err := s.Degree(ctx, "/cell/R1")
	require.NoError(t, err)
	assert.Equal(t, 1, degree)

	assert.Error(t, s.RemoveNode(ctx, "/cell/A"))
	_, err = s.Degree(ctx, "/cell/A")
	assert.Error(t, err)
}
