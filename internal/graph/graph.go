package graph

import (
	"context"

	"github.com/vk/netgraph/internal/inmemorytopology"
	"github.com/vk/netgraph/internal/node"
	"github.com/vk/netgraph/internal/nodeid"
	"github.com/vk/netgraph/internal/topologystore"
)

// Edge is one directed edge of the graph.
type Edge = topologystore.Edge

// Graph is the network graph produced by one conversion session.
type Graph struct {
	topology topologystore.Store
}

// New creates a graph over the given topology store.
func New(ts topologystore.Store) *Graph {
	return &Graph{topology: ts}
}

// NewInMemory creates a graph backed by a fresh in-memory store.
func NewInMemory() *Graph {
	return New(inmemorytopology.New())
}

// AddNode registers a node.
func (g *Graph) AddNode(ctx context.Context, n *node.Node) error {
	return g.topology.AddNode(ctx, n)
}

// AddEdge adds one directed edge between two registered nodes.
func (g *Graph) AddEdge(ctx context.Context, from, to nodeid.Path) error {
	return g.topology.AddEdge(ctx, from, to)
}

// AddEdges adds count parallel edges between two registered nodes.
func (g *Graph) AddEdges(ctx context.Context, from, to nodeid.Path, count int) error {
	for i := 0; i < count; i++ {
		if err := g.topology.AddEdge(ctx, from, to); err != nil {
			return err
		}
	}
	return nil
}

// Node retrieves a node by its path.
func (g *Graph) Node(ctx context.Context, id nodeid.Path) (*node.Node, bool) {
	return g.topology.GetNode(ctx, id)
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes(ctx context.Context) []*node.Node {
	return g.topology.AllNodes(ctx)
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges(ctx context.Context) []Edge {
	return g.topology.Edges(ctx)
}

// Degree returns the total degree of a node, parallel edges included.
func (g *Graph) Degree(ctx context.Context, id nodeid.Path) (int, error) {
	return g.topology.Degree(ctx, id)
}

// CountEdges returns how many edges run from one node to another.
func (g *Graph) CountEdges(ctx context.Context, from, to nodeid.Path) int {
	count := 0
	for _, e := range g.topology.Edges(ctx) {
		if e.From == from && e.To == to {
			count++
		}
	}
	return count
}
