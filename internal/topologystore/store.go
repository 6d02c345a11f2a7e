// Package topologystore defines the interface for storing and retrieving the
// structure of a reaction network graph: its nodes and its directed edges.
//
// # Why Topology Store Exists
//
// The builder, the pruner and the exporters all need the same view of the
// graph, but none of them should care how it is held in memory. The store
// isolates that detail behind a small contract:
//   - **Nodes** are keyed by their hierarchical path, which is their only identity.
//   - **Edges** form a multiset: adding the same (from, to) pair twice yields two
//     parallel edges, because stoichiometry is drawn as edge multiplicity.
//
// # Lifecycle and Usage
//
// The store is:
//  1. **Created** once per conversion session
//  2. **Populated** by the builder (nodes, then edges)
//  3. **Pruned** once, when isolated nodes are removed
//  4. **Read** by exporters and discarded with the session
package topologystore

import (
	"context"

	"github.com/vk/netgraph/internal/node"
	"github.com/vk/netgraph/internal/nodeid"
)

// Edge is one directed edge between two node paths.
type Edge struct {
	From nodeid.Path
	To   nodeid.Path
}

// Store is the interface for managing the topology of a directed multigraph.
type Store interface {
	// AddNode registers a new node. Adding the same path twice is idempotent:
	// the first node wins and no error is returned.
	AddNode(ctx context.Context, n *node.Node) error

	// AddEdge appends a directed edge from 'from' to 'to'. Both nodes must
	// already exist. Edges are never deduplicated.
	AddEdge(ctx context.Context, from, to nodeid.Path) error

	// RemoveNode deletes a node together with every edge touching it.
	RemoveNode(ctx context.Context, id nodeid.Path) error

	// GetNode retrieves a single node by its path.
	GetNode(ctx context.Context, id nodeid.Path) (*node.Node, bool)

	// AllNodes returns all nodes in the order they were added.
	AllNodes(ctx context.Context) []*node.Node

	// Edges returns all edges in the order they were added.
	Edges(ctx context.Context) []Edge

	// Degree returns the number of edges having the node as either endpoint,
	// counting parallel edges individually.
	Degree(ctx context.Context, id nodeid.Path) (int, error)
}
