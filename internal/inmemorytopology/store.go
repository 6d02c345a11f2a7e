package inmemorytopology

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/vk/netgraph/internal/node"
	"github.com/vk/netgraph/internal/nodeid"
	"github.com/vk/netgraph/internal/topologystore"
)

// Store implements the topologystore.Store interface using maps and a mutex.
type Store struct {
	mu    sync.RWMutex
	nodes map[nodeid.Path]*node.Node
	order []nodeid.Path
	edges []topologystore.Edge
	// degree counts edge endpoints per node, parallel edges included.
	degree map[nodeid.Path]int
}

// New creates a new, empty in-memory topology store.
func New() topologystore.Store {
	return &Store{
		nodes:  make(map[nodeid.Path]*node.Node),
		degree: make(map[nodeid.Path]int),
	}
}

// AddNode adds a new node to the store.
func (s *Store) AddNode(ctx context.Context, n *node.Node) error {
	if n == nil {
		return fmt.Errorf("cannot add nil node")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[n.ID]; exists {
		// Adding the same node twice is not an error, it's idempotent.
		return nil
	}
	s.nodes[n.ID] = n
	s.order = append(s.order, n.ID)
	return nil
}

// AddEdge appends a directed edge between two existing nodes.
func (s *Store) AddEdge(ctx context.Context, from, to nodeid.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[from]; !exists {
		return fmt.Errorf("edge source node '%s' not found in topology", from)
	}
	if _, exists := s.nodes[to]; !exists {
		return fmt.Errorf("edge target node '%s' not found in topology", to)
	}

	s.edges = append(s.edges, topologystore.Edge{From: from, To: to})
	s.degree[from]++
	s.degree[to]++
	return nil
}

// RemoveNode deletes a node and all edges incident to it.
func (s *Store) RemoveNode(ctx context.Context, id nodeid.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[id]; !exists {
		return fmt.Errorf("node '%s' not found in topology", id)
	}

	s.edges = slices.DeleteFunc(s.edges, func(e topologystore.Edge) bool {
		if e.From != id && e.To != id {
			return false
		}
		s.degree[e.From]--
		s.degree[e.To]--
		return true
	})
	delete(s.nodes, id)
	delete(s.degree, id)
	s.order = slices.DeleteFunc(s.order, func(p nodeid.Path) bool { return p == id })
	return nil
}

// GetNode retrieves a single node by its path.
func (s *Store) GetNode(ctx context.Context, id nodeid.Path) (*node.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[id]
	return n, ok
}

// AllNodes returns a snapshot of all nodes in insertion order.
func (s *Store) AllNodes(ctx context.Context) []*node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]*node.Node, 0, len(s.order))
	for _, id := range s.order {
		nodes = append(nodes, s.nodes[id])
	}
	return nodes
}

// Edges returns a snapshot of all edges in insertion order.
func (s *Store) Edges(ctx context.Context) []topologystore.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.edges)
}

// Degree returns the total degree of a node.
func (s *Store) Degree(ctx context.Context, id nodeid.Path) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.nodes[id]; !exists {
		return 0, fmt.Errorf("node '%s' not found in topology", id)
	}
	return s.degree[id], nil
}
