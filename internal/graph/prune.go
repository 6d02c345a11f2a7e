package graph

import (
	"context"

	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/nodeid"
)

// Prune removes every node whose total degree is zero and returns their paths
// in insertion order. Each removed node is logged as a warning. Pruning cannot
// fail: the degree of a node taken from the store is always known.
func (g *Graph) Prune(ctx context.Context) []nodeid.Path {
	logger := ctxlog.FromContext(ctx)

	var isolated []nodeid.Path
	for _, n := range g.topology.AllNodes(ctx) {
		degree, err := g.topology.Degree(ctx, n.ID)
		if err != nil || degree > 0 {
			continue
		}
		isolated = append(isolated, n.ID)
	}

	for _, id := range isolated {
		logger.Warn("Disconnected node removed.", "node", id.String())
		// An isolated node has no edges, so removal only drops the vertex.
		_ = g.topology.RemoveNode(ctx, id)
	}
	return isolated
}
