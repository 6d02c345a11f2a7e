package builder

import (
	"context"
	"fmt"

	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/graph"
	"github.com/vk/netgraph/internal/model"
	"github.com/vk/netgraph/internal/nodeid"
)

// Prune runs the final pass, removing every node without edges. It can only
// fail if the builder is already in a terminal state.
func (b *Builder) Prune(ctx context.Context) ([]nodeid.Path, error) {
	if err := b.enter(Pruned); err != nil {
		return nil, err
	}
	removed := b.graph.Prune(ctx)
	b.phase = Pruned
	ctxlog.FromContext(ctx).Debug("Pruning complete.", "removed", len(removed))
	return removed, nil
}

// Build constructs the complete, pruned graph of a model.
func Build(ctx context.Context, m *model.Model) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.")
	b := New(graph.NewInMemory())

	if err := b.AddCompartments(ctx, m.Compartments); err != nil {
		return nil, fmt.Errorf("failed to ingest compartments: %w", err)
	}
	if err := b.AddSpecies(ctx, m.Species); err != nil {
		return nil, fmt.Errorf("failed to ingest species: %w", err)
	}
	logger.Debug("Build: Species registered.", "count", len(m.Species))

	if err := b.AddReactions(ctx, m.Reactions); err != nil {
		return nil, fmt.Errorf("failed to ingest reactions: %w", err)
	}
	logger.Debug("Build: Reactions linked.", "count", len(m.Reactions))

	if _, err := b.Prune(ctx); err != nil {
		return nil, err
	}

	logger.Info("Build: Graph construction successful.",
		"nodes", len(b.graph.Nodes(ctx)), "edges", len(b.graph.Edges(ctx)))
	return b.graph, nil
}
