package builder

import (
	"context"
	"fmt"

	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/model"
	"github.com/vk/netgraph/internal/node"
)

// AddSpecies runs the species pass. Every species must live in a compartment
// registered by the compartment pass.
func (b *Builder) AddSpecies(ctx context.Context, species []*model.Species) error {
	if err := b.enter(SpeciesLoaded); err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting species pass.", "count", len(species))

	for _, s := range species {
		if err := b.addSpecies(ctx, s); err != nil {
			return b.fail(err)
		}
	}

	b.phase = SpeciesLoaded
	logger.Debug("Finished species pass.", "registered", len(b.species))
	return nil
}

func (b *Builder) addSpecies(ctx context.Context, s *model.Species) error {
	compartment, ok := b.compartments[s.Compartment]
	if !ok {
		return &MissingCompartmentError{Kind: "species", ID: s.ID, Compartment: s.Compartment}
	}

	path, err := b.claim(compartment, "species", s.ID)
	if err != nil {
		return err
	}
	if existing, ok := b.species[s.ID]; ok {
		return &DuplicateIDError{ID: s.ID, Existing: existing, Path: path}
	}

	n := node.NewSpecies(path, s.Constant)
	n.Name = s.Name
	if err := b.graph.AddNode(ctx, n); err != nil {
		return fmt.Errorf("failed to add species node: %w", err)
	}
	b.species[s.ID] = path
	b.speciesPaths.Add(path)
	ctxlog.FromContext(ctx).Debug("Added species.", "path", path.String(), "constant", s.Constant)
	return nil
}
