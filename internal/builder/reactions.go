package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/exprwalk"
	"github.com/vk/netgraph/internal/model"
	"github.com/vk/netgraph/internal/node"
	"github.com/vk/netgraph/internal/nodeid"
)

// AddReactions runs the reaction pass. All species a reaction refers to must
// have been registered by the species pass.
func (b *Builder) AddReactions(ctx context.Context, reactions []*model.Reaction) error {
	if err := b.enter(ReactionsLoaded); err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting reaction pass.", "count", len(reactions))

	for _, r := range reactions {
		if err := b.addReaction(ctx, r); err != nil {
			return b.fail(err)
		}
	}

	b.phase = ReactionsLoaded
	logger.Debug("Finished reaction pass.")
	return nil
}

// effectiveCompartment returns the path of the reaction's own compartment, or
// of the most recently registered compartment when it declares none.
func (b *Builder) effectiveCompartment(r *model.Reaction) (nodeid.Path, error) {
	id := r.Compartment
	if id == "" {
		id = b.currentCompartment
	}
	if id == "" {
		return nodeid.Root, &MissingCompartmentError{Kind: "reaction", ID: r.ID, Fallback: true}
	}
	path, ok := b.compartments[id]
	if !ok {
		return nodeid.Root, &MissingCompartmentError{Kind: "reaction", ID: r.ID, Compartment: id}
	}
	return path, nil
}

func (b *Builder) addReaction(ctx context.Context, r *model.Reaction) error {
	ctx, logger := ctxlog.With(ctx, "reaction", r.ID)

	compartment, err := b.effectiveCompartment(r)
	if err != nil {
		return err
	}
	path, err := b.claim(compartment, "reaction", r.ID)
	if err != nil {
		return err
	}
	if err := b.graph.AddNode(ctx, node.NewReaction(path)); err != nil {
		return fmt.Errorf("failed to add reaction node: %w", err)
	}

	referenced := make(map[nodeid.Path]bool)
	if r.RateLaw != nil {
		refs := exprwalk.Walk(r.RateLaw, compartment, b.speciesPaths)
		logger.Debug("Linking rate-law references.", "count", len(refs))
		for _, ref := range refs {
			if err := b.graph.AddEdge(ctx, ref, path); err != nil {
				return fmt.Errorf("error linking rate-law reference: %w", err)
			}
			referenced[ref] = true
		}
	}

	for _, m := range r.Modifiers {
		mpath, err := b.resolve(r.ID, "modifier", m.Species)
		if err != nil {
			return err
		}
		if referenced[mpath] {
			continue
		}
		if err := b.graph.AddEdge(ctx, mpath, path); err != nil {
			return fmt.Errorf("error linking modifier: %w", err)
		}
		referenced[mpath] = true
	}

	var substrates, products []string
	for _, s := range r.Reactants {
		spath, err := b.resolve(r.ID, "reactant", s.Species)
		if err != nil {
			return err
		}
		k, err := Multiplicity(s.Coefficient)
		if err != nil {
			return &CoefficientError{Reaction: r.ID, Species: s.Species, Err: err}
		}
		if err := b.graph.AddEdges(ctx, spath, path, k); err != nil {
			return fmt.Errorf("error linking reactant: %w", err)
		}
		for i := 0; i < k; i++ {
			substrates = append(substrates, spath.String())
		}
	}

	for _, p := range r.Products {
		ppath, err := b.resolve(r.ID, "product", p.Species)
		if err != nil {
			return err
		}
		k, err := Multiplicity(p.Coefficient)
		if err != nil {
			return &CoefficientError{Reaction: r.ID, Species: p.Species, Err: err}
		}
		if err := b.graph.AddEdges(ctx, path, ppath, k); err != nil {
			return fmt.Errorf("error linking product: %w", err)
		}
		for i := 0; i < k; i++ {
			products = append(products, ppath.String())
		}
	}

	logger.Info("Added reaction.", "path", path.String(),
		"equation", strings.Join(substrates, " + ")+" <--> "+strings.Join(products, " + "))
	return nil
}

// resolve returns the path of a species referenced by a reaction.
func (b *Builder) resolve(reaction, role, species string) (nodeid.Path, error) {
	path, ok := b.species[species]
	if !ok {
		return nodeid.Root, &UnresolvedReferenceError{Reaction: reaction, Role: role, Species: species}
	}
	return path, nil
}
