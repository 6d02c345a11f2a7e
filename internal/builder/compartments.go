package builder

import (
	"context"

	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/model"
	"github.com/vk/netgraph/internal/nodeid"
)

// AddCompartments runs the compartment pass. Compartments are flat: each one
// hangs off the root path.
func (b *Builder) AddCompartments(ctx context.Context, compartments []*model.Compartment) error {
	if err := b.enter(CompartmentsLoaded); err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting compartment pass.", "count", len(compartments))

	for _, c := range compartments {
		path, err := b.claim(nodeid.Root, "compartment", c.ID)
		if err != nil {
			return b.fail(err)
		}
		b.compartments[c.ID] = path
		b.currentCompartment = c.ID
		logger.Info("Loading compartment.", "path", path.String())
	}

	b.phase = CompartmentsLoaded
	logger.Debug("Finished compartment pass.")
	return nil
}
