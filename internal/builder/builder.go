package builder

import (
	"fmt"

	"github.com/vk/netgraph/internal/exprwalk"
	"github.com/vk/netgraph/internal/graph"
	"github.com/vk/netgraph/internal/nodeid"
)

// Phase is the position of a builder in its one-way state machine.
type Phase int

const (
	// Init is the state of a fresh builder.
	Init Phase = iota
	// CompartmentsLoaded follows the compartment pass.
	CompartmentsLoaded
	// SpeciesLoaded follows the species pass.
	SpeciesLoaded
	// ReactionsLoaded follows the reaction pass.
	ReactionsLoaded
	// Pruned is terminal: the graph is complete.
	Pruned
	// Failed is terminal: a pass returned an error.
	Failed
)

func (p Phase) String() string {
	switch p {
	case Init:
		return "init"
	case CompartmentsLoaded:
		return "compartments-loaded"
	case SpeciesLoaded:
		return "species-loaded"
	case ReactionsLoaded:
		return "reactions-loaded"
	case Pruned:
		return "pruned"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// owner identifies the entity that claimed a path.
type owner struct {
	kind string
	id   string
}

// Builder ingests one model into one graph. It is not reusable.
type Builder struct {
	graph *graph.Graph
	phase Phase

	// compartments maps compartment ids to their paths.
	compartments map[string]nodeid.Path
	// species maps species ids to their paths.
	species map[string]nodeid.Path
	// speciesPaths indexes registered species paths for rate-law lookups.
	speciesPaths exprwalk.PathSet
	// owners records which entity claimed each path.
	owners map[nodeid.Path]owner
	// currentCompartment is the id of the most recently registered compartment.
	currentCompartment string
}

// New creates a builder that populates g.
func New(g *graph.Graph) *Builder {
	return &Builder{
		graph:        g,
		compartments: make(map[string]nodeid.Path),
		species:      make(map[string]nodeid.Path),
		speciesPaths: make(exprwalk.PathSet),
		owners:       make(map[nodeid.Path]owner),
	}
}

// Phase returns the current state of the builder.
func (b *Builder) Phase() Phase {
	return b.phase
}

// Graph returns the graph being built.
func (b *Builder) Graph() *graph.Graph {
	return b.graph
}

// enter checks that the builder may move forward to the given phase.
func (b *Builder) enter(target Phase) error {
	if b.phase == Failed || b.phase >= target {
		return &PhaseError{Current: b.phase, Requested: target}
	}
	return nil
}

// fail moves the builder to its terminal failed state.
func (b *Builder) fail(err error) error {
	b.phase = Failed
	return err
}

// claim derives the path of an entity under parent and reserves it. Ids
// that do not form exactly one valid segment, or whose path is already
// taken, are rejected.
func (b *Builder) claim(parent nodeid.Path, kind, id string) (nodeid.Path, error) {
	path := nodeid.Join(parent, id)
	if _, err := nodeid.Parse(path.String()); err != nil {
		return nodeid.Root, &InvalidIDError{Kind: kind, ID: id, Err: err}
	}
	if path.Parent() != parent {
		return nodeid.Root, &InvalidIDError{Kind: kind, ID: id, Err: fmt.Errorf("id must not contain %q", nodeid.Separator)}
	}
	if existing, ok := b.owners[path]; ok {
		return nodeid.Root, &PathCollisionError{
			Path:         path,
			ExistingKind: existing.kind,
			ExistingID:   existing.id,
			Kind:         kind,
			ID:           id,
		}
	}
	b.owners[path] = owner{kind: kind, id: id}
	return path, nil
}
