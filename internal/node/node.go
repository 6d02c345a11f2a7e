// Package node defines the vertices of the reaction network graph. Rendering
// attributes are a fixed record per node kind rather than an open attribute
// map, so every exporter sees the same, complete set of fields.
package node

import (
	"fmt"

	"github.com/vk/netgraph/internal/nodeid"
)

// Kind distinguishes between the different kinds of nodes in the graph.
type Kind int

const (
	// SpeciesNode represents a molecular species.
	SpeciesNode Kind = iota
	// ReactionNode represents a reaction.
	ReactionNode
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case SpeciesNode:
		return "species"
	case ReactionNode:
		return "reaction"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is a single vertex in the network graph.
type Node struct {
	// ID is the hierarchical path of the entity and the node's only identity.
	ID   nodeid.Path
	Kind Kind
	// Name is the human-readable species name, if the source gives one. It is
	// drawn next to the node and never takes part in identity.
	Name string

	// --- Rendering attributes ---

	Label     string
	Shape     string
	Color     string
	FillColor string
	Style     string
	// FontSize is zero when the renderer default should be used.
	FontSize int
}

var (
	speciesFill  = RGBA{R: 0, G: 0, B: 255, A: 100}
	constantFill = RGBA{R: 0, G: 255, B: 0, A: 100}
	reactionFill = RGBA{R: 0, G: 0, B: 255, A: 100}
)

// NewSpecies creates the node for a species. Constant species are filled
// green, all others blue.
func NewSpecies(id nodeid.Path, constant bool) *Node {
	fill := speciesFill
	if constant {
		fill = constantFill
	}
	return &Node{
		ID:        id,
		Kind:      SpeciesNode,
		Label:     id.Label(),
		Shape:     "rect",
		Color:     "red",
		FillColor: fill.Hex(),
		Style:     "filled",
		FontSize:  8,
	}
}

// NewReaction creates the node for a reaction.
func NewReaction(id nodeid.Path) *Node {
	return &Node{
		ID:        id,
		Kind:      ReactionNode,
		Label:     id.Label(),
		Shape:     "ellipse",
		FillColor: reactionFill.Hex(),
		Style:     "filled",
	}
}
