package model

import "github.com/zclconf/go-cty/cty"

// Model is the unified representation of one network model. Every slice keeps
// the order in which the entities were declared in the source.
type Model struct {
	Compartments []*Compartment
	Species      []*Species
	Reactions    []*Reaction
	Parameters   []*Parameter
}

// Compartment is a named container scoping the species and reactions declared
// within it.
type Compartment struct {
	ID string
}

// Species is a molecular entity living in a compartment.
type Species struct {
	ID          string
	Compartment string
	// Constant only affects how the species is drawn.
	Constant bool
	// Name is the optional human-readable name from the source.
	Name string
}

// Reaction transforms reactants into products, optionally governed by a rate
// law expression.
type Reaction struct {
	ID string
	// Compartment is empty when the source did not declare one.
	Compartment string
	Reactants   []SpeciesRef
	Products    []SpeciesRef
	// Modifiers reference species that influence the reaction without being
	// consumed or produced (e.g. enzymes).
	Modifiers []SpeciesRef
	// RateLaw is nil when the reaction has no kinetic law.
	RateLaw ExpressionNode
}

// SpeciesRef is one participant of a reaction.
type SpeciesRef struct {
	Species string
	// Coefficient is the stoichiometric coefficient as found in the source. It
	// may be null, a number, or a value of any other type; the builder decides
	// how to interpret it.
	Coefficient cty.Value
}

// Parameter is a named value that rate laws may reference. Parameters never
// become graph nodes.
type Parameter struct {
	ID    string
	Value cty.Value
}
