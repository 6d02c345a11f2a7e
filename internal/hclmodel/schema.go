package hclmodel

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot decodes all top-level blocks of a model file. Unknown blocks and
// attributes are rejected by the decoder.
type fileRoot struct {
	Compartments []*compartmentBlock `hcl:"compartment,block"`
	Parameters   []*parameterBlock   `hcl:"parameter,block"`
	Species      []*speciesBlock     `hcl:"species,block"`
	Reactions    []*reactionBlock    `hcl:"reaction,block"`
}

// compartmentBlock represents a `compartment` block.
type compartmentBlock struct {
	ID string `hcl:"id,label"`
}

// parameterBlock represents a `parameter` block.
type parameterBlock struct {
	ID    string         `hcl:"id,label"`
	Value hcl.Expression `hcl:"value,optional"`
}

// speciesBlock represents a `species` block.
type speciesBlock struct {
	ID          string `hcl:"id,label"`
	Compartment string `hcl:"compartment"`
	Constant    bool   `hcl:"constant,optional"`
	Name        string `hcl:"name,optional"`
}

// reactionBlock represents a `reaction` block.
type reactionBlock struct {
	ID          string              `hcl:"id,label"`
	Compartment string              `hcl:"compartment,optional"`
	Reactants   []*participantBlock `hcl:"reactant,block"`
	Products    []*participantBlock `hcl:"product,block"`
	Modifiers   []*participantBlock `hcl:"modifier,block"`
	RateLaw     hcl.Expression      `hcl:"rate_law,optional"`
}

// participantBlock represents a `reactant`, `product` or `modifier` block
// inside a reaction.
type participantBlock struct {
	Species     string         `hcl:"species,label"`
	Coefficient hcl.Expression `hcl:"coefficient,optional"`
}
