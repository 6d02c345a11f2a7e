package sbml

import (
	"encoding/xml"
	"strings"

	"github.com/vk/netgraph/internal/model"
)

// document is the subset of an SBML file the loader reads. Element names are
// matched regardless of namespace, so every SBML level and version decodes.
type document struct {
	XMLName xml.Name   `xml:"sbml"`
	Level   string     `xml:"level,attr"`
	Version string     `xml:"version,attr"`
	Model   *modelElem `xml:"model"`
}

type modelElem struct {
	ID           string            `xml:"id,attr"`
	Compartments []compartmentElem `xml:"listOfCompartments>compartment"`
	Species      []speciesElem     `xml:"listOfSpecies>species"`
	Parameters   []parameterElem   `xml:"listOfParameters>parameter"`
	Reactions    []reactionElem    `xml:"listOfReactions>reaction"`
}

type compartmentElem struct {
	ID string `xml:"id,attr"`
}

type speciesElem struct {
	ID          string `xml:"id,attr"`
	Name        string `xml:"name,attr"`
	Compartment string `xml:"compartment,attr"`
	Constant    bool   `xml:"constant,attr"`
}

type parameterElem struct {
	ID    string  `xml:"id,attr"`
	Value *string `xml:"value,attr"`
}

type reactionElem struct {
	ID          string                 `xml:"id,attr"`
	Compartment string                 `xml:"compartment,attr"`
	Reactants   []speciesReferenceElem `xml:"listOfReactants>speciesReference"`
	Products    []speciesReferenceElem `xml:"listOfProducts>speciesReference"`
	Modifiers   []speciesReferenceElem `xml:"listOfModifiers>modifierSpeciesReference"`
	KineticLaw  *kineticLawElem        `xml:"kineticLaw"`
}

type speciesReferenceElem struct {
	Species       string  `xml:"species,attr"`
	Stoichiometry *string `xml:"stoichiometry,attr"`
}

type kineticLawElem struct {
	Math *mathNode `xml:"math"`
}

// mathNode is one MathML element. It implements model.ExpressionNode: only
// <ci> identifiers carry a name, every other element is an unnamed operator
// or literal.
type mathNode struct {
	XMLName  xml.Name
	Text     string      `xml:",chardata"`
	Elements []*mathNode `xml:",any"`
}

// Name implements model.ExpressionNode.
func (n *mathNode) Name() string {
	if n.XMLName.Local != "ci" {
		return ""
	}
	return strings.TrimSpace(n.Text)
}

// Children implements model.ExpressionNode.
func (n *mathNode) Children() []model.ExpressionNode {
	children := make([]model.ExpressionNode, len(n.Elements))
	for i, e := range n.Elements {
		children[i] = e
	}
	return children
}
