// Package sbml loads reaction network models from SBML (Systems Biology
// Markup Language) files. Only the parts that shape the dependency graph are
// read: compartments, species, parameters, reactions with their participants
// and the MathML of their kinetic laws.
package sbml

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Extensions lists the file extensions recognised as SBML.
var Extensions = []string{".xml", ".sbml"}

// ErrNoModel is returned when a document has no <model> element.
var ErrNoModel = errors.New("document contains no <model> element")

// Loader is the SBML implementation of the model.Loader interface.
type Loader struct{}

// NewLoader creates a new SBML model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads each SBML file and merges their contents into one model, in the
// order the paths are given.
func (l *Loader) Load(ctx context.Context, paths ...string) (*model.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("SBML loader started.", "path_count", len(paths))

	m := &model.Model{}
	for _, path := range paths {
		doc, err := readDocument(path)
		if err != nil {
			return nil, &model.LoadError{Path: path, Err: err}
		}
		logger.Debug("Parsed SBML document.", "path", path, "level", doc.Level, "version", doc.Version, "model", doc.Model.ID)
		if err := translate(doc.Model, m); err != nil {
			return nil, &model.LoadError{Path: path, Err: err}
		}
	}

	logger.Debug("SBML loading complete.",
		"compartments", len(m.Compartments),
		"species", len(m.Species),
		"reactions", len(m.Reactions),
		"parameters", len(m.Parameters))
	return m, nil
}

func readDocument(path string) (*document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc document
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode SBML: %w", err)
	}
	if doc.Model == nil {
		return nil, ErrNoModel
	}
	return &doc, nil
}

// translate appends the entities of one SBML model to m.
func translate(src *modelElem, m *model.Model) error {
	for _, c := range src.Compartments {
		if c.ID == "" {
			return errors.New("compartment without id")
		}
		m.Compartments = append(m.Compartments, &model.Compartment{ID: c.ID})
	}

	for _, s := range src.Species {
		if s.ID == "" {
			return errors.New("species without id")
		}
		m.Species = append(m.Species, &model.Species{
			ID:          s.ID,
			Compartment: s.Compartment,
			Constant:    s.Constant,
			Name:        s.Name,
		})
	}

	for _, p := range src.Parameters {
		val := cty.NullVal(cty.Number)
		if p.Value != nil {
			parsed, err := cty.ParseNumberVal(*p.Value)
			if err != nil {
				return fmt.Errorf("parameter '%s' has invalid value %q: %w", p.ID, *p.Value, err)
			}
			val = parsed
		}
		m.Parameters = append(m.Parameters, &model.Parameter{ID: p.ID, Value: val})
	}

	for _, r := range src.Reactions {
		if r.ID == "" {
			return errors.New("reaction without id")
		}
		reaction := &model.Reaction{
			ID:          r.ID,
			Compartment: r.Compartment,
			Reactants:   speciesRefs(r.Reactants),
			Products:    speciesRefs(r.Products),
			Modifiers:   speciesRefs(r.Modifiers),
		}
		if r.KineticLaw != nil && r.KineticLaw.Math != nil {
			reaction.RateLaw = r.KineticLaw.Math
		}
		m.Reactions = append(m.Reactions, reaction)
	}
	return nil
}

// speciesRefs passes stoichiometry through as text; the builder decides how
// to read it.
func speciesRefs(elems []speciesReferenceElem) []model.SpeciesRef {
	refs := make([]model.SpeciesRef, 0, len(elems))
	for _, e := range elems {
		coefficient := cty.NullVal(cty.String)
		if e.Stoichiometry != nil {
			coefficient = cty.StringVal(*e.Stoichiometry)
		}
		refs = append(refs, model.SpeciesRef{Species: e.Species, Coefficient: coefficient})
	}
	return refs
}
