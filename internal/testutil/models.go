package testutil

import (
	"github.com/vk/netgraph/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Ref returns a reaction participant with an integer coefficient.
func Ref(species string, coefficient int64) model.SpeciesRef {
	return model.SpeciesRef{Species: species, Coefficient: cty.NumberIntVal(coefficient)}
}

// RefNoCoefficient returns a reaction participant without a coefficient.
func RefNoCoefficient(species string) model.SpeciesRef {
	return model.SpeciesRef{Species: species, Coefficient: cty.NullVal(cty.Number)}
}

// ScenarioA is one compartment "cell" holding A (variable) and B (constant),
// and a reaction R1 turning 2 A into B, without a rate law.
func ScenarioA() *model.Model {
	return &model.Model{
		Compartments: []*model.Compartment{{ID: "cell"}},
		Species: []*model.Species{
			{ID: "A", Compartment: "cell"},
			{ID: "B", Compartment: "cell", Constant: true},
		},
		Reactions: []*model.Reaction{
			{
				ID:          "R1",
				Compartment: "cell",
				Reactants:   []model.SpeciesRef{Ref("A", 2)},
				Products:    []model.SpeciesRef{Ref("B", 1)},
			},
		},
	}
}

// ScenarioB is ScenarioA with a rate law `k1 * A` on R1.
func ScenarioB() *model.Model {
	m := ScenarioA()
	m.Parameters = []*model.Parameter{{ID: "k1", Value: cty.NumberFloatVal(0.3)}}
	m.Reactions[0].RateLaw = model.Op(model.Ref("k1"), model.Ref("A"))
	return m
}

// ScenarioC is ScenarioA with an extra species nothing refers to.
func ScenarioC() *model.Model {
	m := ScenarioA()
	m.Species = append(m.Species, &model.Species{ID: "orphan", Compartment: "cell"})
	return m
}
