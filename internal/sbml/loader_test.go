package sbml

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/netgraph/internal/builder"
	"github.com/vk/netgraph/internal/exprwalk"
	"github.com/vk/netgraph/internal/model"
	"github.com/vk/netgraph/internal/nodeid"
	"github.com/vk/netgraph/internal/testutil"
	"github.com/zclconf/go-cty/cty"
)

const networkSBML = `<?xml version="1.0" encoding="UTF-8"?>
<sbml xmlns="http://www.sbml.org/sbml/level3/version1/core" level="3" version="1">
  <model id="toy">
    <listOfCompartments>
      <compartment id="cell" constant="true"/>
    </listOfCompartments>
    <listOfSpecies>
      <species id="A" compartment="cell" constant="false"/>
      <species id="B" name="Product" compartment="cell" constant="true"/>
      <species id="E" compartment="cell" constant="false"/>
    </listOfSpecies>
    <listOfParameters>
      <parameter id="k1" value="0.3"/>
    </listOfParameters>
    <listOfReactions>
      <reaction id="R1" reversible="false">
        <listOfReactants>
          <speciesReference species="A" stoichiometry="2"/>
        </listOfReactants>
        <listOfProducts>
          <speciesReference species="B"/>
        </listOfProducts>
        <listOfModifiers>
          <modifierSpeciesReference species="E"/>
        </listOfModifiers>
        <kineticLaw>
          <math xmlns="http://www.w3.org/1998/Math/MathML">
            <apply>
              <times/>
              <ci> k1 </ci>
              <ci> A </ci>
              <ci> E </ci>
            </apply>
          </math>
        </kineticLaw>
      </reaction>
    </listOfReactions>
  </model>
</sbml>
`

func TestLoader_Load(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := testutil.WriteFiles(t, map[string]string{"toy.xml": networkSBML})

	m, err := NewLoader().Load(ctx, filepath.Join(dir, "toy.xml"))
	require.NoError(t, err)

	require.Len(t, m.Compartments, 1)
	assert.Equal(t, "cell", m.Compartments[0].ID)

	require.Len(t, m.Species, 3)
	assert.Equal(t, model.Species{ID: "B", Compartment: "cell", Constant: true, Name: "Product"}, *m.Species[1])
	assert.False(t, m.Species[0].Constant)

	require.Len(t, m.Parameters, 1)
	k1, _ := m.Parameters[0].Value.AsBigFloat().Float64()
	assert.InDelta(t, 0.3, k1, 1e-9)

	require.Len(t, m.Reactions, 1)
	r := m.Reactions[0]
	assert.Empty(t, r.Compartment)
	require.Len(t, r.Reactants, 1)
	assert.True(t, r.Reactants[0].Coefficient.RawEquals(cty.StringVal("2")))
	require.Len(t, r.Products, 1)
	assert.True(t, r.Products[0].Coefficient.IsNull())
	require.Len(t, r.Modifiers, 1)
	assert.Equal(t, "E", r.Modifiers[0].Species)
	require.NotNil(t, r.RateLaw)
}

func TestMathNode_Walk(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := testutil.WriteFiles(t, map[string]string{"toy.xml": networkSBML})
	m, err := NewLoader().Load(ctx, filepath.Join(dir, "toy.xml"))
	require.NoError(t, err)

	index := exprwalk.PathSet{"/cell/A": {}, "/cell/E": {}}
	got := exprwalk.Walk(m.Reactions[0].RateLaw, "/cell", index)

	want := []nodeid.Path{"/cell/A", "/cell/E"}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b nodeid.Path) bool { return a < b })); diff != "" {
		t.Errorf("references mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_BuildsGraph(t *testing.T) {
	ctx, _ := testutil.Context(t)
	dir := testutil.WriteFiles(t, map[string]string{"toy.sbml": networkSBML})

	m, err := NewLoader().Load(ctx, filepath.Join(dir, "toy.sbml"))
	require.NoError(t, err)
	g, err := builder.Build(ctx, m)
	require.NoError(t, err)

	// Two stoichiometric edges plus one rate-law reference.
	assert.Equal(t, 3, g.CountEdges(ctx, "/cell/A", "/cell/R1"))
	// The modifier is already referenced by the rate law.
	assert.Equal(t, 1, g.CountEdges(ctx, "/cell/E", "/cell/R1"))
	assert.Equal(t, 1, g.CountEdges(ctx, "/cell/R1", "/cell/B"))
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		message string
	}{
		{name: "malformed xml", content: "<sbml><model>", message: "failed to decode SBML"},
		{name: "wrong root element", content: "<html></html>", message: "failed to decode SBML"},
		{name: "no model", content: `<sbml level="3" version="1"></sbml>`, message: ErrNoModel.Error()},
		{
			name:    "species without id",
			content: `<sbml><model><listOfSpecies><species compartment="c"/></listOfSpecies></model></sbml>`,
			message: "species without id",
		},
		{
			name:    "bad parameter value",
			content: `<sbml><model><listOfParameters><parameter id="k" value="fast"/></listOfParameters></model></sbml>`,
			message: "parameter 'k' has invalid value",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := testutil.Context(t)
			dir := testutil.WriteFiles(t, map[string]string{"bad.xml": tc.content})
			path := filepath.Join(dir, "bad.xml")

			_, err := NewLoader().Load(ctx, path)

			var loadErr *model.LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, path, loadErr.Path)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestLoader_MissingFile(t *testing.T) {
	ctx, _ := testutil.Context(t)

	_, err := NewLoader().Load(ctx, filepath.Join(t.TempDir(), "missing.xml"))

	var loadErr *model.LoadError
	require.ErrorAs(t, err, &loadErr)
}
