package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSpecies(t *testing.T) {
	t.Run("non-constant species is blue", func(t *testing.T) {
		n := NewSpecies("/cell/A", false)
		assert.Equal(t, SpeciesNode, n.Kind)
		assert.Equal(t, "A", n.Label)
		assert.Equal(t, "#0000ff64", n.FillColor)
		assert.Equal(t, "filled", n.Style)
		assert.Equal(t, "rect", n.Shape)
	})

	t.Run("constant species is green", func(t *testing.T) {
		n := NewSpecies("/cell/B", true)
		assert.Equal(t, "#00ff0064", n.FillColor)
	})

	t.Run("label comes from the path", func(t *testing.T) {
		n := NewSpecies("/cell/Glc[ext]", false)
		assert.Equal(t, "Glc\next", n.Label)
	})
}

func TestNewReaction(t *testing.T) {
	n := NewReaction("/cell/R1")
	assert.Equal(t, ReactionNode, n.Kind)
	assert.Equal(t, "R1", n.Label)
	assert.Equal(t, "ellipse", n.Shape)
	assert.Zero(t, n.FontSize)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "species", SpeciesNode.String())
	assert.Equal(t, "reaction", ReactionNode.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}

func TestRGBA_Hex(t *testing.T) {
	assert.Equal(t, "#0a0b0cff", RGBA{R: 10, G: 11, B: 12, A: 255}.Hex())
}
