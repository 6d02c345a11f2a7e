// internal/nodeid/path_test.go
package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	testCases := []struct {
		name     string
		parent   Path
		id       string
		expected Path
	}{
		{name: "top-level compartment", parent: Root, id: "cell", expected: "/cell"},
		{name: "species in compartment", parent: "/cell", id: "A", expected: "/cell/A"},
		{name: "reaction in compartment", parent: "/cell", id: "R1", expected: "/cell/R1"},
		{name: "nested parent", parent: "/cell/nucleus", id: "DNA", expected: "/cell/nucleus/DNA"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Join(tc.parent, tc.id))
		})
	}
}

func TestJoin_Deterministic(t *testing.T) {
	first := Join(Join(Root, "cell"), "A")
	second := Join(Join(Root, "cell"), "A")
	assert.Equal(t, first, second)
}

func TestJoin_DistinctIDsDistinctPaths(t *testing.T) {
	ids := []string{"A", "B", "R1", "AB", "A_1"}
	seen := make(map[Path]string)
	for _, id := range ids {
		p := Join("/cell", id)
		if other, ok := seen[p]; ok {
			t.Fatalf("ids %q and %q share path %q", other, id, p)
		}
		seen[p] = id
	}
	assert.Len(t, seen, len(ids))
}

func TestPath_BaseAndParent(t *testing.T) {
	p := Path("/cell/A")
	assert.Equal(t, "A", p.Base())
	assert.Equal(t, Path("/cell"), p.Parent())
	assert.Equal(t, Root, p.Parent().Parent())
	assert.Equal(t, "", Root.Base())
}

func TestPath_Label(t *testing.T) {
	testCases := []struct {
		path     Path
		expected string
	}{
		{path: "/cell/A", expected: "A"},
		{path: "/cell/Glc[ext]", expected: "Glc\next"},
		{path: "/cell/X[1][2]", expected: "X\n1\n2"},
		{path: "/cell", expected: "cell"},
	}

	for _, tc := range testCases {
		t.Run(tc.path.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.path.Label())
		})
	}
}

func TestPath_LabelDoesNotAffectIdentity(t *testing.T) {
	a := Path("/cell/X[1]")
	b := Path("/other/X[1]")
	assert.Equal(t, a.Label(), b.Label())
	assert.NotEqual(t, a, b)
}
