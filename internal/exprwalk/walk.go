// Package exprwalk discovers which registered species a rate-law expression
// refers to. A rate law may mention species that take no stoichiometric part
// in the reaction (catalysts, inhibitors); those references become dependency
// edges in the graph.
package exprwalk

import (
	"github.com/vk/netgraph/internal/model"
	"github.com/vk/netgraph/internal/nodeid"
)

// SpeciesIndex answers whether a path belongs to a registered species.
type SpeciesIndex interface {
	HasSpecies(path nodeid.Path) bool
}

// Walk traverses the expression tree rooted at root and returns the path of
// every registered species it names, qualified by the given compartment. Each
// occurrence is reported, so a species named twice appears twice. Names that
// resolve to nothing are parameters, functions or literals and are skipped.
//
// The traversal uses an explicit stack, so arbitrarily deep trees cannot
// exhaust the goroutine stack. Sibling order of the result is not significant.
func Walk(root model.ExpressionNode, compartment nodeid.Path, index SpeciesIndex) []nodeid.Path {
	if root == nil {
		return nil
	}

	var refs []nodeid.Path
	stack := []model.ExpressionNode{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}

		if name := n.Name(); name != "" {
			candidate := nodeid.Join(compartment, name)
			if index.HasSpecies(candidate) {
				refs = append(refs, candidate)
			}
		}
		stack = append(stack, n.Children()...)
	}
	return refs
}

// PathSet is a SpeciesIndex backed by a set of paths.
type PathSet map[nodeid.Path]struct{}

// HasSpecies implements SpeciesIndex.
func (s PathSet) HasSpecies(path nodeid.Path) bool {
	_, ok := s[path]
	return ok
}

// Add inserts a path into the set.
func (s PathSet) Add(path nodeid.Path) {
	s[path] = struct{}{}
}
