// Package graph provides the facade over a topology store that the builder,
// the pruner and the exporters share.
//
// The Graph is a directed multigraph whose nodes are species and reactions,
// identified by their hierarchical paths. Edges carry stoichiometric flow
// (species -> reaction for reactants, reaction -> species for products) and
// rate-law dependencies (species -> reaction). Parallel edges are kept: a
// coefficient of k is drawn as k edges.
//
// # Lifecycle
//
//  1. **Creation:** the builder creates a graph over a fresh store
//  2. **Population:** nodes and edges are added during ingestion
//  3. **Pruning:** Prune removes every node left without edges
//  4. **Export:** exporters read Nodes and Edges; the graph is then discarded
package graph
