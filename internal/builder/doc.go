/*
Package builder is responsible for the construction of the network graph. It
acts as the bridge between the read-only model (defined in the 'model'
package) and the graph handed to the exporters.

The primary artifact produced by this package is a pruned *graph.Graph.

The graph construction is a strictly ordered, single-use process:

 1. Compartments: every compartment gets a path and is registered. The most
    recently registered compartment becomes the fallback for reactions that
    do not declare their own. No nodes are created.

 2. Species: every species is placed in its (already registered) compartment
    and becomes a node. Its path is recorded against its id.

 3. Reactions: every reaction becomes a node in its effective compartment.
    Rate-law references to species, modifiers, reactants and products are
    turned into edges. Reactants and products contribute one parallel edge per
    unit of stoichiometry.

 4. Pruning: nodes left without any edge are removed.

Each phase completes before the next one starts, phases never run twice, and a
builder that failed once refuses further work. A failure is always fatal for
the conversion; nothing is retried.
*/
package builder
