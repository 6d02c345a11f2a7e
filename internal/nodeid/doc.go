// internal/nodeid/doc.go

/*
Package nodeid provides the hierarchical path identifiers used for every
compartment, species and reaction of a network model.

The format is a slash-separated sequence of segments rooted at the empty
string, e.g. `/cell` for a compartment and `/cell/A` for a species inside it.
A path is the sole identity of a node in the graph; labels derived from it are
cosmetic.

This package centralises all formatting and parsing of paths so that the
builder, the exporters and the tests agree on one canonical form.
*/
package nodeid
