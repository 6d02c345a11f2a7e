// Package export serialises a finished network graph: as a Graphviz DOT file
// for rendering, and as JSON for other tools.
//
// Both writers go through a temporary file in the destination directory that
// is renamed into place, so the target path only ever holds a complete file.
package export
