package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/graph"
)

// Document is the JSON form of a network graph.
type Document struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats *Stats `json:"stats,omitempty"`
}

// Node is one vertex with its rendering attributes.
type Node struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Label     string `json:"label"`
	Name      string `json:"name,omitempty"`
	Shape     string `json:"shape,omitempty"`
	Color     string `json:"color,omitempty"`
	FillColor string `json:"fillcolor,omitempty"`
	Style     string `json:"style,omitempty"`
	FontSize  int    `json:"fontsize,omitempty"`
}

// Edge is one directed edge. Parallel edges appear once per occurrence.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Stats summarises the graph.
type Stats struct {
	TotalNodes  int            `json:"total_nodes"`
	TotalEdges  int            `json:"total_edges"`
	NodesByKind map[string]int `json:"nodes_by_kind,omitempty"`
}

// ToDocument converts the graph into its JSON form, in insertion order.
func ToDocument(ctx context.Context, g *graph.Graph) *Document {
	doc := &Document{
		Nodes: []Node{},
		Edges: []Edge{},
		Stats: &Stats{NodesByKind: make(map[string]int)},
	}
	for _, n := range g.Nodes(ctx) {
		doc.Nodes = append(doc.Nodes, Node{
			ID:        n.ID.String(),
			Kind:      n.Kind.String(),
			Label:     n.Label,
			Name:      n.Name,
			Shape:     n.Shape,
			Color:     n.Color,
			FillColor: n.FillColor,
			Style:     n.Style,
			FontSize:  n.FontSize,
		})
		doc.Stats.NodesByKind[n.Kind.String()]++
	}
	for _, e := range g.Edges(ctx) {
		doc.Edges = append(doc.Edges, Edge{Source: e.From.String(), Target: e.To.String()})
	}
	doc.Stats.TotalNodes = len(doc.Nodes)
	doc.Stats.TotalEdges = len(doc.Edges)
	return doc
}

// WriteJSON writes the graph as an indented JSON document to path.
func WriteJSON(ctx context.Context, g *graph.Graph, path string) error {
	doc := ToDocument(ctx, g)
	err := writeAtomically(path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	})
	if err != nil {
		return fmt.Errorf("failed to write JSON file %s: %w", path, err)
	}

	ctxlog.FromContext(ctx).Info("Wrote JSON file.", "path", path,
		"nodes", doc.Stats.TotalNodes, "edges", doc.Stats.TotalEdges)
	return nil
}
