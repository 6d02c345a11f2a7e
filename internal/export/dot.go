package export

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/emicklei/dot"
	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/graph"
	"github.com/vk/netgraph/internal/node"
	"github.com/vk/netgraph/internal/nodeid"
)

// ToDOT converts the graph into a directed Graphviz graph. Every node carries
// its rendering attributes and its full path as tooltip; parallel edges are
// kept.
func ToDOT(ctx context.Context, g *graph.Graph) *dot.Graph {
	dg := dot.NewGraph(dot.Directed)

	nodes := make(map[nodeid.Path]dot.Node)
	for _, n := range g.Nodes(ctx) {
		nodes[n.ID] = dotNode(dg, n)
	}
	for _, e := range g.Edges(ctx) {
		dg.Edge(nodes[e.From], nodes[e.To])
	}
	return dg
}

func dotNode(dg *dot.Graph, n *node.Node) dot.Node {
	dn := dg.Node(n.ID.String()).
		Label(n.Label).
		Attr("shape", n.Shape).
		Attr("tooltip", n.ID.String())
	if n.Name != "" {
		dn.Attr("xlabel", n.Name)
	}
	if n.Color != "" {
		dn.Attr("color", n.Color)
	}
	if n.FillColor != "" {
		dn.Attr("fillcolor", n.FillColor)
	}
	if n.Style != "" {
		dn.Attr("style", n.Style)
	}
	if n.FontSize > 0 {
		dn.Attr("fontsize", strconv.Itoa(n.FontSize))
	}
	return dn
}

// WriteDOT writes the graph in DOT format to path.
func WriteDOT(ctx context.Context, g *graph.Graph, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Writing DOT file.", "path", path)

	content := ToDOT(ctx, g).String()
	err := writeAtomically(path, func(w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write DOT file %s: %w", path, err)
	}

	logger.Info("Wrote DOT file.", "path", path)
	return nil
}
