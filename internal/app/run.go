package app

import (
	"context"
	"fmt"

	"github.com/vk/netgraph/internal/builder"
	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/export"
	"github.com/vk/netgraph/internal/render"
)

// Run converts the configured model: load, build the pruned graph, write the
// DOT (and JSON) files, then render the image unless rendering is disabled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	m, err := a.loader.Load(ctx, a.config.InputPath)
	if err != nil {
		return err
	}
	a.logger.Debug("Model loaded.", "species", len(m.Species), "reactions", len(m.Reactions))

	g, err := builder.Build(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to build network graph: %w", err)
	}

	if err := export.WriteDOT(ctx, g, a.config.GVFile); err != nil {
		return err
	}
	if a.config.JSONPath != "" {
		if err := export.WriteJSON(ctx, g, a.config.JSONPath); err != nil {
			return err
		}
	}

	if a.config.NoRender {
		a.logger.Info("Rendering disabled, skipping layout program.")
		return nil
	}

	out, err := render.Run(ctx, render.Options{
		Program: a.config.Program,
		GVFile:  a.config.GVFile,
		Output:  a.config.OutputPath,
		Extra:   a.config.Extra,
	})
	if err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	a.logger.Info("Wrote image.", "path", out)
	return nil
}
