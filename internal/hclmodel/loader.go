package hclmodel

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/netgraph/internal/ctxlog"
	"github.com/vk/netgraph/internal/fsutil"
	"github.com/vk/netgraph/internal/model"
)

// Extension is the file extension of HCL model files.
const Extension = ".hcl"

// Loader is the HCL implementation of the model.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found at the given paths and merges their
// blocks into one model. Directories are searched recursively and their files
// are read in lexical order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*model.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, Extension)
		if err != nil {
			return nil, &model.LoadError{Path: p, Err: err}
		}
		if len(found) == 0 {
			return nil, &model.LoadError{Path: p, Err: fmt.Errorf("no %s files found", Extension)}
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	m := &model.Model{}
	parser := hclparse.NewParser()
	for _, file := range files {
		if err := l.loadFile(ctx, parser, file, m); err != nil {
			return nil, &model.LoadError{Path: file, Err: err}
		}
	}

	logger.Debug("HCL loading complete.",
		"compartments", len(m.Compartments),
		"species", len(m.Species),
		"reactions", len(m.Reactions),
		"parameters", len(m.Parameters))
	return m, nil
}

// loadFile decodes a single file and appends its blocks to m.
func (l *Loader) loadFile(ctx context.Context, parser *hclparse.Parser, file string, m *model.Model) error {
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL: %w", diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %w", diags)
	}

	for _, c := range root.Compartments {
		m.Compartments = append(m.Compartments, &model.Compartment{ID: c.ID})
	}
	for _, p := range root.Parameters {
		param, err := translateParameter(ctx, p)
		if err != nil {
			return err
		}
		m.Parameters = append(m.Parameters, param)
	}
	for _, s := range root.Species {
		m.Species = append(m.Species, &model.Species{
			ID:          s.ID,
			Compartment: s.Compartment,
			Constant:    s.Constant,
			Name:        s.Name,
		})
	}
	for _, r := range root.Reactions {
		reaction, err := translateReaction(ctx, r)
		if err != nil {
			return err
		}
		m.Reactions = append(m.Reactions, reaction)
	}
	return nil
}
