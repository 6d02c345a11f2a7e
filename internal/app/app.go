package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vk/netgraph/internal/hclmodel"
	"github.com/vk/netgraph/internal/model"
	"github.com/vk/netgraph/internal/sbml"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	logger *slog.Logger
	config *Config
	loader model.Loader
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger. A nil loader is replaced by the one matching the
// input path.
func NewApp(outW io.Writer, cfg *Config, loader model.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		var err error
		if loader, err = LoaderFor(cfg.InputPath); err != nil {
			return nil, err
		}
	}
	logger.Debug("Model loader selected.", "loader", fmt.Sprintf("%T", loader))

	return &App{
		logger: logger,
		config: cfg,
		loader: loader,
	}, nil
}

// LoaderFor picks the model loader for an input path: directories and .hcl
// files are HCL, .xml and .sbml files are SBML.
func LoaderFor(path string) (model.Loader, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return hclmodel.NewLoader(), nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == hclmodel.Extension:
		return hclmodel.NewLoader(), nil
	case slices.Contains(sbml.Extensions, ext):
		return sbml.NewLoader(), nil
	}
	return nil, &model.LoadError{Path: path, Err: fmt.Errorf("unsupported input format %q", ext)}
}
