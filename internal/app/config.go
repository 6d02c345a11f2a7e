package app

import (
	"errors"
	"fmt"

	"github.com/vk/netgraph/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // model file or directory
	GVFile    string // DOT output, `<input>.gv` if empty
	// OutputPath is the rendered image, `<gvfile>.png` if empty.
	OutputPath string
	JSONPath   string // optional JSON export

	Program  string
	Extra    []string
	NoRender bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in derived defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	if cfg.GVFile == "" {
		cfg.GVFile = cfg.InputPath + ".gv"
	}
	if cfg.GVFile == cfg.InputPath {
		return nil, fmt.Errorf("GVFile must differ from the input path %s", cfg.InputPath)
	}
	if cfg.Program == "" {
		cfg.Program = render.DefaultProgram
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
