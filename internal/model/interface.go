package model

import (
	"context"
	"fmt"
)

// Loader is the interface for a format-specific model loader.
type Loader interface {
	// Load reads the model found at the given paths and translates it into
	// the format-agnostic Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// LoadError reports a malformed or unreadable model input. It is always fatal.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface for LoadError.
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load model %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}
