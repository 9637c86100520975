package config

import "context"

// Loader is the interface for a format-specific project file loader.
type Loader interface {
	// Load reads the project file at path and evaluates it for the given
	// source file.
	Load(ctx context.Context, path string, src Source) (*Project, error)
}
