package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/b26c/internal/config"
	"github.com/vk/b26c/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL project loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses and evaluates the project file at path.
func (l *Loader) Load(ctx context.Context, path string, src config.Source) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx := newEvalContext(src)

	var root projectFile
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	project, err := l.translateProject(ctx, path, &root, evalCtx)
	if err != nil {
		return nil, fmt.Errorf("invalid project file %s: %w", path, err)
	}

	logger.Debug("HCL loading complete.",
		"output", project.OutputBase,
		"log_level", project.LogLevel,
		"log_format", project.LogFormat,
	)
	return project, nil
}
