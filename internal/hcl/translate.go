package hcl

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/b26c/internal/config"
)

// translateProject converts the decoded HCL schema into the agnostic model.
func (l *Loader) translateProject(ctx context.Context, path string, root *projectFile, evalCtx *hcl.EvalContext) (*config.Project, error) {
	p := &config.Project{Path: path}

	if root.Output != nil {
		out, err := evalString(ctx, "output", root.Output, evalCtx)
		if err != nil {
			return nil, err
		}
		p.OutputBase = out
	}

	// Normalized like the --log-level and --log-format flags.
	if root.Logging != nil {
		p.LogLevel = strings.ToLower(root.Logging.Level)
		p.LogFormat = strings.ToLower(root.Logging.Format)
	}
	return p, nil
}
