package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/b26c/internal/config"
	"github.com/vk/b26c/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// newEvalContext exposes the source file to project expressions as `source`.
func newEvalContext(src config.Source) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"source": cty.ObjectVal(map[string]cty.Value{
				"path": cty.StringVal(src.Path),
				"dir":  cty.StringVal(src.Dir),
				"stem": cty.StringVal(src.Stem),
			}),
		},
	}
}

// evalString evaluates expr and converts the result to a Go string. A null
// result, which is what an omitted optional attribute evaluates to, yields "".
func evalString(ctx context.Context, name string, expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	logger := ctxlog.FromContext(ctx)

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate %q: %w", name, diags)
	}
	if val.IsNull() {
		logger.Debug("Attribute not set.", "attribute", name)
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value of %q must be known", name)
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %q from %s to string: %w", name, val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.String) {
		logger.Debug("Implicitly converted value type.",
			"attribute", name,
			"from", val.Type().FriendlyName(),
			"to", cty.String.FriendlyName(),
		)
	}
	return converted.AsString(), nil
}
