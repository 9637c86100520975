package app

import (
	"context"

	"github.com/vk/b26c/internal/ctxlog"
)

// Run compiles the configured source file. A failed compile is returned as
// the *compiler.Error it produced.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx, _ = ctxlog.WithCompileID(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	b, err := a.compiler.Compile(ctx, a.config.SourcePath, a.config.OutputBase)
	if err != nil {
		logger.Error("Compile failed.", "source", a.config.SourcePath, "error", err)
		return err
	}

	logger.Info("🏁 Compile finished.", "entities", len(b.Entities), "imports", len(b.Imports))
	return nil
}
