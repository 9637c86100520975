package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/vk/b26c/internal/compiler"
	"github.com/vk/b26c/internal/config"
	"github.com/vk/b26c/internal/ctxlog"
	"github.com/vk/b26c/internal/fsutil"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	logger   *slog.Logger
	config   Config
	compiler *compiler.Compiler
}

// NewApp is the constructor for the main application. It resolves the
// project file, settles the final configuration and builds an isolated
// logger writing to logW.
func NewApp(logW io.Writer, appConfig *Config, loader config.Loader, opts ...compiler.Option) (*App, error) {
	cfg := *appConfig

	// The project file can change the log settings, so it is loaded with a
	// logger built from the command line values alone.
	bootLogger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), bootLogger)

	project, err := loadProject(ctx, &cfg, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load project file: %w", err)
	}
	cfg.merge(project)
	if err := cfg.validate(); err != nil {
		if project != nil {
			return nil, fmt.Errorf("invalid project file %s: %w", project.Path, err)
		}
		return nil, err
	}
	cfg.applyDefaults()

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Configuration resolved.",
		"source", cfg.SourcePath,
		"output_base", cfg.OutputBase,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
	)

	return &App{
		logger:   logger,
		config:   cfg,
		compiler: compiler.New(opts...),
	}, nil
}

// loadProject returns the project file settings for cfg, or nil when there
// is no project file. Without an explicit ConfigPath the nearest b26c.hcl at
// or above the source directory is used.
func loadProject(ctx context.Context, cfg *Config, loader config.Loader) (*config.Project, error) {
	logger := ctxlog.FromContext(ctx)

	path := cfg.ConfigPath
	if path == "" {
		found, ok, err := fsutil.FindFileUpward(filepath.Dir(cfg.SourcePath), config.DefaultFileName)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Debug("No project file found.", "from", filepath.Dir(cfg.SourcePath))
			return nil, nil
		}
		path = found
	}

	logger.Debug("Loading project file.", "path", path)
	return loader.Load(ctx, path, config.NewSource(cfg.SourcePath))
}
