package app

import (
	"errors"
	"fmt"

	"github.com/vk/b26c/internal/compiler"
	"github.com/vk/b26c/internal/config"
)

// Defaults for settings that neither the command line nor a project file set.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
// Empty fields are unset and get filled from the project file, then from the
// defaults.
type Config struct {
	SourcePath string // .btsp file to compile
	OutputBase string // debug file is written to OutputBase + ".btspdebug"
	ConfigPath string // explicit project file; empty means search upward from SourcePath

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.SourcePath == "" {
		return nil, errors.New("SourcePath is a required configuration field and cannot be empty")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the log settings against the values newLogger knows.
// Empty values are unset and allowed.
func (c *Config) validate() error {
	if _, ok := logLevels[c.LogLevel]; c.LogLevel != "" && !ok {
		return fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel)
	}
	if _, ok := logHandlers[c.LogFormat]; c.LogFormat != "" && !ok {
		return fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}
	return nil
}

// merge fills every unset field from the project file.
func (c *Config) merge(p *config.Project) {
	if p == nil {
		return
	}
	if c.OutputBase == "" {
		c.OutputBase = p.OutputBase
	}
	if c.LogLevel == "" {
		c.LogLevel = p.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = p.LogFormat
	}
}

func (c *Config) applyDefaults() {
	if c.OutputBase == "" {
		c.OutputBase = compiler.DefaultOutputBase
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}
