package compiler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vk/b26c/internal/bast"
	"github.com/vk/b26c/internal/ctxlog"
	"github.com/vk/b26c/internal/debugfile"
	"github.com/vk/b26c/internal/parser"
	"github.com/vk/b26c/internal/source"
)

// DefaultOutputBase is the debug file base name used when none is configured.
const DefaultOutputBase = "main"

// Compiler turns one source file into one debug file per Compile call. It
// holds no state between calls.
type Compiler struct {
	now func() time.Time
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithClock replaces the clock used for the compile-start timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) {
		c.now = now
	}
}

// New creates a Compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile reads inputPath, assembles its BAST and writes it to
// `<outputBase>.btspdebug`. Every failure is returned as an *Error.
func (c *Compiler) Compile(ctx context.Context, inputPath, outputBase string) (*bast.BAST, error) {
	logger := ctxlog.FromContext(ctx)
	if outputBase == "" {
		outputBase = DefaultOutputBase
	}

	f, err := os.Open(inputPath)
	if err != nil {
		logger.Debug("Input file could not be opened.", "path", inputPath, "error", err)
		return nil, openError(inputPath, err)
	}
	defer f.Close()

	start := c.now()
	logger.Debug("Compile started.", "path", inputPath, "compile_start", start.Unix())

	lines, err := source.Read(f)
	if err != nil {
		return nil, processingError(inputPath, err)
	}
	logger.Debug("Source read.", "lines", len(lines))

	b := Assemble(inputPath, lines, start)
	logger.Debug("BAST assembled.",
		"imports", len(b.Imports),
		"entities", len(b.Entities),
		"references", b.References[:3],
	)

	out, err := debugfile.WriteFile(outputBase, b)
	if err != nil {
		return nil, processingError(inputPath, err)
	}
	logger.Info("Debug file written.", "path", out, "entities", len(b.Entities))

	return b, nil
}

// Assemble builds the complete BAST for lines read from inputPath, with start
// as the compile-start time. It performs no I/O.
func Assemble(inputPath string, lines []string, start time.Time) *bast.BAST {
	b := parser.Parse(lines)
	b.Details = []string{
		fmt.Sprintf("projectname=%s", inputPath),
		fmt.Sprintf("compile-start:%d", start.Unix()),
		fmt.Sprintf("num-entities:%d", len(b.Entities)),
	}
	return b
}
