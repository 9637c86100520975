package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/b26c/internal/app"
	"github.com/vk/b26c/internal/cli"
	"github.com/vk/b26c/internal/compiler"
	"github.com/vk/b26c/internal/hcl"
)

// main is the entrypoint for the b26c compiler.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	err := run(os.Stdout, os.Stderr, os.Args[1:])
	os.Exit(report(os.Stdout, err))
}

// run encapsulates the main application logic for easier testing and error
// handling. Diagnostics are left to report; logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	b26c, err := app.NewApp(logW, appConfig, hcl.NewLoader())
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	return b26c.Run(context.Background())
}

// report prints the diagnostic for err to w and returns the process exit code.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(w, exitErr.Message)
		return exitErr.Code
	}

	var compileErr *compiler.Error
	if errors.As(err, &compileErr) {
		fmt.Fprintln(w, compileErr.Diagnostic())
		return compileErr.ExitCode()
	}

	fmt.Fprintf(w, "b26c=1\nerror: %v\n", err)
	return 1
}
