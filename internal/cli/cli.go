package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/b26c/internal/app"
	"github.com/vk/b26c/internal/fsutil"
)

// SourceExtension is the required suffix of a source path.
const SourceExtension = ".btsp"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `
b26c - bootstrap compiler front end for .btsp sources.

Usage:
  b26c build [options] SOURCE_PATH

Arguments:
  SOURCE_PATH
    Path to an existing .btsp file. The BAST debug dump is written to
    <out>.btspdebug in the current directory unless --out says otherwise.

Options:
`

// Parse processes command-line arguments, without the program name. It
// returns a populated Config, a boolean indicating if the program should exit
// cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if len(args) < 1 {
		return nil, false, &ExitError{
			Code:    1,
			Message: fmt.Sprintf("b26c expected 2 or more arguments, instead got %d.", len(args)+1),
		}
	}

	switch args[0] {
	case "build":
		return parseBuild(args[1:], output)
	case "-h", "-help", "--help", "help":
		flagSet, _ := newBuildFlags(output)
		flagSet.Usage()
		return nil, true, nil
	default:
		flagSet, _ := newBuildFlags(output)
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", args[0])}
	}
}

// buildFlags holds the values bound to the build flag set.
type buildFlags struct {
	out       string
	config    string
	logLevel  string
	logFormat string
}

func newBuildFlags(output io.Writer) (*flag.FlagSet, *buildFlags) {
	flagSet := flag.NewFlagSet("build", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	f := &buildFlags{}
	flagSet.StringVar(&f.out, "out", "", "Output base name for the debug file. (default \"main\")")
	flagSet.StringVar(&f.config, "config", "", "Project file. Defaults to the nearest b26c.hcl in the source directory or above, if any.")
	flagSet.StringVar(&f.logLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"warn\")")
	flagSet.StringVar(&f.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")
	return flagSet, f
}

func parseBuild(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet, f := newBuildFlags(output)
	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.", "positional", flagSet.NArg())

	path := flagSet.Arg(0)
	propertiesValid := flagSet.NArg() == 1
	pathValid := fsutil.Exists(path)
	suffixValid := fsutil.HasExtension(path, SourceExtension)

	if !propertiesValid || !pathValid || !suffixValid {
		slog.Debug("Build arguments rejected.", "path", path)
		return nil, false, &ExitError{
			Code:    1,
			Message: buildDiagnostic(path, propertiesValid, pathValid, suffixValid),
		}
	}

	config, err := app.NewConfig(app.Config{
		SourcePath: path,
		OutputBase: f.out,
		ConfigPath: f.config,
		LogLevel:   strings.ToLower(f.logLevel),
		LogFormat:  strings.ToLower(f.logFormat),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// buildDiagnostic renders the three build argument checks.
func buildDiagnostic(path string, propertiesValid, pathValid, suffixValid bool) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	var sb strings.Builder
	sb.WriteString("b26c=1:\n")
	fmt.Fprintf(&sb, "build-properties-valid: %s\n", flag01(propertiesValid))
	fmt.Fprintf(&sb, "build-path-valid: %s (\"%s\")\n", flag01(pathValid), abs)
	fmt.Fprintf(&sb, "build-path-suffix-valid: %s", flag01(suffixValid))
	return sb.String()
}

func flag01(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
