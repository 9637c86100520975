// Package cli parses the b26c command line into an app.Config. It owns the
// argument checks of the `build` subcommand and the diagnostics printed when
// they fail; it never touches the source file's content.
package cli
