package source

import (
	"fmt"
	"io"
	"strings"
)

// SplitLines splits text on '\n' into its lines. Empty lines are preserved and
// nothing is trimmed, so a '\r' from a CRLF file stays on its line. A final
// '\n' terminates the last line instead of starting a new, empty one.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Read consumes r in full and returns its lines.
func Read(r io.Reader) ([]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return SplitLines(string(content)), nil
}
