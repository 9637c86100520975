package debugfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/b26c/internal/bast"
)

// Extension is appended to the output base name.
const Extension = ".btspdebug"

// Section headers, in output order.
const (
	HeaderDetails    = ";;details"
	HeaderRaw        = ";;raw"
	HeaderImports    = ";;imports"
	HeaderEntities   = ";;entities"
	HeaderReferences = ";;references"
)

// FormatEntity renders an entity as a single debug line without the newline:
// `cmd;` or `cmd ?? (a, b);`.
func FormatEntity(e bast.Entity) string {
	if !e.HasArgs() {
		return e.Command + ";"
	}
	return e.Command + " ?? (" + strings.Join(e.Args, ", ") + ");"
}

// Write renders b to w.
func Write(w io.Writer, b *bast.BAST) error {
	bw := bufio.NewWriter(w)

	entities := make([]string, 0, len(b.Entities))
	for _, e := range b.Entities {
		entities = append(entities, FormatEntity(e))
	}

	sections := []struct {
		header string
		lines  []string
	}{
		{HeaderDetails, b.Details},
		{HeaderRaw, b.Raw},
		{HeaderImports, b.Imports},
		{HeaderEntities, entities},
		{HeaderReferences, b.References},
	}
	for _, s := range sections {
		if err := writeSection(bw, s.header, s.lines); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush debug output: %w", err)
	}
	return nil
}

func writeSection(w *bufio.Writer, header string, lines []string) error {
	if _, err := w.WriteString(header + "\n"); err != nil {
		return fmt.Errorf("failed to write section %s: %w", header, err)
	}
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("failed to write section %s: %w", header, err)
		}
	}
	return nil
}

// FileName returns the debug file name for an output base name.
func FileName(base string) string {
	return base + Extension
}

// WriteFile creates (or truncates) FileName(base) and writes b into it. It
// returns the path written. On error the file may be left partially written.
func WriteFile(base string, b *bast.BAST) (path string, err error) {
	path = FileName(base)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create debug file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close debug file: %w", cerr)
		}
	}()

	if err := Write(f, b); err != nil {
		return "", err
	}
	return path, nil
}
