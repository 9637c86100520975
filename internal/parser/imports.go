package parser

import (
	"strings"

	"github.com/vk/b26c/internal/bast"
)

// CollectImports returns the identifiers of all `#import ` lines in order of
// first appearance. Identifiers are compared and kept exactly as written.
func CollectImports(lines []string) []string {
	imports := []string{}
	seen := make(map[string]struct{})
	for _, line := range lines {
		id, ok := strings.CutPrefix(line, bast.ImportPrefix)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		imports = append(imports, id)
	}
	return imports
}
