package parser

import "github.com/vk/b26c/internal/bast"

// Parse builds a BAST from lines. Details are left empty.
func Parse(lines []string) *bast.BAST {
	b := bast.New(lines)
	b.Imports = CollectImports(lines)
	b.References = BuildReferences(lines)
	b.Entities = ExtractEntities(lines)
	return b
}
