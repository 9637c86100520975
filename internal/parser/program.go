package parser

import "github.com/vk/b26c/internal/bast"

// ExtractEntities returns an entity for every non-empty line inside a program
// block, in source order. `#start` opens a block and `#end` closes it; the
// marker lines themselves are never entities. Blocks may repeat, and a block
// left open runs to the end of the file.
func ExtractEntities(lines []string) []bast.Entity {
	entities := []bast.Entity{}
	inside := false
	for _, line := range lines {
		switch {
		case line == bast.StartMarker:
			inside = true
		case line == bast.EndMarker:
			inside = false
		case inside && line != "":
			entities = append(entities, ParseEntityLine(line))
		}
	}
	return entities
}
