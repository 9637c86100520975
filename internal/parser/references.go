package parser

import (
	"fmt"

	"github.com/vk/b26c/internal/bast"
)

// Markers holds the 1-based line numbers of the last `#start` and the last
// `#end` line, or bast.NotFound.
type Markers struct {
	Start int
	End   int
}

// FindMarkers scans lines for the program block markers. Later occurrences
// replace earlier ones.
func FindMarkers(lines []string) Markers {
	m := Markers{Start: bast.NotFound, End: bast.NotFound}
	for i, line := range lines {
		switch line {
		case bast.StartMarker:
			m.Start = i + 1
		case bast.EndMarker:
			m.End = i + 1
		}
	}
	return m
}

// References renders the markers and the fixed bootstrap tags as the six
// reference entries of a BAST. endcode mirrors end.
func (m Markers) References() []string {
	return []string{
		fmt.Sprintf("start:%d;", m.Start),
		fmt.Sprintf("end:%d;", m.End),
		fmt.Sprintf("endcode:%d;", m.End),
		fmt.Sprintf("bootstrapver:%s;", bast.BootstrapVersion),
		fmt.Sprintf("bootstraprqcomp:%s;", bast.RequiredCompiler),
		fmt.Sprintf("bootstrapast:%s;", bast.ASTFormat),
	}
}

// BuildReferences is FindMarkers followed by References.
func BuildReferences(lines []string) []string {
	return FindMarkers(lines).References()
}
