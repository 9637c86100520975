package bast

// Source notation markers.
const (
	StartMarker  = "#start"
	EndMarker    = "#end"
	ImportPrefix = "#import "
	ArgsMarker   = "??"
)

// NotFound is the line number reported for a marker that never appears.
const NotFound = -1

// Fixed tags emitted with every set of references.
const (
	BootstrapVersion = "b26"
	RequiredCompiler = "b26c"
	ASTFormat        = "b26bast"
)

// Entity is one parsed instruction line from inside a program block.
type Entity struct {
	Command string
	Args    []string
}

// HasArgs reports whether the entity carries at least one argument.
func (e Entity) HasArgs() bool {
	return len(e.Args) > 0
}

// BAST is the aggregate result of parsing one source file.
type BAST struct {
	Imports    []string
	Entities   []Entity
	References []string
	Details    []string
	Raw        []string
}

// New returns an empty BAST that retains raw as its source lines.
func New(raw []string) *BAST {
	return &BAST{
		Imports:  []string{},
		Entities: []Entity{},
		Raw:      raw,
	}
}
