package hcl

import "github.com/hashicorp/hcl/v2"

// projectFile is the top-level structure of a project file for decoding.
type projectFile struct {
	Output  hcl.Expression `hcl:"output,optional"`
	Logging *loggingBlock  `hcl:"logging,block"`
}

// loggingBlock represents the optional `logging` block.
type loggingBlock struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}
