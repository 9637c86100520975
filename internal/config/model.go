package config

import (
	"path/filepath"
	"strings"
)

// DefaultFileName is the project file searched for from a source file's
// directory upward.
const DefaultFileName = "b26c.hcl"

// Project is the unified, format-agnostic representation of a project file.
// Empty fields were not set by the file.
type Project struct {
	// Path is the file the project was loaded from.
	Path string

	OutputBase string
	LogLevel   string
	LogFormat  string
}

// Source describes the .btsp file being compiled. Project files may refer to
// these values when computing settings.
type Source struct {
	Path string // as given on the command line
	Dir  string
	Stem string // base name without extension
}

// NewSource derives a Source from a source file path.
func NewSource(path string) Source {
	base := filepath.Base(path)
	return Source{
		Path: path,
		Dir:  filepath.Dir(path),
		Stem: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}
