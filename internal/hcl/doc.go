// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses `b26c.hcl` project files, evaluates their expressions
// against the source being compiled and translates the result into the
// format-agnostic config.Project.
//
// A project file looks like:
//
//	output = "build/${source.stem}"
//
//	logging {
//	  level  = "debug"
//	  format = "json"
//	}
//
// The `source` object exposes `path`, `dir` and `stem` of the .btsp file.
package hcl
