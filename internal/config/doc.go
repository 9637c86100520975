// Package config defines the format-agnostic model of a b26c project file and
// the Loader interface that concrete formats implement.
//
// The `config.Project` is the only thing the application reads from a project
// file. The HCL implementation lives in the `hcl` package.
package config
