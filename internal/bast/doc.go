// Package bast defines the Bootstrap AST (BAST), the intermediate
// representation produced from a single .btsp source file.
//
// A BAST is built once per compile call and discarded after it has been
// serialized. Nothing in it is shared between calls.
package bast
