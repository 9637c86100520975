// Package compiler assembles a BAST from a .btsp file and writes its debug
// rendering. A compile either succeeds with the debug file written or fails
// with an *Error describing whether the input could not be opened or the
// processing after that failed.
package compiler
