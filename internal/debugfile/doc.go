// Package debugfile renders a BAST into the `.btspdebug` text format.
//
// The file has five sections in a fixed order, each introduced by a header
// line and followed by one entry per line:
//
//	;;details
//	;;raw
//	;;imports
//	;;entities
//	;;references
//
// Tools read this format line by line, so the output must stay byte-for-byte
// stable.
package debugfile
