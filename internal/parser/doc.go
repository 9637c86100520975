// Package parser extracts the structural pieces of a BAST from the lines of a
// .btsp source file.
//
// Each collector works on the same immutable line slice and is independent of
// the others:
//
//   - CollectImports gathers `#import <id>` declarations, first occurrence wins.
//   - ExtractEntities parses every non-empty line between `#start` and `#end`.
//   - BuildReferences reports where the markers were found plus the fixed
//     bootstrap version tags.
//
// Parse runs all three and returns a BAST without details; the compiler adds
// those because they depend on the compile call itself.
package parser
