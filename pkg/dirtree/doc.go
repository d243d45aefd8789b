// Package dirtree defines the public contracts of the dirtree traversal engine.
//
// The types here describe what a caller sees while a directory tree is being
// walked: the RelativePath of each entry, the FileVisitDetails handed to a
// FileVisitor, the PathSpec predicate deciding which entries are dispatched,
// and the Logger the engine reports through.
//
// Implementations live under internal/:
//   - internal/filetree: DirectoryTree, the entry point owning root, patterns and ordering
//   - internal/walker: the depth-first traversal engine
//   - internal/patterns: include/exclude PatternSet compiled into a PathSpec
//   - internal/files/filesystem: metadata providers (OS, in-memory, io/fs, afero)
package dirtree
