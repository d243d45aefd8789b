// Package walker implements the depth-first traversal engine behind a
// directory tree.
//
// A walk lists a directory through a filesystem.FileSystemProvider, evaluates
// a dirtree.PathSpec for every child and dispatches the accepted ones to a
// dirtree.FileVisitor. Within one directory the accepted files are dispatched
// first, in provider order, followed by the subdirectories; each subdirectory is
// dispatched before its children (prefix order) or after them (postfix order).
//
// Directories rejected by the path spec are still descended into, so their accepted
// descendants are visited. With pruning enabled, a directory is skipped entirely
// when the path spec implements dirtree.SubtreeExcluder and reports the whole subtree
// as excluded.
//
// A walk stops early, without an error, once StopVisiting is called on any
// dispatched entry. Everything else that ends a walk early is an error:
// a visitor error (returned unchanged), a visitor panic, or a provider failure
// (matching dirtree.ErrFilesystem).
package walker
