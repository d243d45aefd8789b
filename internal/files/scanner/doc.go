// Package scanner turns the entries dispatched by a directory walk into
// listing records.
//
// A Collector is a dirtree.FileVisitor. For every accepted entry it records:
//   - a "./"-prefixed slash path, name, parent directory and extension
//   - the nesting depth (0 for entries directly under the root)
//   - size, modification time and whether the entry is a directory
//
// Collectors are filesystem-agnostic: metadata comes from the visit details,
// so any filesystem.FileSystemProvider under the walk works.
package scanner
