// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Entry metadata providers (OS, in-memory, io/fs, afero, retrying)
//   - scanner: Visitor collecting per-entry metadata records
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/dirtree/internal/files/filesystem"
//	    "github.com/vvka-141/dirtree/internal/files/scanner"
//	    "github.com/vvka-141/dirtree/internal/filetree"
//	)
//
//	tree, err := filetree.NewDirectoryTreeWithFS(filesystem.NewOSFileSystem(), logger, "./src", nil)
//	collector := scanner.NewCollector(scanner.Options{FilesOnly: true})
//	err = tree.Visit(collector)
//	records := collector.Records()
package files
