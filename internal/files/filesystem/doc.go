// Package filesystem provides the metadata providers the traversal engine reads from.
//
// A FileSystemProvider answers four questions about a path: what it is (Stat),
// what it contains (ReadDir), what its bytes are (ReadFile) and where it really
// lives (Canonicalize). Everything else the engine needs is derived from these.
//
// Implementations:
//   - OSFileSystem: production implementation using the OS filesystem
//   - MemoryFileSystem: in-memory implementation for testing, with failure injection
//   - IOFileSystem: any io/fs.FS, including embed.FS and testing/fstest.MapFS
//   - AferoFileSystem: any afero.Fs
//   - RetryingFileSystem: decorator retrying transient failures of another provider
package filesystem
