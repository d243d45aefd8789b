// Package checksum hashes file content and builds tree manifests.
//
// Every Calculator produces two checksums:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after line endings are unified and a UTF-8
//     byte order mark is dropped, so a checkout on Windows and one on Linux
//     produce the same value
//
// ManifestBuilder is a visitor that records, for every dispatched file, a
// deterministic UUID derived from its relative path, its size and checksum,
// and folds the entries into a single tree digest.
//
// # Example Usage
//
//	calc, err := checksum.ForAlgorithm("xxhash")
//	builder := checksum.NewManifestBuilder(calc, checksum.WithNormalized())
//	err = tree.Visit(builder)
//	manifest := builder.Manifest()
//
// # Thread Safety
//
// Calculators are safe for concurrent use by multiple goroutines.
// A ManifestBuilder belongs to one walk at a time.
package checksum
