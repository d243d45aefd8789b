package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vvka-141/dirtree/internal/files/filesystem"
	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// visitDetails is an immutable snapshot of one dispatched entry.
// Metadata comes from the listing that produced the entry, so no accessor
// touches the filesystem apart from ReadContent and CopyTo.
type visitDetails struct {
	path string
	rel  dirtree.RelativePath
	info filesystem.FileInfo
	fs   filesystem.FileSystemProvider
	stop *StopFlag
}

func newVisitDetails(fsp filesystem.FileSystemProvider, path string, rel dirtree.RelativePath, info filesystem.FileInfo, stop *StopFlag) *visitDetails {
	return &visitDetails{path: path, rel: rel, info: info, fs: fsp, stop: stop}
}

func (d *visitDetails) RelativePath() dirtree.RelativePath { return d.rel }
func (d *visitDetails) Path() string                       { return d.path }
func (d *visitDetails) Name() string                       { return d.rel.Name() }
func (d *visitDetails) IsDirectory() bool                  { return d.info.IsDir() }
func (d *visitDetails) Size() int64                        { return d.info.Size() }
func (d *visitDetails) Mode() fs.FileMode                  { return d.info.Mode() }
func (d *visitDetails) LastModified() time.Time            { return d.info.ModTime() }
func (d *visitDetails) StopVisiting()                      { d.stop.Stop() }

func (d *visitDetails) ReadContent() ([]byte, error) {
	if d.IsDirectory() {
		return nil, fmt.Errorf("cannot read content of directory %s: %w", d.rel, dirtree.ErrInvalidOperation)
	}
	return d.fs.ReadFile(d.path)
}

func (d *visitDetails) CopyTo(target string) error {
	if d.IsDirectory() {
		if err := os.MkdirAll(target, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", target, err)
		}
		return nil
	}

	content, err := d.ReadContent()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", d.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, content, d.Mode().Perm()|0200); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	return nil
}

func (d *visitDetails) String() string {
	if d.IsDirectory() {
		return fmt.Sprintf("directory '%s'", d.rel)
	}
	return fmt.Sprintf("file '%s'", d.rel)
}

var _ dirtree.FileVisitDetails = (*visitDetails)(nil)
