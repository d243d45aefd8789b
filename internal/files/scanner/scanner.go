package scanner

import (
	"path"
	"strings"
	"time"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// Record describes one listed entry.
type Record struct {
	Path       string    `json:"path"`      // "./sub/b.txt"; directories end in "/"
	Name       string    `json:"name"`      // "b.txt"
	Directory  string    `json:"directory"` // "./sub/"
	Extension  string    `json:"extension,omitempty"`
	Depth      int       `json:"depth"`
	IsDir      bool      `json:"is_dir"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Options narrows what a Collector records.
type Options struct {
	FilesOnly bool
	DirsOnly  bool

	// Limit stops the walk once this many records were collected. Zero means no limit.
	Limit int
}

// Collector records the entries of a walk in dispatch order.
// A Collector belongs to one walk at a time.
type Collector struct {
	opts    Options
	records []Record
}

// NewCollector creates a Collector.
func NewCollector(opts Options) *Collector {
	return &Collector{opts: opts}
}

func (c *Collector) VisitDir(details dirtree.FileVisitDetails) error {
	if c.opts.FilesOnly {
		return nil
	}
	c.add(details)
	return nil
}

func (c *Collector) VisitFile(details dirtree.FileVisitDetails) error {
	if c.opts.DirsOnly {
		return nil
	}
	c.add(details)
	return nil
}

func (c *Collector) add(details dirtree.FileVisitDetails) {
	c.records = append(c.records, NewRecord(details))
	if c.opts.Limit > 0 && len(c.records) >= c.opts.Limit {
		details.StopVisiting()
	}
}

// Records returns the collected records.
func (c *Collector) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// NewRecord builds the record of a single entry.
func NewRecord(details dirtree.FileVisitDetails) Record {
	rel := details.RelativePath()
	unixPath := "./" + rel.PathString()

	// Don't use path.Dir as it removes the ./ prefix
	directory := unixPath[:strings.LastIndex(unixPath, "/")+1]

	r := Record{
		Path:       unixPath,
		Name:       details.Name(),
		Directory:  directory,
		Depth:      rel.Depth() - 1,
		IsDir:      details.IsDirectory(),
		SizeBytes:  details.Size(),
		ModifiedAt: details.LastModified(),
	}
	if r.IsDir {
		r.Path += "/"
		r.SizeBytes = 0
	} else {
		r.Extension = path.Ext(r.Name)
	}
	if r.Depth < 0 {
		r.Depth = 0
	}
	return r
}

var _ dirtree.FileVisitor = (*Collector)(nil)
