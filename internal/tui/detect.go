package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorEnabled determines whether styled output should be written to w.
//
// Returns false if:
//   - DIRTREE_NO_COLOR=1 is set
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - w is not a terminal (pipes, files, buffers)
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("DIRTREE_NO_COLOR") == "1" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// PainterFor returns a painter for w, styled only on a color-capable terminal.
func PainterFor(w io.Writer) Painter {
	return NewPainter(ColorEnabled(w))
}
