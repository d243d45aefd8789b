package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

func TestContainsCmd_ArgsValidation(t *testing.T) {
	err := containsCmd.Args(containsCmd, []string{"only-root"})
	require.Error(t, err)
	assert.Equal(t, dirtree.ExitUsageError, dirtree.ExitCodeForError(err))
}

func TestContainsCmd(t *testing.T) {
	tests := []struct {
		name      string
		path      func(root string) string
		contained bool
	}{
		{"top-level file", func(root string) string { return filepath.Join(root, "a.txt") }, true},
		{"nested file", func(root string) string { return filepath.Join(root, "sub", "deep", "d.go") }, true},
		{"directory", func(root string) string { return filepath.Join(root, "sub") }, false},
		{"missing file", func(root string) string { return filepath.Join(root, "nope.txt") }, false},
		{"outside the tree", func(string) string { return filepath.Join(t.TempDir(), "a.txt") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			root := writeProject(t)

			out, err := run(t, containsCmd, root, tt.path(root))
			if tt.contained {
				require.NoError(t, err)
				assert.Equal(t, "true\n", out)
				return
			}
			require.Error(t, err)
			assert.Equal(t, "false\n", out)
			assert.Equal(t, dirtree.ExitNotContained, dirtree.ExitCodeForError(err))
		})
	}
}

func TestContainsCmd_IgnoresPatterns(t *testing.T) {
	resetFlags(t)
	root := writeProject(t)
	containsFlags.exclude = []string{"**/*.txt"}

	out, err := run(t, containsCmd, root, filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}
