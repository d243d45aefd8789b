package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// resetFlags restores every command's flag values to their defaults.
// Addresses stay the same, so cobra's bindings remain valid.
func resetFlags(t *testing.T) {
	t.Helper()

	rootFlags.verbose = false
	rootFlags.logFormat = logFormatConsole

	lsFlags.tree = newTreeFlags()
	lsFlags.filesOnly, lsFlags.dirsOnly, lsFlags.limit, lsFlags.json = false, false, 0, false

	hashFlags.tree = newTreeFlags()
	hashFlags.algorithm, hashFlags.normalized, hashFlags.json, hashFlags.metrics = "", false, false, false

	copyFlags.tree = newTreeFlags()
	copyFlags.dryRun = false

	containsFlags = newTreeFlags()
	statsFlags = newTreeFlags()

	t.Setenv(dirtree.EnvInclude, "")
	t.Setenv(dirtree.EnvExclude, "")
	t.Setenv("NO_COLOR", "1")
}

// writeProject creates:
//
//	a.txt
//	b.go
//	sub/c.txt
//	sub/deep/d.go
//	vendor/v.go
func writeProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a.txt":         "alpha",
		"b.go":          "package b\n",
		"sub/c.txt":     "gamma",
		"sub/deep/d.go": "package deep\n",
		"vendor/v.go":   "package v\n",
	}
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

// run invokes a command's RunE with its output captured.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })

	err := cmd.RunE(cmd, args)
	return buf.String(), err
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
