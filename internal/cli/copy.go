package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

var copyFlags struct {
	tree   treeFlags
	dryRun bool
}

var copyCmd = &cobra.Command{
	Use:   "copy <root> <dest>",
	Short: "Copy the accepted entries of a tree to a destination",
	Long: `Copy every entry accepted by the configured patterns to <dest>, keeping
relative paths and permission bits. Accepted directories are created even when
empty. The destination must not be located inside the tree.

Examples:
  dirtree copy ./site ./dist --exclude '**/*.md'
  dirtree copy . /tmp/snapshot --include 'src/**' --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyFlags.tree = newTreeFlags()
	addTreeFlags(copyCmd, &copyFlags.tree)
	copyCmd.Flags().BoolVar(&copyFlags.dryRun, "dry-run", false, "Print what would be copied without writing")
}

func runCopy(cmd *cobra.Command, args []string) error {
	logger, flush, err := newLogger()
	if err != nil {
		return err
	}
	defer flush()

	tree, _, err := buildTree(args[0], copyFlags.tree, logger)
	if err != nil {
		return err
	}

	dest, err := filepath.Abs(args[1])
	if err != nil {
		return fmt.Errorf("failed to resolve destination %s: %w", args[1], err)
	}
	dest = resolveExisting(dest)
	if isWithin(tree.Dir(), dest) {
		return fmt.Errorf("invalid argument %s: destination is inside %s", args[1], tree.Dir())
	}

	out := cmd.OutOrStdout()
	var files, dirs int
	copyEntry := func(details dirtree.FileVisitDetails) error {
		target := filepath.Join(dest, filepath.FromSlash(details.RelativePath().PathString()))
		if copyFlags.dryRun {
			fmt.Fprintf(out, "%s -> %s\n", details.Path(), target)
		} else if err := details.CopyTo(target); err != nil {
			return err
		}
		if details.IsDirectory() {
			dirs++
		} else {
			files++
		}
		logger.Verbose("Copied %s", details.RelativePath())
		return nil
	}

	if !copyFlags.dryRun {
		if err := os.MkdirAll(dest, 0755); err != nil {
			return fmt.Errorf("failed to create destination %s: %w", dest, err)
		}
	}
	if err := tree.Visit(dirtree.VisitorFuncs{Dir: copyEntry, File: copyEntry}); err != nil {
		return err
	}

	verb := "Copied"
	if copyFlags.dryRun {
		verb = "Would copy"
	}
	fmt.Fprintf(out, "%s %d files and %d directories to %s\n", verb, files, dirs, dest)
	return nil
}

// resolveExisting resolves symlinks in the longest existing prefix of p,
// so a destination that does not exist yet compares equal to canonical paths.
func resolveExisting(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	parent := filepath.Dir(p)
	if parent == p {
		return p
	}
	return filepath.Join(resolveExisting(parent), filepath.Base(p))
}

// isWithin reports whether p is dir or lies below it. Both must be absolute.
func isWithin(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
