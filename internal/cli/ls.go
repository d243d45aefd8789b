package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtree/internal/files/scanner"
	"github.com/vvka-141/dirtree/internal/tui"
)

var lsFlags struct {
	tree      treeFlags
	filesOnly bool
	dirsOnly  bool
	limit     int
	json      bool
}

var lsCmd = &cobra.Command{
	Use:   "ls <root>",
	Short: "List the entries of a tree in traversal order",
	Long: `List every entry accepted by the configured patterns, depth-first.

Within a directory, files are reported before subdirectories, each in name order.
Directories are reported before their contents unless --postfix is given.

Examples:
  dirtree ls .
  dirtree ls ./src --include '**/*.go' --exclude 'vendor/**' --prune
  dirtree ls . --files-only --limit 20 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsFlags.tree = newTreeFlags()
	addTreeFlags(lsCmd, &lsFlags.tree)
	lsCmd.Flags().BoolVar(&lsFlags.filesOnly, "files-only", false, "Report files only")
	lsCmd.Flags().BoolVar(&lsFlags.dirsOnly, "dirs-only", false, "Report directories only")
	lsCmd.Flags().IntVar(&lsFlags.limit, "limit", 0, "Stop after this many entries (0: no limit)")
	lsCmd.Flags().BoolVar(&lsFlags.json, "json", false, "Write entries as a JSON array")
}

func runLs(cmd *cobra.Command, args []string) error {
	if lsFlags.filesOnly && lsFlags.dirsOnly {
		return fmt.Errorf("invalid argument: --files-only and --dirs-only cannot be combined")
	}
	if lsFlags.limit < 0 {
		return fmt.Errorf("invalid argument %d for --limit: must not be negative", lsFlags.limit)
	}

	logger, flush, err := newLogger()
	if err != nil {
		return err
	}
	defer flush()

	tree, _, err := buildTree(args[0], lsFlags.tree, logger)
	if err != nil {
		return err
	}

	collector := scanner.NewCollector(scanner.Options{
		FilesOnly: lsFlags.filesOnly,
		DirsOnly:  lsFlags.dirsOnly,
		Limit:     lsFlags.limit,
	})
	if err := tree.Visit(collector); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if lsFlags.json {
		return writeRecordsJSON(out, collector.Records())
	}
	return writeRecords(out, collector.Records(), tui.PainterFor(out))
}

func writeRecords(w io.Writer, records []scanner.Record, painter tui.Painter) error {
	for _, r := range records {
		line := painter.Paint(tui.FileStyle, r.Path)
		if r.IsDir {
			line = painter.Paint(tui.DirStyle, r.Path)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeRecordsJSON(w io.Writer, records []scanner.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
