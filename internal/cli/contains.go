package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

var containsFlags = newTreeFlags()

var containsCmd = &cobra.Command{
	Use:   "contains <root> <path>",
	Short: "Report whether a path is a regular file inside a tree",
	Long: `Print true when <path> is a regular file physically located under <root>,
false otherwise. Include and exclude patterns are not consulted.

Exits with code 13 when the path is not contained.`,
	Args: cobra.ExactArgs(2),
	RunE: runContains,
}

func init() {
	rootCmd.AddCommand(containsCmd)
	addTreeFlags(containsCmd, &containsFlags)
}

func runContains(cmd *cobra.Command, args []string) error {
	logger, flush, err := newLogger()
	if err != nil {
		return err
	}
	defer flush()

	tree, _, err := buildTree(args[0], containsFlags, logger)
	if err != nil {
		return err
	}

	contained := tree.Contains(args[1])
	fmt.Fprintln(cmd.OutOrStdout(), contained)
	if !contained {
		return fmt.Errorf("%w: %s is not a file in %s", dirtree.ErrNotContained, args[1], tree.Dir())
	}
	return nil
}
