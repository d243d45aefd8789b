package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtree/internal/logging"
	"github.com/vvka-141/dirtree/pkg/dirtree"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

var rootFlags struct {
	verbose   bool
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "dirtree",
	Short: "Pattern-filtered directory traversal",
	Long: `dirtree walks a directory tree depth-first and reports the entries accepted
by include and exclude globs, in a deterministic order.

Patterns come from dirtree.yaml in the tree root, the DIRTREE_INCLUDE and
DIRTREE_EXCLUDE environment variables (comma-separated, also read from .env),
and --include/--exclude flags, in that order.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Filesystem failure during a walk
  12 - Invalid include or exclude pattern
  13 - Path is not a file inside the tree`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFormat, "log-format", logFormatConsole, "Log output format: console or json")
}

// newLogger builds the logger selected by the global flags.
// The returned function flushes buffered output and must be called before exit.
func newLogger() (dirtree.Logger, func(), error) {
	switch rootFlags.logFormat {
	case "", logFormatConsole:
		return logging.NewConsoleLogger(rootFlags.verbose), func() {}, nil
	case logFormatJSON:
		zl := logging.NewJSONLogger(rootFlags.verbose)
		return zl, func() { _ = zl.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("invalid argument %q for --log-format: expected %s or %s",
			rootFlags.logFormat, logFormatConsole, logFormatJSON)
	}
}
