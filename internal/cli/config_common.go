package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/dirtree/internal/config"
	"github.com/vvka-141/dirtree/internal/files/filesystem"
	"github.com/vvka-141/dirtree/internal/filetree"
	"github.com/vvka-141/dirtree/internal/retry"
	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// treeFlags holds the flag values shared by every command that walks a tree.
type treeFlags struct {
	include    []string
	exclude    []string
	postfix    bool
	prune      bool
	configFile string
	retries    int // negative: keep the configured value
}

func newTreeFlags() treeFlags {
	return treeFlags{retries: -1}
}

// addTreeFlags registers the shared tree flags on cmd, bound to f.
func addTreeFlags(cmd *cobra.Command, f *treeFlags) {
	cmd.Flags().StringArrayVar(&f.include, "include", nil, "Include glob, relative to the root (repeatable)")
	cmd.Flags().StringArrayVar(&f.exclude, "exclude", nil, "Exclude glob, relative to the root (repeatable)")
	cmd.Flags().BoolVar(&f.postfix, "postfix", false, "Report directories after their contents")
	cmd.Flags().BoolVar(&f.prune, "prune", false, "Skip descending into directories excluded by a 'dir/**' glob")
	cmd.Flags().StringVar(&f.configFile, "config", "", "Path to a dirtree.yaml (default: <root>/dirtree.yaml)")
	cmd.Flags().IntVar(&f.retries, "retries", -1, "Extra attempts for transient filesystem errors (default: from config, else 0)")
}

// loadTreeConfig loads godotenv and the tree configuration, then applies the
// environment and flag values on top of it. Flags win.
//
// A missing dirtree.yaml in the root is not an error; a missing --config file is.
func loadTreeConfig(root string, f treeFlags) (*config.TreeConfig, error) {
	_ = godotenv.Load()

	cfg, err := readConfig(root, f.configFile)
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv(os.Getenv)
	cfg.Include = append(cfg.Include, f.include...)
	cfg.Exclude = append(cfg.Exclude, f.exclude...)
	if f.postfix {
		cfg.Postfix = true
	}
	if f.prune {
		cfg.Prune = true
	}
	if f.retries >= 0 {
		cfg.Retries = f.retries
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readConfig(root, explicit string) (*config.TreeConfig, error) {
	if explicit != "" {
		cfg, err := config.LoadFile(explicit)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: config file %s does not exist", dirtree.ErrInvalidConfig, explicit)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", explicit, err)
		}
		return cfg, nil
	}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return &config.TreeConfig{}, nil
	}

	cfg, err := config.Load(root)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return &config.TreeConfig{}, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", dirtree.ConfigFileName, err)
	}
	return cfg, nil
}

// newProvider returns the OS provider, wrapped in a retrying provider when
// cfg asks for retries.
func newProvider(cfg *config.TreeConfig, logger dirtree.Logger) filesystem.FileSystemProvider {
	osfs := filesystem.NewOSFileSystem()
	if cfg.Retries <= 0 {
		return osfs
	}

	executor := retry.NewExecutor(
		retry.NewFilesystemErrorClassifier(),
		retry.NewExponentialBackoff(cfg.Retries),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Verbose("Retrying filesystem call (attempt %d) in %v: %v", attempt+1, delay, err)
	})
	return filesystem.NewRetryingFileSystem(osfs, executor)
}

// buildTree resolves configuration for root and returns the configured tree.
func buildTree(root string, f treeFlags, logger dirtree.Logger) (*filetree.DirectoryTree, *config.TreeConfig, error) {
	cfg, err := loadTreeConfig(root, f)
	if err != nil {
		return nil, nil, err
	}

	tree, err := filetree.NewDirectoryTreeWithFS(newProvider(cfg, logger), logger, root, cfg.PatternSet())
	if err != nil {
		return nil, nil, err
	}
	if cfg.Postfix {
		tree.Postfix()
	}
	if cfg.Prune {
		tree.PruneExcludedDirectories()
	}

	logger.Verbose("Walking %s", tree.DisplayName())
	return tree, cfg, nil
}
