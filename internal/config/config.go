package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/dirtree/internal/patterns"
	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// TreeConfig is the contents of dirtree.yaml.
type TreeConfig struct {
	Include  []string `yaml:"include"`
	Exclude  []string `yaml:"exclude"`
	Postfix  bool     `yaml:"postfix"`
	Prune    bool     `yaml:"prune"`
	Checksum string   `yaml:"checksum,omitempty"`

	// Retries is the number of extra attempts for transiently failing
	// filesystem calls. Zero disables retrying.
	Retries int `yaml:"retries,omitempty"`
}

// Load reads dirtree.yaml from dir.
func Load(dir string) (*TreeConfig, error) {
	return LoadFile(filepath.Join(dir, dirtree.ConfigFileName))
}

// LoadFile reads and validates a config file.
func LoadFile(path string) (*TreeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg TreeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", dirtree.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Validate reports the first problem in the configuration.
func (c *TreeConfig) Validate() error {
	for _, p := range c.Include {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty include pattern", dirtree.ErrInvalidConfig)
		}
	}
	for _, p := range c.Exclude {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: empty exclude pattern", dirtree.ErrInvalidConfig)
		}
	}
	if c.Retries < 0 {
		return fmt.Errorf("%w: retries must not be negative, got %d", dirtree.ErrInvalidConfig, c.Retries)
	}
	return nil
}

// ApplyEnv appends the comma-separated globs of DIRTREE_INCLUDE and
// DIRTREE_EXCLUDE, as returned by getenv.
func (c *TreeConfig) ApplyEnv(getenv func(string) string) {
	c.Include = append(c.Include, splitList(getenv(dirtree.EnvInclude))...)
	c.Exclude = append(c.Exclude, splitList(getenv(dirtree.EnvExclude))...)
}

// PatternSet builds a pattern set holding the configured globs.
func (c *TreeConfig) PatternSet() *patterns.PatternSet {
	return patterns.NewPatternSet().Include(c.Include...).Exclude(c.Exclude...)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
