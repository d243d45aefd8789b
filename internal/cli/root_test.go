package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirtree/internal/logging"
)

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"ls", "contains", "hash", "copy", "stats", "version"} {
		assert.True(t, names[want], "missing command %q", want)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
		check   func(t *testing.T, l interface{})
	}{
		{format: "", check: func(t *testing.T, l interface{}) { assert.IsType(t, &logging.ConsoleLogger{}, l) }},
		{format: logFormatConsole, check: func(t *testing.T, l interface{}) { assert.IsType(t, &logging.ConsoleLogger{}, l) }},
		{format: logFormatJSON, check: func(t *testing.T, l interface{}) { assert.IsType(t, &logging.ZapLogger{}, l) }},
		{format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resetFlags(t)
			rootFlags.logFormat = tt.format

			logger, flush, err := newLogger()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid argument")
				return
			}
			require.NoError(t, err)
			defer flush()
			tt.check(t, logger)
		})
	}
}

func TestLoadTreeConfig_RetriesFlagOverridesConfig(t *testing.T) {
	resetFlags(t)
	root := writeProject(t)

	f := newTreeFlags()
	cfg, err := loadTreeConfig(root, f)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Retries)

	f.retries = 3
	cfg, err = loadTreeConfig(root, f)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Retries)
}
