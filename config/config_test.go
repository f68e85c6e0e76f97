package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tpsolve/config"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	conf, err := config.Load("", nil)
	require.NoError(t, err)
	want := config.Default()
	assert.Equal(t, want.Log, conf.Log)
	assert.Equal(t, want.Output, conf.Output)
	assert.Equal(t, want.Wizard, conf.Wizard)
	assert.Empty(t, conf.File)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "tpsolve.yaml", `
log:
  level: debug
  development: true
output:
  format: JSON
  color: false
wizard:
  rows: 4
  cols: 5
`)

	conf, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.Log.Level)
	assert.True(t, conf.Log.Development)
	assert.Equal(t, config.FormatJSON, conf.Output.Format)
	assert.False(t, conf.Output.Color)
	assert.Equal(t, 4, conf.Wizard.Rows)
	assert.Equal(t, 5, conf.Wizard.Cols)
	assert.Equal(t, 12, conf.Wizard.MaxDim)
	assert.Equal(t, path, conf.File)
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "tpsolve.toml", "[output]\nformat = \"yaml\"\n[log]\nlevel = \"info\"\n")
	t.Setenv("TPSOLVE_OUTPUT_FORMAT", "text")
	t.Setenv("TPSOLVE_WIZARD_ROWS", "6")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "warn", "")
	flags.String("format", "table", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "error"}))

	conf, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "error", conf.Log.Level, "set flag beats file")
	assert.Equal(t, config.FormatText, conf.Output.Format, "env beats file, unset flag is ignored")
	assert.Equal(t, 6, conf.Wizard.Rows)
}

func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	cases := map[string]string{
		"format":      "output:\n  format: html\n",
		"level":       "log:\n  level: loud\n",
		"rows>max":    "wizard:\n  rows: 20\n  max_dim: 10\n",
		"zero cols":   "wizard:\n  cols: 0\n",
		"max too big": "wizard:\n  max_dim: 500\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, "c.yaml", body), nil)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}
