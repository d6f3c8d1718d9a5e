package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/exprdocs/internal/cli"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-out", "docs"}, &out)

	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, "docs", cfg.OutputDir)
	require.Equal(t, "mdbook", cfg.Flavor)
	require.True(t, cfg.IncludeStdLib)
	require.False(t, cfg.StrictIndex)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParse_NoOutputPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out)

	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_PreviewNeedsNoOutput(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-preview"}, &out)

	require.NoError(t, err)
	require.False(t, exit)
	require.True(t, cfg.Preview)
	require.Empty(t, cfg.OutputDir)
}

func TestParse_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer
	_, _, err := cli.Parse([]string{"-out", "docs", "-log-level", "verbose"}, &out)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "log-level")
}

func TestParse_InvalidLogFormat(t *testing.T) {
	var out bytes.Buffer
	_, _, err := cli.Parse([]string{"-out", "docs", "-log-format", "xml"}, &out)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}

func TestParse_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exprdocs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir = "site/reference"
flavor = "docusaurus"
slug_prefix = "/docs/ref"
include_standard_library = false
strict_index = true
`), 0o644))

	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-config", path}, &out)

	require.NoError(t, err)
	require.False(t, exit)
	require.Equal(t, "site/reference", cfg.OutputDir)
	require.Equal(t, "docusaurus", cfg.Flavor)
	require.Equal(t, "/docs/ref", cfg.SlugPrefix)
	require.False(t, cfg.IncludeStdLib)
	require.True(t, cfg.StrictIndex)
}

func TestParse_ExplicitFlagsBeatConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exprdocs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir = "site/reference"
flavor = "docusaurus"
`), 0o644))

	var out bytes.Buffer
	cfg, _, err := cli.Parse([]string{"-config", path, "-flavor", "mdbook"}, &out)

	require.NoError(t, err)
	require.Equal(t, "mdbook", cfg.Flavor)
	require.Equal(t, "site/reference", cfg.OutputDir)
}

func TestParse_MissingConfigFile(t *testing.T) {
	var out bytes.Buffer
	_, _, err := cli.Parse([]string{"-config", "does/not/exist.toml"}, &out)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	require.Equal(t, 2, exitErr.Code)
}
