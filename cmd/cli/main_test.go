package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	logW := &bytes.Buffer{}

	err := run(out, logW, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	logW := &bytes.Buffer{}

	err := run(out, logW, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ExportsStandardLibrary(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	args := []string{"-out", outDir, "-log-level", "error"}
	out := &bytes.Buffer{}
	logW := &bytes.Buffer{}

	err := run(out, logW, args)
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(outDir, "std.strings.md"))
	require.NoError(t, readErr)
	require.Contains(t, string(data), "upper")
	require.NotContains(t, string(data), "rhai-autodocs")
}
