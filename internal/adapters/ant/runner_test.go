//go:build unix

package ant_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/antscan/internal/adapters/ant"
	"go.trai.ch/zerr"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ant")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o700)) //nolint:gosec // test executable
	return path
}

func TestRunner_ListTargets(t *testing.T) {
	// Echo the arguments so the invocation shape is visible.
	script := writeScript(t, `echo "args: $*"; echo "Default target: dist"`)
	buildFile := filepath.Join(t.TempDir(), "build.xml")

	out, err := ant.NewRunner().ListTargets(t.Context(), script, buildFile)
	require.NoError(t, err)

	assert.Contains(t, string(out), "args: -f "+buildFile+" -p")
	assert.Contains(t, string(out), "Default target: dist")
}

func TestRunner_CombinesStderr(t *testing.T) {
	script := writeScript(t, `echo " warn" >&2`)

	out, err := ant.NewRunner().ListTargets(t.Context(), script, filepath.Join(t.TempDir(), "build.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "warn")
}

func TestRunner_NonZeroExit(t *testing.T) {
	script := writeScript(t, "echo 'BUILD FAILED'; exit 2")

	_, err := ant.NewRunner().ListTargets(t.Context(), script, filepath.Join(t.TempDir(), "build.xml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "build tool invocation failed")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, 2, zErr.Metadata()["exit_code"])
}

func TestRunner_EmptyOutput(t *testing.T) {
	script := writeScript(t, "exit 0")

	_, err := ant.NewRunner().ListTargets(t.Context(), script, filepath.Join(t.TempDir(), "build.xml"))
	assert.ErrorContains(t, err, "build tool produced no output")
}

func TestRunner_MissingExecutable(t *testing.T) {
	_, err := ant.NewRunner().ListTargets(t.Context(), "antscan-no-such-ant", filepath.Join(t.TempDir(), "build.xml"))
	assert.ErrorContains(t, err, "build tool invocation failed")
}
