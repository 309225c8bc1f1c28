package magetasks

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestInitialize_CreatesBinDir(t *testing.T) {
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(originalDir) })

	tmpDir := t.TempDir()
	require.NoError(t, os.Chdir(tmpDir))

	require.NoError(t, Initialize())
	assert.DirExists(t, filepath.Join(tmpDir, "bin"))

	expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
	actualRoot, _ := filepath.EvalSymlinks(ProjectRoot)
	assert.Equal(t, expectedRoot, actualRoot)
}

func TestLdflags_StampsVersionPackage(t *testing.T) {
	flags := Ldflags("v1.2.3", "abc123", "2026-01-01T00:00:00Z")

	assert.Contains(t, flags, "-X 'github.com/dkoosis/svgstats/internal/version.Version=v1.2.3'")
	assert.Contains(t, flags, "version.CommitHash=abc123'")
	assert.Contains(t, flags, "version.BuildDate=2026-01-01T00:00:00Z'")
}

func TestRun_MissingCommand(t *testing.T) {
	captureOut(t)
	t.Setenv("PATH", t.TempDir())

	err := Run("Missing", "definitely-not-installed-tool")
	require.Error(t, err)
	assert.True(t, IsCommandNotFound(err))
	assert.Contains(t, err.Error(), "Missing")
}

func TestIsCommandNotFound(t *testing.T) {
	assert.True(t, IsCommandNotFound(exec.ErrNotFound))
	assert.False(t, IsCommandNotFound(errors.New("some other error")))
	assert.False(t, IsCommandNotFound(nil))
}

func TestConsole_Helpers(t *testing.T) {
	buf := captureOut(t)

	PrintH1Header("svgstats")
	PrintH2Header("Build")
	PrintSuccess("done")
	PrintWarning("careful")
	PrintError("broken")

	out := buf.String()
	assert.Contains(t, out, strings.Repeat("=", 60))
	assert.Contains(t, out, "=== Build ===")
	assert.Contains(t, out, "✅ done")
	assert.Contains(t, out, "⚠️  careful")
	assert.Contains(t, out, "❌ broken")
}
