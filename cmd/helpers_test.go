package cmd

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// testEnv moves the test into an empty working directory with an empty HOME
// so no real rc file leaks into config.Load, and restores the package-level
// flag state afterwards.
func testEnv(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("HOME", t.TempDir())

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	savedRoot, savedPattern, savedSlug := batchRoot, batchPattern, normalizeSlug
	t.Cleanup(func() {
		batchRoot, batchPattern, normalizeSlug = savedRoot, savedPattern, savedSlug
	})

	return tmpDir
}

// captureStdout runs fn with os.Stdout redirected and returns what was
// written. fn's error is handed back for the test to assert on.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fnErr := fn()
	w.Close()
	out, readErr := io.ReadAll(r)
	os.Stdout = orig
	require.NoError(t, readErr)

	return string(out), fnErr
}
