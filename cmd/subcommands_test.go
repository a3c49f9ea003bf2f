package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		slug  bool
		want  string
	}{
		{"canonical", "205/55 R16", false, "205/55 R16"},
		{"compact lowercase", "205/55r16", false, "205/55 R16"},
		{"slug input", "205-55-16", false, "205/55 R16"},
		{"slug output", "205/55 R16", true, "205-55-16"},
		{"slug to slug", "265-30-20", true, "265-30-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testEnv(t)
			normalizeSlug = tt.slug

			out, err := captureStdout(t, func() error { return runNormalize(tt.input) })
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestRunNormalizeInvalid(t *testing.T) {
	testEnv(t)

	_, err := captureStdout(t, func() error { return runNormalize("7000/55 R16") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tyre size")
}

func TestRunProfiles(t *testing.T) {
	testEnv(t)

	out, err := captureStdout(t, func() error { return runProfiles() })
	require.NoError(t, err)

	assert.Contains(t, out, "standard")
	assert.Contains(t, out, "strict")
	assert.Contains(t, out, "diameter ±3.0%")
	assert.Contains(t, out, "diameter ±2.0%")
	assert.Contains(t, out, "minimum score 65")
	assert.Contains(t, out, "minimum score 75")
}

func TestRootRegistersSubcommands(t *testing.T) {
	want := map[string]bool{"fit": false, "batch": false, "normalize": false, "profiles": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "subcommand %s not registered", name)
	}
}

func TestRootWithSizeArgumentActsAsFit(t *testing.T) {
	testEnv(t)
	t.Setenv("TYREFIT_NO_COLOR", "true")

	rootCmd.SetArgs([]string{"265/30R20"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	out, err := captureStdout(t, func() error { return rootCmd.Execute() })
	require.NoError(t, err)
	assert.Contains(t, out, "OEM 265/30 R20")
}
