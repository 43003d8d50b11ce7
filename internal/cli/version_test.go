package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCommand(rootCmd, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev", stdout)
}

func TestVersionCommandJSON(t *testing.T) {
	resetFlag(t, "output")

	stdout, _, err := executeCommand(rootCmd, "version", "--output", "json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.Platform)
}

func TestVersionCommandYAML(t *testing.T) {
	resetFlag(t, "output")

	stdout, _, err := executeCommand(rootCmd, "version", "--output", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "version: dev")
}

func TestVersionInfo(t *testing.T) {
	versionInfo := VersionInfo{
		Version:   "1.0.0",
		Commit:    "abc123",
		Date:      "2024-01-01",
		GoVersion: "go1.24.1",
		Platform:  "linux/amd64",
	}

	assert.Equal(t, "1.0.0", versionInfo.Version)
	assert.Equal(t, "abc123", versionInfo.Commit)
}

func TestBuildVariables(t *testing.T) {
	// Build variables have sensible defaults when not set by the linker
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Commit)
	assert.NotEmpty(t, Date)
	assert.NotEmpty(t, GoVersion)
	assert.Contains(t, GoVersion, "go")
}
