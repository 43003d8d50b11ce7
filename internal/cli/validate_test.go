package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValidInput(t *testing.T) {
	stdout, stderr, err := executeCommand(rootCmd, "validate", "transform", `{"text": "hi", "operation": "upper"}`)
	require.NoError(t, err)
	assert.Empty(t, stdout, "text summaries belong on stderr")
	assert.Contains(t, stderr, "All 1 input(s) are valid")
}

func TestValidateWrongType(t *testing.T) {
	_, stderr, err := executeCommand(rootCmd, "validate", "transform", `{"operation": 1}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 input(s) failed validation")
	assert.Contains(t, stderr, "expected string")
}

func TestValidateMissingRequired(t *testing.T) {
	_, stderr, err := executeCommand(rootCmd, "validate", "calc", `{"a": 1}`)
	require.Error(t, err)
	assert.Contains(t, stderr, "missing properties")
}

func TestValidateMalformedInput(t *testing.T) {
	_, stderr, err := executeCommand(rootCmd, "validate", "transform", `{"text"`)
	require.Error(t, err)
	assert.Contains(t, stderr, "JSON parsing error")
}

func TestValidateUnknownFieldsAllowed(t *testing.T) {
	_, stderr, err := executeCommand(rootCmd, "validate", "transform", `{"text": "hi", "extra": true}`)
	require.NoError(t, err)
	assert.Contains(t, stderr, "All 1 input(s) are valid")
}

func TestValidateBatch(t *testing.T) {
	resetFlag(t, "output")

	stdout, _, err := executeCommand(rootCmd, "validate", "calc",
		`{"a": 1, "b": 2, "operation": "add"}`,
		`{"a": 1}`,
		"--output", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 input(s) failed validation")

	var summary ValidationSummary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))
	assert.Equal(t, "calc", summary.Tool)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Valid)
	assert.Equal(t, 1, summary.Invalid)
	require.Len(t, summary.Results, 2)
	assert.True(t, summary.Results[0].Valid)
	assert.False(t, summary.Results[1].Valid)
	assert.NotEmpty(t, summary.Results[1].Errors)
}

func TestValidateQuiet(t *testing.T) {
	resetFlag(t, "quiet")

	_, stderr, err := executeCommand(rootCmd, "validate", "transform", `{"text": "hi"}`, "-q")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestValidateUnknownTool(t *testing.T) {
	_, _, err := executeCommand(rootCmd, "validate", "nosuch", `{}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuch")
}

func TestValidateRequiresInput(t *testing.T) {
	_, _, err := executeCommand(rootCmd, "validate", "transform")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 2 arg(s)")
}
