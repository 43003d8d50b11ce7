package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"three words", `{"text": "one two three"}`, `{"count":3}`},
		{"collapses whitespace", `{"text": "  a \t b  "}`, `{"count":2}`},
		{"empty text", `{"text": ""}`, `{"count":0}`},
		{"empty document", `{}`, `{"count":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(rootCmd, "count", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestCountCommandMissingArgument(t *testing.T) {
	_, _, err := executeCommand(rootCmd, "count")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")
}

func TestCountCommandMalformedJSON(t *testing.T) {
	stdout, _, err := executeCommand(rootCmd, "count", `{"text":`)
	require.Error(t, err)
	assert.Empty(t, stdout)
}
