package cli

import (
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsCommand(t *testing.T) {
	stdout, _, err := executeCommand(rootCmd, "tools")
	require.NoError(t, err)
	assert.Contains(t, stdout, "transform")
	assert.Contains(t, stdout, "count")
	assert.Contains(t, stdout, "calc")

	snaps.MatchSnapshot(t, stdout)
}

func TestToolsCommandJSON(t *testing.T) {
	resetFlag(t, "output")

	stdout, _, err := executeCommand(rootCmd, "tools", "--output", "json")
	require.NoError(t, err)

	var infos []toolInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &infos))
	require.Len(t, infos, 3)

	// The listing is sorted by name
	assert.Equal(t, "calc", infos[0].Name)
	assert.Equal(t, "count", infos[1].Name)
	assert.Equal(t, "transform", infos[2].Name)

	for _, info := range infos {
		assert.NotEmpty(t, info.Description)
	}
}

func TestToolsCommandRejectsArguments(t *testing.T) {
	_, _, err := executeCommand(rootCmd, "tools", "extra")
	require.Error(t, err)
}
