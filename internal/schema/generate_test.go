package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SampleRequest is a fixture input document.
type SampleRequest struct {
	// TargetText is the text to operate on.
	TargetText string `json:"target_text,omitempty"`
	// Ratio is a required knob.
	Ratio *float64 `json:"ratio"`
}

const sampleSource = `package schema

// SampleRequest is a fixture input document.
type SampleRequest struct {
	// TargetText is the text to operate on.
	TargetText string ` + "`json:\"target_text,omitempty\"`" + `
	// Ratio is a required knob.
	Ratio *float64 ` + "`json:\"ratio\"`" + `
}
`

func TestGenerate(t *testing.T) {
	generated, err := Generate(&SampleRequest{}, []byte(sampleSource))
	require.NoError(t, err)

	assert.Equal(t, "object", generated.Type)
	assert.Equal(t, "SampleRequest is a fixture input document.", generated.Description)
	assert.Equal(t, []string{"ratio"}, generated.Required)

	text, ok := generated.Properties["target_text"]
	require.True(t, ok, "expected snake_case property name")
	assert.Equal(t, "string", text.Type)
	assert.Equal(t, "TargetText is the text to operate on.", text.Description)

	ratio, ok := generated.Properties["ratio"]
	require.True(t, ok)
	assert.Equal(t, "number", ratio.Type)
	assert.Equal(t, "Ratio is a required knob.", ratio.Description)

	// Tools ignore unknown request fields, so the schema must not forbid them.
	assert.Nil(t, generated.AdditionalProperties)
}

func TestGenerateWithoutSource(t *testing.T) {
	generated, err := Generate(&SampleRequest{}, nil)
	require.NoError(t, err)

	assert.Equal(t, "object", generated.Type)
	assert.Empty(t, generated.Description)
	assert.Contains(t, generated.Properties, "target_text")
}

func TestGenerateBadSource(t *testing.T) {
	_, err := Generate(&SampleRequest{}, []byte("not go source"))
	assert.Error(t, err)
}
