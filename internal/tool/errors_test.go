package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Text string `json:"text"`
}

func TestDecodeValid(t *testing.T) {
	var target decodeTarget
	err := Decode("transform", json.RawMessage(`{"text": "hi"}`), &target)
	require.NoError(t, err)
	assert.Equal(t, "hi", target.Text)
}

func TestDecodeSyntaxError(t *testing.T) {
	var target decodeTarget
	err := Decode("transform", json.RawMessage(`{bad`), &target)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "transform", parseErr.Tool)
	assert.Greater(t, parseErr.Offset, int64(0))
	assert.Contains(t, parseErr.Error(), "invalid input for transform")
	assert.Contains(t, parseErr.Error(), "at byte")
}

func TestDecodeTypeError(t *testing.T) {
	var target decodeTarget
	err := Decode("transform", json.RawMessage(`{"text": 42}`), &target)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Message, `field "text"`)
	assert.NotNil(t, parseErr.Unwrap())
}

func TestDecodeNotAnObject(t *testing.T) {
	var target decodeTarget
	err := Decode("transform", json.RawMessage(`"just a string"`), &target)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "transform", parseErr.Tool)
}
