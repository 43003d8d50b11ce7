// Package wordcount implements the word count tool.
package wordcount

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/morphlab/morph/internal/schema"
	"github.com/morphlab/morph/internal/tool"
)

// Name is the registry name of the word count tool.
const Name = "count"

//go:embed types.go
var typesSource []byte

// Runner counts whitespace-delimited words.
type Runner struct {
	descriptor tool.Tool
}

// New builds the word count runner.
func New() (*Runner, error) {
	params, err := schema.Generate(&Request{}, typesSource)
	if err != nil {
		return nil, fmt.Errorf("failed to generate count schema: %w", err)
	}

	return &Runner{
		descriptor: tool.Tool{
			Name:        Name,
			Description: "Count whitespace-delimited words in a string",
			Parameters:  params,
		},
	}, nil
}

// Descriptor returns the tool descriptor.
func (r *Runner) Descriptor() tool.Tool {
	return r.descriptor
}

// Run decodes the request and counts its words.
func (r *Runner) Run(input json.RawMessage) (interface{}, error) {
	var req Request
	if err := tool.Decode(Name, input, &req); err != nil {
		return nil, err
	}

	return Response{Count: len(strings.Fields(req.Text))}, nil
}
