// Package transform implements the text transform tool: one JSON document
// in, one JSON result out, with upper as the default operation and identity
// as the fallback for unrecognized operation names.
package transform

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/morphlab/morph/internal/schema"
	"github.com/morphlab/morph/internal/textop"
	"github.com/morphlab/morph/internal/tool"
)

// Name is the registry name of the transform tool.
const Name = "transform"

//go:embed types.go
var typesSource []byte

// Runner applies the requested text operation.
type Runner struct {
	descriptor tool.Tool
}

// New builds the transform runner, generating its input schema from the
// request type.
func New() (*Runner, error) {
	params, err := schema.Generate(&Request{}, typesSource)
	if err != nil {
		return nil, fmt.Errorf("failed to generate transform schema: %w", err)
	}

	return &Runner{
		descriptor: tool.Tool{
			Name:        Name,
			Description: "Apply a named text operation (upper, lower, reverse) to a string",
			Parameters:  params,
		},
	}, nil
}

// Descriptor returns the tool descriptor.
func (r *Runner) Descriptor() tool.Tool {
	return r.descriptor
}

// Run decodes the request, applies the operation and returns the response.
// An absent operation means upper; an absent text means the empty string.
func (r *Runner) Run(input json.RawMessage) (interface{}, error) {
	var req Request
	if err := tool.Decode(Name, input, &req); err != nil {
		return nil, err
	}

	op := textop.OpUpper
	if req.Operation != nil {
		op = *req.Operation
	}

	return Response{Result: textop.Apply(op, req.Text)}, nil
}
