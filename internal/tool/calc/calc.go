// Package calc implements the arithmetic tool.
package calc

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/morphlab/morph/internal/schema"
	"github.com/morphlab/morph/internal/tool"
)

// Name is the registry name of the arithmetic tool.
const Name = "calc"

//go:embed types.go
var typesSource []byte

// Runner evaluates one binary arithmetic operation.
type Runner struct {
	descriptor tool.Tool
}

// New builds the calc runner.
func New() (*Runner, error) {
	params, err := schema.Generate(&Request{}, typesSource)
	if err != nil {
		return nil, fmt.Errorf("failed to generate calc schema: %w", err)
	}

	return &Runner{
		descriptor: tool.Tool{
			Name:        Name,
			Description: "Evaluate a binary arithmetic operation (add, subtract, multiply, divide)",
			Parameters:  params,
		},
	}, nil
}

// Descriptor returns the tool descriptor.
func (r *Runner) Descriptor() tool.Tool {
	return r.descriptor
}

// Run decodes the request and evaluates it. Unrecognized operations yield
// zero; a result the JSON encoder cannot represent is an error.
func (r *Runner) Run(input json.RawMessage) (interface{}, error) {
	var req Request
	if err := tool.Decode(Name, input, &req); err != nil {
		return nil, err
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	a, b := *req.A, *req.B

	var result float64
	switch *req.Operation {
	case "add":
		result = a + b
	case "subtract":
		result = a - b
	case "multiply":
		result = a * b
	case "divide":
		if b == 0 {
			return nil, errors.New("division by zero")
		}
		result = a / b
	default:
		result = 0
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return nil, fmt.Errorf("result of %s is not a finite number", *req.Operation)
	}

	return Response{Result: result}, nil
}

// validate checks the required fields are all present.
func (req *Request) validate() error {
	var missing []string
	if req.A == nil {
		missing = append(missing, "a")
	}
	if req.B == nil {
		missing = append(missing, "b")
	}
	if req.Operation == nil {
		missing = append(missing, "operation")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
	}

	return nil
}
