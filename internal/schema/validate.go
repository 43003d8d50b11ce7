package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Validator checks candidate input documents against one compiled tool
// parameter schema.
type Validator struct {
	schema *jsonschema.Schema
}

// ValidationError is a single schema violation with the instance path it
// occurred at.
type ValidationError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// ValidationResult contains the outcome of validating one input document.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// NewValidator compiles params into a reusable validator.
func NewValidator(params JSON) (*Validator, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// ValidateBytes checks one raw JSON document against the schema. Malformed
// JSON is reported as a result error rather than returned, so callers can
// treat every candidate input uniformly.
func (v *Validator) ValidateBytes(data []byte) *ValidationResult {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ValidationResult{
			Valid: false,
			Errors: []ValidationError{{
				Message: fmt.Sprintf("JSON parsing error: %v", err),
				Path:    "root",
			}},
		}
	}

	err := v.schema.Validate(doc)
	if err == nil {
		return &ValidationResult{Valid: true}
	}

	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		return &ValidationResult{
			Valid:  false,
			Errors: convertValidationErrors(validationErr),
		}
	}

	return &ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Message: err.Error(), Path: "root"}},
	}
}

// convertValidationErrors flattens a jsonschema error tree into our format.
func convertValidationErrors(err *jsonschema.ValidationError) []ValidationError {
	errors := []ValidationError{{
		Message: err.Message,
		Path:    instancePath(err.InstanceLocation),
	}}

	for _, subErr := range err.Causes {
		errors = append(errors, convertValidationErrors(subErr)...)
	}

	return errors
}

func instancePath(location string) string {
	if location == "" {
		return "root"
	}
	return location
}
