package tool

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError reports an input document that could not be decoded for a
// tool. Offset is the byte position of the failure when the decoder
// provides one, zero otherwise.
type ParseError struct {
	Tool    string `json:"tool"`
	Message string `json:"message"`
	Offset  int64  `json:"offset,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var result strings.Builder

	result.WriteString(fmt.Sprintf("invalid input for %s: %s", e.Tool, e.Message))

	if e.Offset > 0 {
		result.WriteString(fmt.Sprintf(" (at byte %d)", e.Offset))
	}

	return result.String()
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decode unmarshals raw into v, wrapping any failure in a ParseError
// attributed to tool. All tools decode their input through this helper so
// parse failures read the same everywhere.
func Decode(tool string, raw json.RawMessage, v interface{}) error {
	err := json.Unmarshal(raw, v)
	if err == nil {
		return nil
	}

	perr := &ParseError{
		Tool:    tool,
		Message: err.Error(),
		Err:     err,
	}

	switch cause := err.(type) {
	case *json.SyntaxError:
		perr.Offset = cause.Offset
	case *json.UnmarshalTypeError:
		perr.Offset = cause.Offset
		if cause.Field != "" {
			perr.Message = fmt.Sprintf("field %q must be %s, got JSON %s", cause.Field, cause.Type, cause.Value)
		}
	}

	return perr
}
