// Package morph exposes the built-in morph tools for embedding in other Go
// programs. It wraps the tool registry behind a small API so applications
// can run tools in-process instead of shelling out to the morph binary.
//
// Every tool follows the same contract as the command line: the input is a
// single JSON document and the result is a single JSON document.
//
// Example usage:
//
//	result, err := morph.Run("transform", []byte(`{"text":"hi"}`))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(string(result)) // {"result":"HI"}
package morph

import (
	"encoding/json"
	"sync"

	"github.com/morphlab/morph/internal/schema"
	"github.com/morphlab/morph/internal/tool"
	"github.com/morphlab/morph/internal/tool/calc"
	"github.com/morphlab/morph/internal/tool/transform"
	"github.com/morphlab/morph/internal/tool/wordcount"
)

var (
	sharedOnce sync.Once
	shared     *tool.Registry
	sharedErr  error
)

// NewRegistry returns a fresh registry holding every built-in tool.
//
// Most callers can use the package-level Run, Tools and Schema functions,
// which share a lazily constructed registry. NewRegistry is for
// applications that want to register their own tools alongside the
// built-ins.
func NewRegistry() (*tool.Registry, error) {
	transformRunner, err := transform.New()
	if err != nil {
		return nil, err
	}
	countRunner, err := wordcount.New()
	if err != nil {
		return nil, err
	}
	calcRunner, err := calc.New()
	if err != nil {
		return nil, err
	}

	r := tool.NewRegistry()
	for _, runner := range []tool.Runner{transformRunner, countRunner, calcRunner} {
		if err := r.Register(runner); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func sharedRegistry() (*tool.Registry, error) {
	sharedOnce.Do(func() {
		shared, sharedErr = NewRegistry()
	})
	return shared, sharedErr
}

// Run applies the named built-in tool to a single JSON input document and
// returns the tool's result as compact JSON.
//
// Decode failures are reported as a *tool.ParseError so callers can
// distinguish malformed input from tool-level failures such as division
// by zero.
func Run(name string, input []byte) (json.RawMessage, error) {
	r, err := sharedRegistry()
	if err != nil {
		return nil, err
	}

	runner, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	result, err := runner.Run(json.RawMessage(input))
	if err != nil {
		return nil, err
	}

	return json.Marshal(result)
}

// Tools returns the descriptors of every built-in tool, sorted by name.
func Tools() ([]tool.Tool, error) {
	r, err := sharedRegistry()
	if err != nil {
		return nil, err
	}

	return r.List(), nil
}

// Schema returns the JSON Schema describing the named tool's input
// document. The schema can be compiled with any JSON Schema validator to
// check inputs before running the tool.
func Schema(name string) (schema.JSON, error) {
	r, err := sharedRegistry()
	if err != nil {
		return schema.JSON{}, err
	}

	runner, err := r.Get(name)
	if err != nil {
		return schema.JSON{}, err
	}

	return runner.Descriptor().Parameters, nil
}
