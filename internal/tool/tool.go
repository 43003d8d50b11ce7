// Package tool defines the runnable-utility abstraction shared by every
// morph command: a named tool with a JSON input schema that turns one raw
// JSON document into one response value.
package tool

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/morphlab/morph/internal/schema"
)

// Tool describes a runnable utility: its registry name, a human
// description, and the JSON schema of its input document.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Parameters  schema.JSON `json:"parameters"`
}

// Runner executes one tool invocation. Input is the raw JSON document from
// the command line; the returned value is marshaled verbatim as the
// response payload. A failed run must not produce partial output.
type Runner interface {
	Descriptor() Tool
	Run(input json.RawMessage) (interface{}, error)
}

// Registry holds the available tools keyed by name.
type Registry struct {
	mu      sync.RWMutex
	runners map[string]Runner
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		runners: make(map[string]Runner),
	}
}

// Register adds a runner to the registry. Registering a name twice is an
// error.
func (r *Registry) Register(runner Runner) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := runner.Descriptor().Name
	if _, exists := r.runners[name]; exists {
		return fmt.Errorf("tool %s already registered", name)
	}

	r.runners[name] = runner
	return nil
}

// Get returns the named runner.
func (r *Registry) Get(name string) (Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, exists := r.runners[name]
	if !exists {
		return nil, fmt.Errorf("tool %s not found", name)
	}

	return runner, nil
}

// List returns the descriptors of every registered tool, sorted by name.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]Tool, 0, len(r.runners))
	for _, runner := range r.runners {
		descriptors = append(descriptors, runner.Descriptor())
	}

	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Name < descriptors[j].Name
	})

	return descriptors
}
