package schema

// JSON is a JSON Schema document. It models the vocabulary morph tool
// schemas actually use; generated schemas round-trip through this type so
// property order is canonical (sorted) wherever a schema is printed.
type JSON struct {
	Schema      string          `json:"$schema,omitempty"`
	ID          string          `json:"$id,omitempty"`
	Ref         string          `json:"$ref,omitempty"`
	Definitions map[string]JSON `json:"$defs,omitempty"`
	Comment     string          `json:"$comment,omitempty"`

	// Type constraints
	Type  interface{}   `json:"type,omitempty"`
	Enum  []interface{} `json:"enum,omitempty"`
	Const interface{}   `json:"const,omitempty"`

	// String validation
	MinLength int    `json:"minLength,omitempty"`
	MaxLength int    `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
	Format    string `json:"format,omitempty"`

	// Numeric validation
	Minimum          float64 `json:"minimum,omitempty"`
	ExclusiveMinimum float64 `json:"exclusiveMinimum,omitempty"`
	Maximum          float64 `json:"maximum,omitempty"`
	ExclusiveMaximum float64 `json:"exclusiveMaximum,omitempty"`

	// Object validation
	Properties           map[string]JSON `json:"properties,omitempty"`
	AdditionalProperties interface{}     `json:"additionalProperties,omitempty"` // bool or JSON
	Required             []string        `json:"required,omitempty"`

	// Array validation
	Items interface{} `json:"items,omitempty"` // JSON or bool

	// Metadata
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Default     interface{}   `json:"default,omitempty"`
	Examples    []interface{} `json:"examples,omitempty"`
}
