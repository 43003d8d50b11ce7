package calc

// Request is the calculator input document. All three fields are required.
type Request struct {
	// A is the left operand.
	A *float64 `json:"a"`
	// B is the right operand.
	B *float64 `json:"b"`
	// Operation selects the arithmetic: add, subtract, multiply or divide.
	// Any other value yields zero.
	Operation *string `json:"operation"`
}

// Response is the calculator result document.
type Response struct {
	// Result is the computed value.
	Result float64 `json:"result"`
}
