package transform

// Request is the transform input document.
type Request struct {
	// Text is the string to transform. Treated as the empty string when
	// absent.
	Text string `json:"text,omitempty"`
	// Operation selects the transform: upper, lower or reverse. Treated as
	// upper when absent; any other value returns the text unchanged.
	Operation *string `json:"operation,omitempty"`
}

// Response is the transform result document.
type Response struct {
	// Result is the transformed text.
	Result string `json:"result"`
}
