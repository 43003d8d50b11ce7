package wordcount

// Request is the word count input document.
type Request struct {
	// Text is the string whose whitespace-delimited words are counted.
	// Treated as the empty string when absent.
	Text string `json:"text,omitempty"`
}

// Response is the word count result document.
type Response struct {
	// Count is the number of words found.
	Count int `json:"count"`
}
