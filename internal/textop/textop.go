// Package textop implements the pure text operations behind the transform
// tool. Operations are total: every input string maps to an output string
// and unrecognized operation names fall back to the identity transform.
package textop

import "strings"

// Operation names understood by Apply. Dispatch is closed: matching is
// literal string equality, there is no registration mechanism.
const (
	OpUpper   = "upper"
	OpLower   = "lower"
	OpReverse = "reverse"
)

// Upper maps every character of text to upper case using Unicode case
// mapping, locale-independent.
func Upper(text string) string {
	return strings.ToUpper(text)
}

// Lower maps every character of text to lower case using Unicode case
// mapping, locale-independent.
func Lower(text string) string {
	return strings.ToLower(text)
}

// Reverse reverses text by code point, not by byte, so multi-byte
// characters come out intact.
func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Apply runs the operation named by op against text. Any op that is not
// one of the known operation names returns text unchanged.
func Apply(op, text string) string {
	switch op {
	case OpUpper:
		return Upper(text)
	case OpLower:
		return Lower(text)
	case OpReverse:
		return Reverse(text)
	default:
		return text
	}
}
