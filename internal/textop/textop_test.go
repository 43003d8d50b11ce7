package textop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleStrings = []string{
	"",
	"Hello",
	"Hello, World!",
	"already lower",
	"ALREADY UPPER",
	"MiXeD CaSe 123",
	"héllo wörld",
	"ÀÉÎÕÜ àéîõü",
	"漢字 and kana かな",
	"🙂 emoji stays put",
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		op   string
		text string
		want string
	}{
		{"upper", OpUpper, "Hello", "HELLO"},
		{"lower", OpLower, "Hello", "hello"},
		{"reverse", OpReverse, "Hello", "olleH"},
		{"upper unicode", OpUpper, "héllo wörld", "HÉLLO WÖRLD"},
		{"lower unicode", OpLower, "HÉLLO WÖRLD", "héllo wörld"},
		{"reverse multi-byte", OpReverse, "héllo", "olléh"},
		{"unknown operation is identity", "bogus", "Hi", "Hi"},
		{"empty operation is identity", "", "Hello", "Hello"},
		{"case-sensitive dispatch", "UPPER", "Hello", "Hello"},
		{"empty text", OpUpper, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.op, tt.text))
		})
	}
}

func TestUpperIdempotent(t *testing.T) {
	for _, s := range sampleStrings {
		once := Upper(s)
		assert.Equal(t, once, Upper(once), "upper(upper(%q))", s)
	}
}

func TestLowerIdempotent(t *testing.T) {
	for _, s := range sampleStrings {
		once := Lower(s)
		assert.Equal(t, once, Lower(once), "lower(lower(%q))", s)
	}
}

func TestReverseInvolution(t *testing.T) {
	for _, s := range sampleStrings {
		assert.Equal(t, s, Reverse(Reverse(s)), "reverse(reverse(%q))", s)
	}
}

func TestUnknownOperationIdentity(t *testing.T) {
	ops := []string{"bogus", "", "Upper", "REVERSE", "shout", "upper "}

	for _, op := range ops {
		for _, s := range sampleStrings {
			assert.Equal(t, s, Apply(op, s), "Apply(%q, %q)", op, s)
		}
	}
}

func TestReverseSingleRune(t *testing.T) {
	assert.Equal(t, "a", Reverse("a"))
	assert.Equal(t, "é", Reverse("é"))
}
