package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input  string
		flat   string
		groups []string
	}{
		{"p&q", "p&q", nil},
		{"(p&q)>p", "0>p", []string{"(p&q)"}},
		{"~(p)", "0", []string{"~(p)"}},
		{"~~(p)", "~0", []string{"~(p)"}},
		{"(p)&(p)", "0&1", []string{"(p)", "(p)"}},
		{"(p)&~(p)", "0&1", []string{"(p)", "~(p)"}},
		{"((a))", "1", []string{"(a)", "(0)"}},
		{"~(p&(q|r))>p", "1>p", []string{"(q|r)", "~(p&0)"}},
		{"(a|(b&c))+((d>e)|f)", "2+3", []string{"(b&c)", "(d>e)", "(a|0)", "(1|f)"}},
		{"(p", "(p", nil},
		{"(p))", "0)", []string{"(p)"}},
	}
	for _, test := range tests {
		tok := Tokenize(test.input)
		assert.Equal(t, test.flat, tok.Flat, "flat string for %q", test.input)
		assert.Equal(t, test.groups, tok.Groups, "groups for %q", test.input)
	}
}

func TestExpandRoundTrip(t *testing.T) {
	const src = "~(p&(q|r))>(p<~(q+r))"
	tok := Tokenize(src)
	assert.Equal(t, src, tok.ExpandFlat())
	for key := range tok.Groups {
		assert.Contains(t, src, tok.Expand(key))
	}
	assert.Equal(t, "(q|r)", tok.Expand(0))
	assert.Equal(t, "~(q+r)", tok.Expand(1))
	assert.Equal(t, "~(p&(q|r))", tok.Expand(2))
	assert.Equal(t, "(p<~(q+r))", tok.Expand(3))
}

// More than ten groups make multi-digit keys appear in group texts.
func TestExpandMultiDigitKeys(t *testing.T) {
	letters := "abcdefghijkl"
	parts := make([]string, len(letters))
	for i := range letters {
		parts[i] = "(" + letters[i:i+1] + ")"
	}
	src := "(" + strings.Join(parts, "|") + ")&m"
	tok := Tokenize(src)
	assert.Equal(t, "12&m", tok.Flat)
	assert.Len(t, tok.Groups, 13)
	assert.Equal(t, "(0|1|2|3|4|5|6|7|8|9|10|11)", tok.Groups[12])
	assert.Equal(t, "(l)", tok.Expand(11))
	assert.Equal(t, src[:len(src)-2], tok.Expand(12))
	assert.Equal(t, src, tok.ExpandFlat())
}

func TestExpandForwardReference(t *testing.T) {
	tok := Tokenized{Flat: "0", Groups: []string{"(1)", "(p)"}}
	assert.Panics(t, func() { tok.Expand(0) })
	self := Tokenized{Flat: "0", Groups: []string{"(0&p)"}}
	assert.Panics(t, func() { self.ExpandFlat() })
	assert.Panics(t, func() { self.Expand(1) })
}
