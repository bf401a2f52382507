package prop

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// To each expression, associate the expected string representation of its formula.
// An empty string means an error is expected.
var exprToFormula = map[string]string{
	"p":        "p",
	"~p":       "not(p)",
	"~~p":      "not(not(p))",
	"(p)":      "p",
	"p|q":      "or(p, q)",
	"p & q":    "and(p, q)",
	"p+q":      "xor(p, q)",
	"p>q":      "implies(p, q)",
	"p<q":      "eq(p, q)",
	"p&q&r":    "and(p, q, r)",
	"p|q|r|s":  "or(p, q, r, s)",
	"p&q|r":    "or(and(p, q), r)",
	"p|q&r":    "and(or(p, q), r)",
	"p>q>r":    "implies(implies(p, q), r)",
	"p&q|r&s":  "and(or(and(p, q), r), s)",
	"~p&q":     "and(not(p), q)",
	"~(p&q)":   "not(and(p, q))",
	"(p&q)&r":  "and(and(p, q), r)",
	"0>p":      "implies(#0, p)",
	"~(p&0)":   "not(and(p, #0))",
	"12|~3":    "or(#12, not(#3))",
	"":         "",
	"p&":       "",
	"&p":       "",
	"p q":      "",
	"pq":       "",
	"P":        "",
	"(p":       "",
	"p)":       "",
	"()":       "",
	"~":        "",
	"p$q":      "",
	"p0":       "",
	"(p&q)(r)": "",
}

func TestParse(t *testing.T) {
	for expr, expected := range exprToFormula {
		f, err := Parse(expr)
		if expected == "" {
			assert.Error(t, err, "expression %q should not parse, got %v", expr, f)
			continue
		}
		if assert.NoError(t, err, "could not parse expression %q", expr) {
			assert.Equal(t, expected, f.String(), "formula for expression %q", expr)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("p&q)")
	require.Error(t, err)
	assert.Equal(t, `unexpected token ")" at column 4`, err.Error())
}

func TestRefs(t *testing.T) {
	tests := map[string]int{
		"p":         -1,
		"~p&q":      -1,
		"0":         0,
		"3|~(p&12)": 12,
		"(1+2)<p":   2,
	}
	for expr, expected := range tests {
		f, err := Parse(expr)
		require.NoError(t, err)
		assert.Equal(t, expected, Refs(f), "highest reference in %q", expr)
	}
}

func ExampleParse() {
	f, err := Parse("~(p&q) < (~p|~q)")
	if err != nil {
		fmt.Printf("Could not parse expression: %v", err)
		return
	}
	fmt.Println(f)
	fmt.Println(f.Eval(Bindings{'p': true, 'q': false}))
	// Output:
	// eq(not(and(p, q)), or(not(p), not(q)))
	// true
}
