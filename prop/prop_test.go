package prop

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refModel binds atoms through Bindings and subformulas through a slice.
type refModel struct {
	Bindings
	refs []bool
}

func (m refModel) Ref(key int) bool { return m.refs[key] }

func TestConnectives(t *testing.T) {
	p, q := Var('p'), Var('q')
	tests := []struct {
		f        Formula
		expected [4]bool // for (p,q) = TT, TF, FT, FF
	}{
		{Not(p), [4]bool{false, false, true, true}},
		{And(p, q), [4]bool{true, false, false, false}},
		{Or(p, q), [4]bool{true, true, true, false}},
		{Xor(p, q), [4]bool{false, true, true, false}},
		{Implies(p, q), [4]bool{true, false, true, true}},
		{Eq(p, q), [4]bool{true, false, false, true}},
	}
	for _, test := range tests {
		for i, b := range []Bindings{
			{'p': true, 'q': true},
			{'p': true, 'q': false},
			{'p': false, 'q': true},
			{'p': false, 'q': false},
		} {
			assert.Equal(t, test.expected[i], test.f.Eval(b), "%s under %v", test.f, b)
		}
	}
}

func TestEvalRefs(t *testing.T) {
	f, err := Parse("~0&(p|1)")
	require.NoError(t, err)
	m := refModel{Bindings: Bindings{'p': false}, refs: []bool{false, true}}
	assert.True(t, f.Eval(m))
	m.refs[1] = false
	assert.False(t, f.Eval(m))
}

func TestEvalMissingBinding(t *testing.T) {
	assert.Panics(t, func() { Var('z').Eval(Bindings{'p': true}) })
	assert.Panics(t, func() { Ref(0).Eval(Bindings{}) })
}

func TestString(t *testing.T) {
	f := And(Or(Var('a'), Not(Var('b'))), Not(Var('c')), Ref(2))
	const expected = "and(or(a, not(b)), not(c), #2)"
	assert.Equal(t, expected, f.String())
}

// toExpr translates f into the expr language, so that it can be used as an oracle.
func toExpr(f Formula) string {
	switch f := f.(type) {
	case atom:
		return f.String()
	case not:
		return "!(" + toExpr(f[0]) + ")"
	case and:
		return "(" + joinExpr(f, " && ") + ")"
	case or:
		return "(" + joinExpr(f, " || ") + ")"
	case xor:
		return "(" + joinExpr(f[:], " != ") + ")"
	case implies:
		return "(!" + toExpr(f[0]) + " || " + toExpr(f[1]) + ")"
	case eq:
		return "(" + joinExpr(f[:], " == ") + ")"
	default:
		panic("unexpected formula " + f.String())
	}
}

func joinExpr(subs []Formula, sep string) string {
	strs := make([]string, len(subs))
	for i, sub := range subs {
		strs[i] = toExpr(sub)
	}
	return strings.Join(strs, sep)
}

// randomExpr generates a random flat expression over p, q and r.
func randomExpr(rng *rand.Rand, depth int) string {
	const atoms, ops = "pqr", "&|+><"
	var sb strings.Builder
	terms := 1 + rng.Intn(3)
	for i := 0; i < terms; i++ {
		if i > 0 {
			sb.WriteByte(ops[rng.Intn(len(ops))])
		}
		if rng.Intn(3) == 0 {
			sb.WriteByte('~')
		}
		if depth > 0 && rng.Intn(2) == 0 {
			sb.WriteString("(" + randomExpr(rng, depth-1) + ")")
		} else {
			sb.WriteByte(atoms[rng.Intn(len(atoms))])
		}
	}
	return sb.String()
}

func TestEvalAgainstExpr(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		src := randomExpr(rng, 3)
		f, err := Parse(src)
		require.NoError(t, err, "could not parse %q", src)
		env := map[string]any{"p": false, "q": false, "r": false}
		program, err := expr.Compile(toExpr(f), expr.Env(env), expr.AsBool())
		require.NoError(t, err, "could not compile %q", toExpr(f))
		for bits := 0; bits < 8; bits++ {
			p, q, r := bits&4 != 0, bits&2 != 0, bits&1 != 0
			out, err := expr.Run(program, map[string]any{"p": p, "q": q, "r": r})
			require.NoError(t, err)
			b := Bindings{'p': p, 'q': q, 'r': r}
			assert.Equal(t, out, f.Eval(b), "%q under %v", src, b)
		}
	}
}

// A few hand-checked formulas exercising left associativity.
func TestEvalLeftAssociative(t *testing.T) {
	tests := []struct {
		src      string
		b        Bindings
		expected bool
	}{
		{"p|q&r", Bindings{'p': true, 'q': true, 'r': false}, false},
		{"p&q|r", Bindings{'p': false, 'q': true, 'r': true}, true},
		{"p>q>r", Bindings{'p': false, 'q': false, 'r': false}, false},
		{"p<q<r", Bindings{'p': false, 'q': false, 'r': false}, false},
		{"p+q+r", Bindings{'p': true, 'q': true, 'r': true}, true},
	}
	for _, test := range tests {
		f, err := Parse(test.src)
		require.NoError(t, err)
		assert.Equal(t, test.expected, f.Eval(test.b), "%q under %v", test.src, test.b)
	}
}
