package prop

import (
	"fmt"
	"strconv"
	"strings"
)

// A Formula is any kind of propositional formula.
type Formula interface {
	String() string
	Eval(m Model) bool
}

// A Model binds atoms and subformula references to a truth value.
type Model interface {
	Atom(name byte) bool
	Ref(key int) bool
}

// Bindings is a Model for formulas without references.
type Bindings map[byte]bool

// Atom returns the binding of name. It panics if name is not bound.
func (b Bindings) Atom(name byte) bool {
	v, ok := b[name]
	if !ok {
		panic(fmt.Errorf("model lacks binding for atom %c", name))
	}
	return v
}

// Ref always panics: Bindings cannot hold subformulas.
func (b Bindings) Ref(key int) bool {
	panic(fmt.Errorf("model lacks binding for subformula #%d", key))
}

// Var generates an atomic proposition.
func Var(name byte) Formula {
	return atom(name)
}

type atom byte

func (a atom) String() string    { return string(rune(a)) }
func (a atom) Eval(m Model) bool { return m.Atom(byte(a)) }

// Ref generates a reference to the subformula with the given key.
func Ref(key int) Formula {
	return ref(key)
}

type ref int

func (r ref) String() string    { return "#" + strconv.Itoa(int(r)) }
func (r ref) Eval(m Model) bool { return m.Ref(int(r)) }

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) String() string {
	return "not(" + n[0].String() + ")"
}

func (n not) Eval(m Model) bool {
	return !n[0].Eval(m)
}

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) String() string {
	return "and(" + join(a) + ")"
}

func (a and) Eval(m Model) (res bool) {
	for i, s := range a {
		b := s.Eval(m)
		if i == 0 {
			res = b
		} else {
			res = res && b
		}
	}
	return
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) String() string {
	return "or(" + join(o) + ")"
}

func (o or) Eval(m Model) (res bool) {
	for i, s := range o {
		b := s.Eval(m)
		if i == 0 {
			res = b
		} else {
			res = res || b
		}
	}
	return
}

// Xor indicates exactly one of the two given subformulas is true.
func Xor(f1, f2 Formula) Formula {
	return xor{f1, f2}
}

type xor [2]Formula

func (x xor) String() string {
	return "xor(" + join(x[:]) + ")"
}

func (x xor) Eval(m Model) bool {
	return x[0].Eval(m) != x[1].Eval(m)
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return implies{f1, f2}
}

type implies [2]Formula

func (i implies) String() string {
	return "implies(" + join(i[:]) + ")"
}

func (i implies) Eval(m Model) bool {
	return !i[0].Eval(m) || i[1].Eval(m)
}

// Eq indicates a subformula is equivalent to another one.
func Eq(f1, f2 Formula) Formula {
	return eq{f1, f2}
}

type eq [2]Formula

func (e eq) String() string {
	return "eq(" + join(e[:]) + ")"
}

func (e eq) Eval(m Model) bool {
	return e[0].Eval(m) == e[1].Eval(m)
}

func join(subs []Formula) string {
	strs := make([]string, len(subs))
	for i, f := range subs {
		strs[i] = f.String()
	}
	return strings.Join(strs, ", ")
}

// Refs returns the highest subformula key referenced by f, or -1 if f references none.
func Refs(f Formula) int {
	highest := -1
	visit := func(sub Formula) {
		if r := Refs(sub); r > highest {
			highest = r
		}
	}
	switch f := f.(type) {
	case ref:
		return int(f)
	case not:
		visit(f[0])
	case and:
		for _, sub := range f {
			visit(sub)
		}
	case or:
		for _, sub := range f {
			visit(sub)
		}
	case xor:
		visit(f[0])
		visit(f[1])
	case implies:
		visit(f[0])
		visit(f[1])
	case eq:
		visit(f[0])
		visit(f[1])
	}
	return highest
}
