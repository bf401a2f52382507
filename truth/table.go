package truth

import (
	"fmt"

	"github.com/crillab/gopherlogic/grammar"
	"github.com/crillab/gopherlogic/prop"
	"github.com/tliron/commonlog"
)

// log is looked up on each use, so that the backend chosen by the program applies.
func log() commonlog.Logger {
	return commonlog.GetLogger("gopherlogic.truth")
}

// A Table is the truth table of a formula.
// Each row holds the atom values, then the group values, then the formula value.
type Table struct {
	Source   string   // The formula, normalized
	Header   []string // Column labels
	Rows     [][]bool
	NbAtoms  int
	NbGroups int
}

// env is the Model seen by the formulas of a row:
// atoms come from the registry, refs holds the groups evaluated so far.
type env struct {
	*Registry
	refs []bool
}

func (e env) Ref(key int) bool {
	if key < 0 || key >= len(e.refs) {
		panic(fmt.Errorf("group #%d referenced before being evaluated", key))
	}
	return e.refs[key]
}

// compile parses every group of f, then its flat root.
func compile(f *grammar.Formula) (groups []prop.Formula, root prop.Formula, err error) {
	groups = make([]prop.Formula, len(f.Groups))
	for i, text := range f.Groups {
		g, err := prop.Parse(text)
		if err != nil {
			return nil, nil, fmt.Errorf("could not parse group %q: %w", text, err)
		}
		if r := prop.Refs(g); r >= i {
			panic(fmt.Errorf("group %q references group #%d", text, r))
		}
		groups[i] = g
	}
	root, err = prop.Parse(f.Flat)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse formula %q: %w", f.Flat, err)
	}
	if r := prop.Refs(root); r >= len(groups) {
		panic(fmt.Errorf("formula %q references unknown group #%d", f.Flat, r))
	}
	return groups, root, nil
}

// Generate builds the truth table of f, binding the atoms of reg for each row in turn.
// reg must hold exactly the atoms of f.
func Generate(f *grammar.Formula, reg *Registry) (*Table, error) {
	groups, root, err := compile(f)
	if err != nil {
		return nil, err
	}
	header := reg.Names()
	for key := range f.Groups {
		header = append(header, f.Expand(key))
	}
	header = append(header, f.Source)
	t := &Table{
		Source:   f.Source,
		Header:   header,
		Rows:     make([][]bool, 0, 1<<reg.Len()),
		NbAtoms:  reg.Len(),
		NbGroups: len(groups),
	}
	Enumerate(reg.Len(), func(_ int, values []bool) {
		reg.Assign(values)
		e := env{Registry: reg, refs: make([]bool, 0, len(groups))}
		for _, g := range groups {
			e.refs = append(e.refs, g.Eval(e))
		}
		row := make([]bool, 0, len(header))
		row = append(row, values...)
		row = append(row, e.refs...)
		row = append(row, root.Eval(e))
		t.Rows = append(t.Rows, row)
	})
	log().Debugf("generated %d rows of %d columns for %q", len(t.Rows), len(header), f.Source)
	return t, nil
}

// Column returns the values of the j-th column.
func (t *Table) Column(j int) []bool {
	col := make([]bool, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[j]
	}
	return col
}

// Results returns the values of the formula itself, i.e the last column.
func (t *Table) Results() []bool {
	return t.Column(len(t.Header) - 1)
}

// Class classifies the formula of the table.
func (t *Table) Class() Class {
	return Classify(t.Results())
}
