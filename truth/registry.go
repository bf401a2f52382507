package truth

import (
	"fmt"
	"sort"
)

// An Atom is an atomic proposition and its current binding.
type Atom struct {
	Name  byte
	Value bool
}

// A Registry holds the atoms of a formula, sorted by name.
type Registry struct {
	atoms []*Atom
	index [26]*Atom
}

// NewRegistry creates a registry with one atom per distinct lowercase letter in names.
// Every atom is initially true.
func NewRegistry(names []byte) *Registry {
	var r Registry
	for _, name := range names {
		if name < 'a' || name > 'z' {
			panic(fmt.Errorf("invalid atom name %q", name))
		}
		if r.index[name-'a'] == nil {
			a := &Atom{Name: name, Value: true}
			r.index[name-'a'] = a
			r.atoms = append(r.atoms, a)
		}
	}
	sort.Slice(r.atoms, func(i, j int) bool { return r.atoms[i].Name < r.atoms[j].Name })
	return &r
}

// Len returns the number of atoms.
func (r *Registry) Len() int {
	return len(r.atoms)
}

// Atoms returns the atoms, sorted by name.
func (r *Registry) Atoms() []*Atom {
	return r.atoms
}

// Names returns the atom names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, len(r.atoms))
	for i, a := range r.atoms {
		names[i] = string(rune(a.Name))
	}
	return names
}

// Lookup returns the atom with the given name, or nil.
func (r *Registry) Lookup(name byte) *Atom {
	if name < 'a' || name > 'z' {
		return nil
	}
	return r.index[name-'a']
}

// Assign binds the i-th atom to values[i].
func (r *Registry) Assign(values []bool) {
	if len(values) != len(r.atoms) {
		panic(fmt.Errorf("got %d values for %d atoms", len(values), len(r.atoms)))
	}
	for i, a := range r.atoms {
		a.Value = values[i]
	}
}

// Values returns the current binding of every atom.
func (r *Registry) Values() []bool {
	values := make([]bool, len(r.atoms))
	for i, a := range r.atoms {
		values[i] = a.Value
	}
	return values
}

// Atom returns the current binding of name. It panics if there is no such atom.
func (r *Registry) Atom(name byte) bool {
	a := r.Lookup(name)
	if a == nil {
		panic(fmt.Errorf("registry lacks atom %q", name))
	}
	return a.Value
}
