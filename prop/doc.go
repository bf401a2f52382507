// Package prop represents and evaluates propositional formulas.
//
// Formulas are built from single-letter atoms, references to already evaluated
// subformulas, and six connectors: negation, conjunction, disjunction, exclusive
// disjunction, implication and equivalence.
//
// For example, the following formula, where 0 refers to a subformula evaluated beforehand:
//
// ~p & 0 > q
//
// Will be parsed as the following tree, binary operators being left-associative
// and sharing the same priority:
//
// implies(and(not(p), #0), q)
//
// The value of a formula depends on a Model, giving the current binding of every atom
// and the value of every referenced subformula.
package prop
