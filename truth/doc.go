// Package truth builds the truth table of a propositional formula and classifies it.
//
// The table has one row per assignment of the formula's atoms, the first atom varying
// slowest and true coming before false. Its columns are the atoms, sorted, then every
// parenthesized group of the formula, innermost first, then the formula itself.
//
// For instance, the table of "(p&q)>p" is:
//
//	p | q | (p&q) | (p&q)>p
//	T | T |   T   |    T
//	T | F |   F   |    T
//	F | T |   F   |    T
//	F | F |   F   |    T
//
// and the formula is a tautology.
package truth
