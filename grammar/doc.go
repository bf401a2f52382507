// Package grammar validates textual propositional formulas and splits them into groups.
//
// A formula uses single lowercase letters as atoms and the following operators:
//
// - "~" for a negation, written before its operand,
// - "&" for a conjunction,
// - "|" for a disjunction,
// - "+" for an exclusive disjunction,
// - ">" for an implication,
// - "<" for an equivalence.
//
// Parentheses group subformulas. Once validated, each parenthesized group (with the negation
// directly applied to it, if any) is replaced by a decimal key, innermost groups first,
// so that
//
// ~(p&(q|r))>p
//
// is tokenized into the flat formula "1>p" and the groups "(q|r)" (key 0) and "~(p&0)" (key 1).
package grammar
