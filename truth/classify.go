package truth

import "fmt"

// Class is the type of a formula, deduced from its truth table.
type Class int

const (
	// Tautology means the formula is true under every assignment.
	Tautology Class = iota
	// Contradiction means the formula is false under every assignment.
	Contradiction
	// Contingent means the formula is true under some assignments and false under others.
	Contingent
)

func (c Class) String() string {
	switch c {
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	case Contingent:
		return "contingent"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Description is a human-readable label for c.
func (c Class) Description() string {
	switch c {
	case Tautology:
		return "valid (tautology, also satisfiable)"
	case Contradiction:
		return "contradiction (unsatisfiable)"
	case Contingent:
		return "contingent (also satisfiable)"
	default:
		return c.String()
	}
}

// Satisfiable is true if at least one assignment makes the formula true.
func (c Class) Satisfiable() bool {
	return c == Tautology || c == Contingent
}

// Classify returns the class of a formula given its values under all assignments.
// It panics if results is empty.
func Classify(results []bool) Class {
	if len(results) == 0 {
		panic("cannot classify an empty column")
	}
	var nbTrue int
	for _, b := range results {
		if b {
			nbTrue++
		}
	}
	switch nbTrue {
	case len(results):
		return Tautology
	case 0:
		return Contradiction
	default:
		return Contingent
	}
}
