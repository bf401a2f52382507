package truth

import (
	"errors"
	"fmt"

	"github.com/crillab/gopherlogic/grammar"
)

const (
	// DefaultMaxAtoms is the maximum number of atoms Analyze accepts unless told otherwise.
	DefaultMaxAtoms = 16
	// MaxAtoms is the number of distinct letters, hence of possible atoms.
	MaxAtoms = 26
)

// ErrTooManyAtoms is returned when a formula has more atoms than allowed.
var ErrTooManyAtoms = errors.New("too many atoms")

type options struct {
	maxAtoms int
}

// An Option configures Analyze.
type Option func(*options)

// WithMaxAtoms sets the maximum number of atoms of a formula.
// Values outside [1, MaxAtoms] are clamped.
func WithMaxAtoms(n int) Option {
	return func(o *options) {
		switch {
		case n < 1:
			o.maxAtoms = 1
		case n > MaxAtoms:
			o.maxAtoms = MaxAtoms
		default:
			o.maxAtoms = n
		}
	}
}

// Analyze validates the input formula and builds its truth table.
// Syntax errors are returned as *grammar.SyntaxError.
func Analyze(input string, opts ...Option) (*Table, error) {
	o := options{maxAtoms: DefaultMaxAtoms}
	for _, opt := range opts {
		opt(&o)
	}
	f, err := grammar.Validate(input)
	if err != nil {
		return nil, err
	}
	if len(f.Atoms) > o.maxAtoms {
		return nil, fmt.Errorf("%w: %d atoms, at most %d allowed", ErrTooManyAtoms, len(f.Atoms), o.maxAtoms)
	}
	return Generate(f, NewRegistry(f.Atoms))
}
