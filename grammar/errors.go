package grammar

import "fmt"

// Kind identifies which rule a rejected formula violates.
type Kind int

// Kinds of syntax errors, in the order rules are checked.
const (
	EmptyInput Kind = iota
	Digit
	InvalidCharacter
	MultiLetterAtom
	InvalidGroupOpen
	InvalidGroupClose
	MisplacedNegation
	BinaryOperatorArity
	LetterParenAdjacency
	UnbalancedParentheses
)

var kindNames = [...]string{
	EmptyInput:            "EmptyInput",
	Digit:                 "Digit",
	InvalidCharacter:      "InvalidCharacter",
	MultiLetterAtom:       "MultiLetterAtom",
	InvalidGroupOpen:      "InvalidGroupOpen",
	InvalidGroupClose:     "InvalidGroupClose",
	MisplacedNegation:     "MisplacedNegation",
	BinaryOperatorArity:   "BinaryOperatorArity",
	LetterParenAdjacency:  "LetterParenAdjacency",
	UnbalancedParentheses: "UnbalancedParentheses",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

var kindMessages = [...]string{
	EmptyInput:            "input cannot be empty",
	Digit:                 "input cannot contain digits",
	InvalidCharacter:      "input cannot contain unallowed characters",
	MultiLetterAtom:       "every simple proposition can only be represented by a single letter",
	InvalidGroupOpen:      "a group can only begin with: ( ~ or letter",
	InvalidGroupClose:     "a group can only end with: ) or letter",
	MisplacedNegation:     "~ operator cannot appear between two propositions or at the end",
	BinaryOperatorArity:   "binary operators can only have 2 operands",
	LetterParenAdjacency:  "parentheses cannot be adjacent to letters or other groups: a( or )a or )(",
	UnbalancedParentheses: "input cannot contain unmatched parentheses",
}

// A SyntaxError reports why a formula was rejected.
// Sample is the leftmost substring of the normalized input violating the rule.
// It is empty for EmptyInput and UnbalancedParentheses.
type SyntaxError struct {
	Kind   Kind
	Sample string
}

func (e *SyntaxError) Error() string {
	if e.Sample == "" {
		return kindMessages[e.Kind]
	}
	return fmt.Sprintf("%s (ex. %q)", kindMessages[e.Kind], e.Sample)
}

// Is makes errors.Is(err, &SyntaxError{Kind: k}) match any error of kind k.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Kind == e.Kind && (t.Sample == "" || t.Sample == e.Sample)
}
