package grammar

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/tliron/commonlog"
)

// log is looked up on each use, so that the backend chosen by the program applies.
func log() commonlog.Logger {
	return commonlog.GetLogger("gopherlogic.grammar")
}

// rules are checked in order; the first one matching anywhere in the input wins.
var rules = []struct {
	kind Kind
	re   *regexp.Regexp
}{
	{Digit, regexp.MustCompile(`[0-9]`)},
	{InvalidCharacter, regexp.MustCompile(`[^a-z()~&|+<>]`)},
	{MultiLetterAtom, regexp.MustCompile(`[a-z]{2,}`)},
	{InvalidGroupOpen, regexp.MustCompile(`\([^(~a-z]`)},
	{InvalidGroupClose, regexp.MustCompile(`[^a-z)]\)`)},
	{MisplacedNegation, regexp.MustCompile(`[a-z)]~|~$`)},
	{BinaryOperatorArity, regexp.MustCompile(`[^)a-z][&|+<>]|^[&|+<>]|[&|+<>][^a-z(~]|[&|+<>]$`)},
	{LetterParenAdjacency, regexp.MustCompile(`[a-z]\(|\)[a-z]|\)\(`)},
}

// A Formula is a validated, normalized formula.
type Formula struct {
	Source string // Normalized input, the root expression
	Tokenized
	Atoms []byte // Distinct atoms, sorted
}

// Normalize lowercases the input and strips every whitespace from it.
func Normalize(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, input)
}

// Validate normalizes the input and checks it against the grammar.
// On failure, the returned error is a *SyntaxError.
func Validate(input string) (*Formula, error) {
	src := Normalize(input)
	if src == "" {
		return nil, &SyntaxError{Kind: EmptyInput}
	}
	for _, rule := range rules {
		if sample := rule.re.FindString(src); sample != "" {
			return nil, &SyntaxError{Kind: rule.kind, Sample: sample}
		}
	}
	tok := Tokenize(src)
	if strings.ContainsAny(tok.Flat, "()") {
		return nil, &SyntaxError{Kind: UnbalancedParentheses}
	}
	log().Debugf("validated %q: flat %q, %d groups", src, tok.Flat, len(tok.Groups))
	return &Formula{Source: src, Tokenized: tok, Atoms: Atoms(src)}, nil
}

// Atoms returns the distinct lowercase letters of s, sorted.
func Atoms(s string) []byte {
	var seen [26]bool
	var res []byte
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' && !seen[c-'a'] {
			seen[c-'a'] = true
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
