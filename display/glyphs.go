// Package display renders truth tables for humans and machines.
package display

import "strings"

var glyphs = strings.NewReplacer(
	"~", "¬",
	"&", " ∧ ",
	"|", " ∨ ",
	"+", " ⊕ ",
	">", " → ",
	"<", " ≡ ",
)

// Symbolize replaces the operators of a formula by their logical symbols,
// surrounding binary ones with spaces.
func Symbolize(formula string) string {
	return glyphs.Replace(formula)
}
