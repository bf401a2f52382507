package grammar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	innermostGroup = regexp.MustCompile(`~?\([^()]*\)`)
	digitRun       = regexp.MustCompile(`[0-9]+`)
)

// Tokenized is a formula whose parenthesized groups were replaced by keys.
// Groups[k] is the text of the group with key k. It may reference groups
// with strictly smaller keys through their decimal representation.
type Tokenized struct {
	Flat   string
	Groups []string
}

// Tokenize repeatedly replaces innermost groups of s, optionally negated, by their key,
// until no innermost group remains.
// Every match gets its own key, even when its text repeats an earlier group.
// Unmatched parentheses are left untouched in the flat string.
func Tokenize(s string) Tokenized {
	var groups []string
	for pass := 0; ; pass++ {
		locs := innermostGroup.FindAllStringIndex(s, -1)
		if locs == nil {
			break
		}
		var sb strings.Builder
		prev := 0
		for _, loc := range locs {
			sb.WriteString(s[prev:loc[0]])
			sb.WriteString(strconv.Itoa(len(groups)))
			groups = append(groups, s[loc[0]:loc[1]])
			prev = loc[1]
		}
		sb.WriteString(s[prev:])
		s = sb.String()
		log().Debugf("tokenizer pass %d: %q", pass, s)
	}
	return Tokenized{Flat: s, Groups: groups}
}

// Expand returns the text of the group with the given key, with every reference
// replaced by the text it stands for.
// It panics if key is out of range or if a group references a key that is not
// strictly smaller than the one being expanded.
func (t Tokenized) Expand(key int) string {
	if key < 0 || key >= len(t.Groups) {
		panic(fmt.Errorf("invalid group key %d", key))
	}
	return t.expand(t.Groups[key], key)
}

// ExpandFlat reconstructs the full formula from the flat string.
func (t Tokenized) ExpandFlat() string {
	return t.expand(t.Flat, len(t.Groups))
}

// expand rewrites every digit run of s; all of them must be smaller than bound.
func (t Tokenized) expand(s string, bound int) string {
	return digitRun.ReplaceAllStringFunc(s, func(ref string) string {
		k, err := strconv.Atoi(ref)
		if err != nil || k >= bound {
			panic(fmt.Errorf("group reference %q is not below %d", ref, bound))
		}
		return t.expand(t.Groups[k], k)
	})
}
