package childes

import (
	"iter"
	"strings"
	"unicode"
)

// DefaultIgnore is the default set of substrings stripped from token edges
// by Tokenize and skipped entirely by WordMLU.
var DefaultIgnore = []string{",", ".", "?", "!", "(.)", "[?]"}

// Tokenize splits text into whitespace-delimited tokens and repeatedly
// strips ignore-substrings from their edges. A nil ignore list means
// DefaultIgnore. Tokens that end up empty or contain no alphanumeric
// character are dropped.
//
// The returned sequence is lazy and can be ranged over multiple times.
func Tokenize(text string, ignore []string) iter.Seq[string] {
	if ignore == nil {
		ignore = DefaultIgnore
	}
	return func(yield func(string) bool) {
		for _, raw := range strings.Fields(text) {
			tok := stripEdges(raw, ignore)
			if tok == "" || !hasAlnum(tok) {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// stripEdges removes ignore-substrings from both ends of tok until no
// substring matches either edge or the token is exhausted.
func stripEdges(tok string, ignore []string) string {
	for changed := true; changed && tok != ""; {
		changed = false
		for _, ign := range ignore {
			if strings.HasPrefix(tok, ign) {
				tok = tok[len(ign):]
				changed = true
			}
			if strings.HasSuffix(tok, ign) {
				tok = tok[:len(tok)-len(ign)]
				changed = true
			}
		}
	}
	return tok
}

func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
