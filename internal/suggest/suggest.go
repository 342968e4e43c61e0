// Package suggest finds the likely intended word for a misspelt name.
package suggest

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the option nearest to word by edit distance, if it is
// close enough to be a plausible typo. Options at the same distance are
// ranked by the length of the prefix they share with word, then by order.
func Closest(word string, options []string) (string, bool) {
	word = strings.ToLower(word)
	best, bestDist, bestPrefix := "", -1, 0
	for _, o := range options {
		lower := strings.ToLower(o)
		d := levenshtein.ComputeDistance(word, lower)
		prefix := commonPrefix(word, lower)
		if bestDist < 0 || d < bestDist || (d == bestDist && prefix > bestPrefix) {
			best, bestDist, bestPrefix = o, d, prefix
		}
	}
	if bestDist < 0 || bestDist > max(2, len(word)/3) {
		return "", false
	}
	return best, true
}

func commonPrefix(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// Unknown formats an error message for a value that is not one of options.
func Unknown(what, word string, options []string) error {
	if s, ok := Closest(word, options); ok {
		return fmt.Errorf("unknown %s %q, did you mean %q?", what, word, s)
	}
	return fmt.Errorf("unknown %s %q, expected one of: %s", what, word, strings.Join(options, ", "))
}
