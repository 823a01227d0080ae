// Package labels derives short keyword label sets from task titles.
package labels

import (
	"regexp"
	"strings"
)

// Max is the cap on auto-derived labels per title.
const Max = 5

// A word is a run of at least three letters, digits or hyphens. \p{L} keeps
// Cyrillic and other non-ASCII alphabets in scope.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}-]{3,}`)

// Derive extracts up to Max lower-cased keywords from a title, deduplicated
// by value, preserving first-seen order. An empty title yields nil.
func Derive(title string) []string {
	words := wordRe.FindAllString(title, -1)
	if len(words) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, Max)
	for _, w := range words {
		w = strings.ToLower(w)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
		if len(out) >= Max {
			break
		}
	}
	return out
}
