package catalog

import (
	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// maxSuggestDistance bounds how far off a typo can be and still get a hint.
const maxSuggestDistance = 3

func fold(s string) string {
	return cases.Fold().String(s)
}

// MatchCategory returns the known category equal to input under case
// folding, so "museums" resolves to "Museums".
func (s *Store) MatchCategory(input string) (string, bool) {
	in := fold(input)
	for _, c := range s.categories {
		if fold(c) == in {
			return c, true
		}
	}
	return "", false
}

// Suggest returns the closest known category to input, if any is within
// maxSuggestDistance edits.
func (s *Store) Suggest(input string) (string, bool) {
	in := fold(input)
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range s.categories {
		d := levenshtein.ComputeDistance(in, fold(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
