package search

import (
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
)

const (
	// Maximum edit distance for a fuzzy hit.
	fuzzyDistanceThreshold = 2
	// Terms shorter than this only match by substring, since tiny terms are
	// within edit distance of almost anything.
	fuzzyMinTermLength = 4
)

// isMatch reports whether term hits text, either by substring containment or,
// for terms of at least fuzzyMinTermLength characters, by Levenshtein
// distance within the threshold. Both arguments must already be lower-cased.
func isMatch(text, term string) bool {
	if strings.Contains(text, term) {
		return true
	}
	if utf8.RuneCountInString(term) < fuzzyMinTermLength {
		return false
	}
	return smetrics.WagnerFischer(text, term, 1, 1, 1) <= fuzzyDistanceThreshold
}
