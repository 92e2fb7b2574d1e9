package search

import "strings"

// Stop words filtered out of queries before keyword matching. Date terms are
// included because they are resolved separately into a target date.
var stopWords = map[string]bool{
	"who": true, "is": true, "the": true, "a": true, "an": true, "at": true,
	"in": true, "on": true, "what": true, "do": true, "i": true, "have": true,
	"my": true, "me": true, "to": true, "of": true, "for": true, "with": true,
	"about": true, "does": true, "find": true, "show": true, "tell": true,
	"list": true, "any": true, "connection": true, "connections": true,
	"person": true, "people": true, "know": true, "knows": true,
	"today": true, "tomorrow": true, "yesterday": true,
	"sunday": true, "monday": true, "tuesday": true, "wednesday": true,
	"thursday": true, "friday": true, "saturday": true,
}

const punctuation = ".,!?;:'\"()[]{}"

// tokenize splits text into words, lowercases, and trims punctuation.
// Empty tokens are dropped; stop words are kept.
func tokenize(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.Trim(word, punctuation)
		if cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}

	return tokens
}

// filterStopWords removes stop words from a token list.
func filterStopWords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !stopWords[token] {
			filtered = append(filtered, token)
		}
	}
	return filtered
}
