package mock

import (
	"context"
	"strings"
	"time"

	"github.com/poiesic/rolodex/ai"
)

// MockFactExtractor is a test double for ai.FactExtractor.
// It allows custom behavior injection via function fields.
type MockFactExtractor struct {
	// ExtractFactsFunc is called by ExtractFacts if set.
	// If nil, uses default simple keyword extraction.
	ExtractFactsFunc func(ctx context.Context, text string, now time.Time) (*ai.ExtractedFacts, error)

	callCount int
}

// NewMockFactExtractor creates a mock fact extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockFactExtractor() *MockFactExtractor {
	return &MockFactExtractor{}
}

// ExtractFacts extracts simple mock facts from text.
// Default behavior: lowercases the first few words and records them as
// entity keywords, leaving the structured fact lists empty.
func (m *MockFactExtractor) ExtractFacts(ctx context.Context, text string, now time.Time) (*ai.ExtractedFacts, error) {
	m.callCount++

	if m.ExtractFactsFunc != nil {
		return m.ExtractFactsFunc(ctx, text, now)
	}

	words := strings.Fields(strings.ToLower(text))
	facts := &ai.ExtractedFacts{}
	for i, word := range words {
		if i >= 5 { // Limit to 5 keywords
			break
		}

		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word == "" {
			continue
		}

		facts.Entities.Keywords = append(facts.Entities.Keywords, word)
	}

	return facts, nil
}

// CallCount returns the number of times ExtractFacts was called.
func (m *MockFactExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockFactExtractor) Reset() {
	m.callCount = 0
	m.ExtractFactsFunc = nil
}
