// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.FactExtractor and
// ai.AIProvider for use in unit tests. The mocks allow tests to run without
// external AI service dependencies and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	facts, err := mockProvider.FactExtractor().ExtractFacts(ctx, "test", time.Now())
//
//	// Custom behavior injection
//	mockExtractor := mock.NewMockFactExtractor()
//	mockExtractor.ExtractFactsFunc = func(ctx context.Context, text string, now time.Time) (*ai.ExtractedFacts, error) {
//	    return &ai.ExtractedFacts{ActionItems: []string{"Follow up"}}, nil
//	}
//
//	// Check call counts
//	count := mockExtractor.CallCount()
//
// # Default Behavior
//
// MockFactExtractor records the first few words of the text as entity
// keywords and leaves the structured fact lists empty.
package mock
