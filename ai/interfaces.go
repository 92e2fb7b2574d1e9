package ai

import (
	"context"
	"time"
)

// FactExtractor extracts structured facts from free-form note text.
// Implementations must be thread-safe for concurrent use.
type FactExtractor interface {
	// ExtractFacts analyzes note text and extracts meetings, action items,
	// connections, network mentions, and entities. The now parameter anchors
	// relative date references in the text ("tomorrow", "Friday").
	// Only facts explicitly stated in the text are extracted.
	// Returns empty fact lists if nothing is found.
	// Returns an error if extraction fails.
	ExtractFacts(ctx context.Context, text string, now time.Time) (*ExtractedFacts, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages FactExtractor instances, ensuring they share
// configuration and resources appropriately.
type AIProvider interface {
	// FactExtractor returns the fact extraction service.
	// The returned FactExtractor is safe for concurrent use.
	FactExtractor() FactExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
