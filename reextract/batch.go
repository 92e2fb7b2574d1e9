package reextract

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/rolodex/ai"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/ingestion"
	"github.com/poiesic/rolodex/storage"
)

// BatchProcessor re-runs fact extraction for batches of notes.
type BatchProcessor struct {
	repo           storage.NoteRepository
	extractor      ai.FactExtractor
	clock          func() time.Time
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// clock anchors relative dates during extraction; pass nil for time.Now.
// maxRetries: maximum number of retry attempts for extraction API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.NoteRepository, extractor ai.FactExtractor, clock func() time.Time, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	if clock == nil {
		clock = time.Now
	}
	return &BatchProcessor{
		repo:           repo,
		extractor:      extractor,
		clock:          clock,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process re-extracts facts for a batch of notes and updates them in the
// database. Each note is extracted individually with retry; the whole batch
// is written back in one update.
func (bp *BatchProcessor) Process(ctx context.Context, notes []*core.Note) error {
	if len(notes) == 0 {
		return nil
	}

	for _, note := range notes {
		var facts *ai.ExtractedFacts
		err := RetryWithBackoff(ctx, func() error {
			var err error
			facts, err = bp.extractor.ExtractFacts(ctx, note.RawText, bp.clock())
			return err
		}, bp.maxRetries, bp.retryBaseDelay)

		if err != nil {
			return fmt.Errorf("failed to extract facts for note %d after %d attempts: %w", note.Id, bp.maxRetries, err)
		}

		ingestion.ApplyFacts(note, facts)
	}

	if _, err := bp.repo.UpdateNotes(ctx, notes...); err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}

	return nil
}
