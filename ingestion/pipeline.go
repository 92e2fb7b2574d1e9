package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/rolodex/ai"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

// Pipeline orchestrates the capture and enrichment of notes.
// It manages concurrent fact extraction on a worker pool.
type Pipeline struct {
	personRepository storage.PersonRepository
	noteRepository   storage.NoteRepository
	extractor        ai.FactExtractor
	pool             *ants.Pool
	clock            func() time.Time
	inFlight         sync.WaitGroup
	logger           *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent fact extraction.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithClock sets the time source used to anchor relative dates during
// extraction. Default is time.Now. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(p *Pipeline) error {
		if clock == nil {
			clock = time.Now
		}
		p.clock = clock
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	personRepository storage.PersonRepository,
	noteRepository storage.NoteRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if personRepository == nil {
		return nil, ErrPersonRepositoryRequired
	}
	if noteRepository == nil {
		return nil, ErrNoteRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		personRepository: personRepository,
		noteRepository:   noteRepository,
		extractor:        provider.FactExtractor(),
		pool:             pool,
		clock:            time.Now,
		logger:           slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IngestNote validates and stores a note for the given person, then extracts
// structured facts asynchronously. The returned note carries only the raw
// text; extracted fields appear once background extraction completes and the
// stored note is updated. Extraction errors are logged but never fail the
// ingestion.
func (p *Pipeline) IngestNote(ctx context.Context, personID core.ID, rawText string) (*core.Note, error) {
	// The person must exist before a note can reference them
	if _, err := p.personRepository.GetPerson(ctx, personID); err != nil {
		return nil, fmt.Errorf("loading person %d: %w", personID, err)
	}

	note := &core.Note{
		PersonId: personID,
		RawText:  rawText,
	}
	if err := core.ValidateNote(note); err != nil {
		return nil, err
	}

	added, err := p.noteRepository.AddNotes(ctx, note)
	if err != nil {
		return nil, err
	}
	note = added[0]

	p.inFlight.Add(1)
	task := func() {
		defer p.inFlight.Done()
		p.extractAndUpdate(note)
	}
	if err := p.pool.Submit(task); err != nil {
		// Pool unavailable; extract inline
		task()
	}

	return note, nil
}

// extractAndUpdate runs fact extraction for a stored note and writes the
// enriched note back. Runs on the worker pool with a background context so
// extraction survives the ingest request's cancellation.
func (p *Pipeline) extractAndUpdate(note *core.Note) {
	ctx := context.Background()

	facts, err := p.extractor.ExtractFacts(ctx, note.RawText, p.clock())
	if err != nil {
		p.logger.Error("error extracting facts", "noteId", note.Id, "err", err)
		return
	}

	enriched := *note
	ApplyFacts(&enriched, facts)

	if _, err := p.noteRepository.UpdateNotes(ctx, &enriched); err != nil {
		p.logger.Error("error updating note with extracted facts", "noteId", note.Id, "err", err)
	}
}

// Wait blocks until all in-flight fact extractions have finished.
func (p *Pipeline) Wait() {
	p.inFlight.Wait()
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
