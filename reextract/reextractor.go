// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package reextract

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/rolodex/ai"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

// JobType identifies the reextraction job in the checkpoint store.
const JobType = "reextract"

// Config holds configuration for the reextraction operation.
type Config struct {
	// BatchSize is the number of notes to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of notes)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// Resume continues from the last saved checkpoint instead of starting over
	Resume bool

	// Clock anchors relative dates during extraction. Nil means time.Now.
	Clock func() time.Time
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reextractor orchestrates re-running fact extraction over all notes in a
// database. Progress is checkpointed after every batch so an interrupted run
// can resume.
type Reextractor struct {
	noteRepo    storage.NoteRepository
	checkpoints storage.CheckpointRepository
	config      *Config
	progress    io.Writer
	processor   *BatchProcessor
	iterator    *NoteIterator
}

// NewReextractor creates a new reextractor.
// progress: where to write progress output (typically os.Stderr)
func NewReextractor(
	noteRepo storage.NoteRepository,
	checkpoints storage.CheckpointRepository,
	extractor ai.FactExtractor,
	config *Config,
	progress io.Writer,
) *Reextractor {
	if config == nil {
		config = DefaultConfig()
	}

	processor := NewBatchProcessor(noteRepo, extractor, config.Clock, config.MaxRetries, config.RetryDelay)
	iterator := NewNoteIterator(noteRepo, config.BatchSize)

	return &Reextractor{
		noteRepo:    noteRepo,
		checkpoints: checkpoints,
		config:      config,
		progress:    progress,
		processor:   processor,
		iterator:    iterator,
	}
}

// Run executes the reextraction operation. All notes in the database are
// re-extracted with the configured extractor; with Resume set, notes already
// covered by the saved checkpoint are skipped.
func (r *Reextractor) Run(ctx context.Context) error {
	var after core.ID
	if r.config.Resume {
		checkpoint, err := r.checkpoints.LoadCheckpoint(ctx, JobType)
		if err != nil {
			return fmt.Errorf("failed to load checkpoint: %w", err)
		}
		if checkpoint != nil {
			after = checkpoint.LastProcessedId
			fmt.Fprintf(r.progress, "Resuming after note %d\n", after)
		}
	}

	// Count remaining notes up front for progress reporting
	allNotes, err := r.noteRepo.GetAllNotes(ctx)
	if err != nil {
		return fmt.Errorf("failed to query notes: %w", err)
	}
	total := 0
	for _, note := range allNotes {
		if note.Id > after {
			total++
		}
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No notes to process (0 notes)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting reextraction of %d notes (batch size: %d)\n",
		total, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, total, r.config.ReportInterval)
	tracker.Start()

	processed := 0

	err = r.iterator.ForEach(ctx, after, func(notes []*core.Note) error {
		if err := r.processor.Process(ctx, notes); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		// Checkpoint the batch so an interrupted run resumes past it
		last := notes[len(notes)-1].Id
		if err := r.checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
			JobType:         JobType,
			LastProcessedId: last,
		}); err != nil {
			return fmt.Errorf("failed to save checkpoint: %w", err)
		}

		processed += len(notes)
		tracker.Update(processed)

		return nil
	})

	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reextraction complete. Processed %d notes in %v (%.1f notes/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}
