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

	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

const (
	// DefaultBatchSize is the default number of notes to process in each batch
	DefaultBatchSize = 100
)

// NoteIterator iterates over notes in ID order, in batches.
type NoteIterator struct {
	repo      storage.NoteRepository
	batchSize int
}

// NewNoteIterator creates a new note iterator.
// batchSize: number of notes to process in each batch (must be > 0)
func NewNoteIterator(repo storage.NoteRepository, batchSize int) *NoteIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &NoteIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all notes with an ID above after, calling fn for each
// batch. Notes arrive in ascending ID order, so after acts as a resume point.
// Iteration stops on first error from fn or when all notes are processed.
// Context cancellation is checked between batches.
func (it *NoteIterator) ForEach(ctx context.Context, after core.ID, fn func([]*core.Note) error) error {
	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	notes, err := it.repo.GetAllNotes(ctx)
	if err != nil {
		return err
	}

	// Skip notes at or below the resume point
	start := 0
	for start < len(notes) && notes[start].Id <= after {
		start++
	}
	notes = notes[start:]

	if len(notes) == 0 {
		// Nothing to process
		return nil
	}

	for i := 0; i < len(notes); i += it.batchSize {
		end := i + it.batchSize
		if end > len(notes) {
			end = len(notes)
		}

		if err := fn(notes[i:end]); err != nil {
			return err
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}
