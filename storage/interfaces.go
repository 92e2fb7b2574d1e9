package storage

import (
	"context"

	"github.com/poiesic/rolodex/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// PersonRepository provides operations for managing persons.
type PersonRepository interface {
	Repository
	// AddPersons adds one or more persons to storage.
	// For persons with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the persons with generated IDs and timestamps populated.
	AddPersons(ctx context.Context, persons ...*core.Person) ([]*core.Person, error)

	// UpdatePersons updates existing persons.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any person doesn't exist.
	UpdatePersons(ctx context.Context, persons ...*core.Person) ([]*core.Person, error)

	// DeletePersons removes persons by their IDs.
	// Returns ErrNotFound if any person doesn't exist.
	DeletePersons(ctx context.Context, ids ...core.ID) error

	// GetPerson retrieves a single person by ID.
	// Returns ErrNotFound if the person doesn't exist.
	GetPerson(ctx context.Context, id core.ID) (*core.Person, error)

	// GetPersons retrieves multiple persons by their IDs.
	// Returns only the persons that exist (no error for missing persons).
	GetPersons(ctx context.Context, ids ...core.ID) ([]*core.Person, error)

	// GetAllPersons retrieves every stored person, ordered by ID.
	GetAllPersons(ctx context.Context) ([]*core.Person, error)

	// Count returns the number of stored persons.
	Count(ctx context.Context) (int, error)
}

// NoteRepository provides operations for managing notes.
type NoteRepository interface {
	Repository
	// AddNotes adds one or more notes to storage.
	// For notes with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Maintains the note-by-person index.
	// Returns the notes with generated IDs and timestamps populated.
	AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// UpdateNotes updates existing notes.
	// Updates the UpdatedAt timestamp automatically.
	// Reindexes notes whose PersonId changed.
	// Returns ErrNotFound if any note doesn't exist.
	UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// DeleteNotes removes notes by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any note doesn't exist.
	DeleteNotes(ctx context.Context, ids ...core.ID) error

	// GetNote retrieves a single note by ID.
	// Returns ErrNotFound if the note doesn't exist.
	GetNote(ctx context.Context, id core.ID) (*core.Note, error)

	// GetNotesByPerson retrieves all notes belonging to a person, ordered by ID.
	GetNotesByPerson(ctx context.Context, personID core.ID) ([]*core.Note, error)

	// GetNotesByPersons retrieves all notes belonging to any of the given
	// persons, ordered by person then note ID.
	GetNotesByPersons(ctx context.Context, personIDs ...core.ID) ([]*core.Note, error)

	// GetAllNotes retrieves every stored note, ordered by ID.
	GetAllNotes(ctx context.Context) ([]*core.Note, error)
}

// CheckpointRepository persists progress markers for long-running jobs.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a job type.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a job type.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, jobType string) (*core.Checkpoint, error)
}
