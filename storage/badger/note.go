package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

// NoteRepository implements storage.NoteRepository for BadgerDB.
type NoteRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.NoteRepository = (*NoteRepository)(nil)

// NewNoteRepository creates a new NoteRepository.
func NewNoteRepository(backend *Backend) (*NoteRepository, error) {
	idSeq, err := backend.GetSequence(noteIDSeq)
	if err != nil {
		return nil, err
	}

	return &NoteRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *NoteRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *NoteRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddNotes adds one or more notes to storage.
func (r *NoteRepository) AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			if note.Id == 0 {
				nextID, err := r.nextID()
				if err != nil {
					return err
				}
				note.Id = nextID
			}

			if note.InsertedAt.IsZero() {
				note.InsertedAt = time.Now().UTC()
			}
			note.UpdatedAt = note.InsertedAt

			// Store primary record
			key := makeNoteKey(note.Id)
			value := storage.MarshalNote(note)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update person index
			indexKey := makeNotePersonKey(note.PersonId, note.Id)
			if err := tx.Set(indexKey, storage.MarshalID(note.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// UpdateNotes updates existing notes.
func (r *NoteRepository) UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, note := range notes {
			key := makeNoteKey(note.Id)

			// Read old record to detect changes
			old, err := readNote(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			note.UpdatedAt = time.Now().UTC()

			value := storage.MarshalNote(note)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Reindex if the note moved to another person
			if old.PersonId != note.PersonId {
				oldIndexKey := makeNotePersonKey(old.PersonId, old.Id)
				if err := tx.Delete(oldIndexKey); err != nil {
					return err
				}
				newIndexKey := makeNotePersonKey(note.PersonId, note.Id)
				if err := tx.Set(newIndexKey, storage.MarshalID(note.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return notes, err
}

// DeleteNotes removes notes by their IDs.
func (r *NoteRepository) DeleteNotes(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeNoteKey(id)

			// Read record to get metadata for index cleanup
			note, err := readNote(tx, key)
			if err != nil {
				return err
			}
			if note == nil {
				return storage.ErrNotFound
			}

			indexKey := makeNotePersonKey(note.PersonId, note.Id)
			if err := tx.Delete(indexKey); err != nil {
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetNote retrieves a single note by ID.
func (r *NoteRepository) GetNote(ctx context.Context, id core.ID) (*core.Note, error) {
	var result *core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeNoteKey(id)
		var err error
		result, err = readNote(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetNotesByPerson retrieves all notes belonging to a person, ordered by ID.
func (r *NoteRepository) GetNotesByPerson(ctx context.Context, personID core.ID) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		results, err = r.readNotesByPerson(tx, personID, results)
		return err
	}, false)
	return results, err
}

// GetNotesByPersons retrieves all notes belonging to any of the given persons,
// ordered by person then note ID.
func (r *NoteRepository) GetNotesByPersons(ctx context.Context, personIDs ...core.ID) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, personID := range personIDs {
			var err error
			results, err = r.readNotesByPerson(tx, personID, results)
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	return results, err
}

// GetAllNotes retrieves every stored note, ordered by ID.
func (r *NoteRepository) GetAllNotes(ctx context.Context) ([]*core.Note, error) {
	var results []*core.Note
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(noteRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var note *core.Note
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				note, unmarshalErr = storage.UnmarshalNote(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if note != nil {
				results = append(results, note)
			}
		}
		return nil
	}, false)
	return results, err
}

// readNotesByPerson scans the person index and appends the referenced notes.
func (r *NoteRepository) readNotesByPerson(tx *badger.Txn, personID core.ID, results []*core.Note) ([]*core.Note, error) {
	startKey := makePartialNotePersonKey(personID)
	iter := tx.NewIterator(badger.DefaultIteratorOptions)
	defer iter.Close()

	for iter.Seek(startKey); iter.Valid(); iter.Next() {
		key := iter.Item().Key()
		// Check if key still has our personID prefix
		if len(key) < len(startKey) {
			break
		}
		if slices.Compare(key[:len(startKey)], startKey) != 0 {
			break
		}

		// Read the noteID from the index
		var noteID core.ID
		err := iter.Item().Value(func(val []byte) error {
			var err error
			noteID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return nil, err
		}

		// Look up the full record
		note, err := readNote(tx, makeNoteKey(noteID))
		if err != nil {
			return nil, err
		}
		if note != nil {
			results = append(results, note)
		}
	}
	return results, nil
}

// nextID draws the next ID from the sequence.
// BadgerDB sequences can return 0 on first call, so we skip it.
func (r *NoteRepository) nextID() (core.ID, error) {
	nextID, err := r.idSeq.Next()
	if err != nil {
		return 0, err
	}
	if nextID == 0 {
		nextID, err = r.idSeq.Next()
		if err != nil {
			return 0, err
		}
	}
	return core.ID(nextID), nil
}

// readNote reads a note record from the transaction.
// Returns nil, nil if the key does not exist.
func readNote(tx *badger.Txn, key []byte) (*core.Note, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var note *core.Note
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		note, unmarshalErr = storage.UnmarshalNote(val)
		return unmarshalErr
	})
	return note, err
}
