package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

// PersonRepository implements storage.PersonRepository for BadgerDB.
type PersonRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.PersonRepository = (*PersonRepository)(nil)

// NewPersonRepository creates a new PersonRepository.
func NewPersonRepository(backend *Backend) (*PersonRepository, error) {
	idSeq, err := backend.GetSequence(personIDSeq)
	if err != nil {
		return nil, err
	}

	return &PersonRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *PersonRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *PersonRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddPersons adds one or more persons to storage.
func (r *PersonRepository) AddPersons(ctx context.Context, persons ...*core.Person) ([]*core.Person, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, person := range persons {
			if person.Id == 0 {
				nextID, err := r.nextID()
				if err != nil {
					return err
				}
				person.Id = nextID
			}

			if person.InsertedAt.IsZero() {
				person.InsertedAt = time.Now().UTC()
			}
			person.UpdatedAt = person.InsertedAt

			key := makePersonKey(person.Id)
			value := storage.MarshalPerson(person)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return persons, err
}

// UpdatePersons updates existing persons.
func (r *PersonRepository) UpdatePersons(ctx context.Context, persons ...*core.Person) ([]*core.Person, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, person := range persons {
			key := makePersonKey(person.Id)

			old, err := readPerson(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			person.UpdatedAt = time.Now().UTC()

			value := storage.MarshalPerson(person)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return persons, err
}

// DeletePersons removes persons by their IDs.
func (r *PersonRepository) DeletePersons(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makePersonKey(id)

			person, err := readPerson(tx, key)
			if err != nil {
				return err
			}
			if person == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetPerson retrieves a single person by ID.
func (r *PersonRepository) GetPerson(ctx context.Context, id core.ID) (*core.Person, error) {
	var result *core.Person
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makePersonKey(id)
		var err error
		result, err = readPerson(tx, key)
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

// GetPersons retrieves multiple persons by their IDs.
func (r *PersonRepository) GetPersons(ctx context.Context, ids ...core.ID) ([]*core.Person, error) {
	var result []*core.Person
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makePersonKey(id)
			person, err := readPerson(tx, key)
			if err != nil {
				return err
			}
			if person != nil {
				result = append(result, person)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetAllPersons retrieves every stored person, ordered by ID.
func (r *PersonRepository) GetAllPersons(ctx context.Context) ([]*core.Person, error) {
	var results []*core.Person
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(personRecordPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var person *core.Person
			err := iter.Item().Value(func(val []byte) error {
				var unmarshalErr error
				person, unmarshalErr = storage.UnmarshalPerson(val)
				return unmarshalErr
			})
			if err != nil {
				return err
			}
			if person != nil {
				results = append(results, person)
			}
		}
		return nil
	}, false)
	return results, err
}

// Count returns the number of stored persons.
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(personRecordPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// nextID draws the next ID from the sequence.
// BadgerDB sequences can return 0 on first call, so we skip it.
func (r *PersonRepository) nextID() (core.ID, error) {
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

// readPerson reads a person record from the transaction.
// Returns nil, nil if the key does not exist.
func readPerson(tx *badger.Txn, key []byte) (*core.Person, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var person *core.Person
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		person, unmarshalErr = storage.UnmarshalPerson(val)
		return unmarshalErr
	})
	return person, err
}
