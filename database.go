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


package rolodex

import (
	"io"
	"log/slog"

	"github.com/poiesic/rolodex/ai"
	"github.com/poiesic/rolodex/ai/openai"
	"github.com/poiesic/rolodex/ingestion"
	"github.com/poiesic/rolodex/reextract"
	"github.com/poiesic/rolodex/search"
	"github.com/poiesic/rolodex/storage"
	"github.com/poiesic/rolodex/storage/badger"
)

// Database bundles the storage backend, the repositories and the AI provider
// behind one handle. Callers build searchers and ingestion pipelines from it.
type Database struct {
	backend        *badger.Backend
	personRepo     storage.PersonRepository
	noteRepo       storage.NoteRepository
	checkpointRepo storage.CheckpointRepository
	provider       ai.AIProvider
	logger         *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig overrides the default AI provider configuration.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}
	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create person repository
	personRepo, err := badger.NewPersonRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create note repository
	noteRepo, err := badger.NewNoteRepository(backend)
	if err != nil {
		personRepo.Close()
		backend.Close()
		return nil, err
	}

	// Create checkpoint repository
	checkpointRepo := badger.NewCheckpointRepository(backend)

	// Create AI provider with configured settings
	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		noteRepo.Close()
		personRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:        backend,
		personRepo:     personRepo,
		noteRepo:       noteRepo,
		checkpointRepo: checkpointRepo,
		provider:       provider,
		logger:         slog.Default(),
	}, nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}

	// Close repositories
	if err := db.noteRepo.Close(); err != nil {
		db.logger.Error("error closing note repository", "err", err)
		return err
	}
	if err := db.personRepo.Close(); err != nil {
		db.logger.Error("error closing person repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) PersonRepository() storage.PersonRepository {
	return db.personRepo
}

func (db *Database) NoteRepository() storage.NoteRepository {
	return db.noteRepo
}

func (db *Database) CheckpointRepository() storage.CheckpointRepository {
	return db.checkpointRepo
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.personRepo, db.noteRepo, db.provider, opts...)
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(db.personRepo, db.noteRepo, opts...)
}

// NewReextractor builds a maintenance job that re-runs fact extraction over
// every stored note.
func (db *Database) NewReextractor(config *reextract.Config, progress io.Writer) *reextract.Reextractor {
	return reextract.NewReextractor(db.noteRepo, db.checkpointRepo, db.provider.FactExtractor(), config, progress)
}
