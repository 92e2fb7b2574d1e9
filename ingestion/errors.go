package ingestion

import "errors"

var (
	// ErrPersonRepositoryRequired is returned when a person repository is not provided.
	ErrPersonRepositoryRequired = errors.New("person repository required")

	// ErrNoteRepositoryRequired is returned when a note repository is not provided.
	ErrNoteRepositoryRequired = errors.New("note repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")
)
