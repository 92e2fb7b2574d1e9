package ingestion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/rolodex/ai"
	"github.com/poiesic/rolodex/ai/mock"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
	"github.com/poiesic/rolodex/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) (storage.PersonRepository, storage.NoteRepository) {
	t.Helper()

	personRepo, noteRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, personRepo.Close())
		require.NoError(t, noteRepo.Close())
		require.NoError(t, backend.Close())
	})
	return personRepo, noteRepo
}

func addTestPerson(t *testing.T, personRepo storage.PersonRepository) *core.Person {
	t.Helper()

	added, err := personRepo.AddPersons(context.Background(),
		&core.Person{FirstName: "Sarah", LastName: "Chen", Company: "Stripe"})
	require.NoError(t, err)
	return added[0]
}

func TestNewPipeline_RequiresDependencies(t *testing.T) {
	personRepo, noteRepo := newTestRepos(t)
	provider := mock.NewMockProvider()

	_, err := NewPipeline(nil, noteRepo, provider)
	assert.ErrorIs(t, err, ErrPersonRepositoryRequired)

	_, err = NewPipeline(personRepo, nil, provider)
	assert.ErrorIs(t, err, ErrNoteRepositoryRequired)

	_, err = NewPipeline(personRepo, noteRepo, nil)
	assert.ErrorIs(t, err, ErrAIProviderRequired)
}

func TestIngestNote_StoresAndEnriches(t *testing.T) {
	personRepo, noteRepo := newTestRepos(t)
	person := addTestPerson(t, personRepo)

	extractor := mock.NewMockFactExtractor()
	extractor.ExtractFactsFunc = func(_ context.Context, text string, _ time.Time) (*ai.ExtractedFacts, error) {
		return &ai.ExtractedFacts{
			ActionItems: []string{"Send the deck"},
			Connections: []ai.ExtractedConnection{{Name: "David Park", Relationship: "mentor"}},
		}, nil
	}

	p, err := NewPipeline(personRepo, noteRepo, mock.NewMockProviderWithExtractor(extractor))
	require.NoError(t, err)
	defer p.Release()

	ctx := context.Background()
	note, err := p.IngestNote(ctx, person.Id, "Coffee with Sarah, David Park came up.")
	require.NoError(t, err)
	require.NotZero(t, note.Id)

	p.Wait()

	stored, err := noteRepo.GetNote(ctx, note.Id)
	require.NoError(t, err)
	assert.Equal(t, "Coffee with Sarah, David Park came up.", stored.RawText)
	assert.Equal(t, []string{"Send the deck"}, stored.ActionItems)
	require.Len(t, stored.Connections, 1)
	assert.Equal(t, "David Park", stored.Connections[0].Name)
	assert.Equal(t, 1, extractor.CallCount())
}

func TestIngestNote_UnknownPerson(t *testing.T) {
	personRepo, noteRepo := newTestRepos(t)

	p, err := NewPipeline(personRepo, noteRepo, mock.NewMockProvider())
	require.NoError(t, err)
	defer p.Release()

	_, err = p.IngestNote(context.Background(), 42, "note for nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIngestNote_InvalidNote(t *testing.T) {
	personRepo, noteRepo := newTestRepos(t)
	person := addTestPerson(t, personRepo)

	p, err := NewPipeline(personRepo, noteRepo, mock.NewMockProvider())
	require.NoError(t, err)
	defer p.Release()

	_, err = p.IngestNote(context.Background(), person.Id, "   ")
	assert.ErrorIs(t, err, core.ErrInvalidNote)
}

func TestIngestNote_ExtractionFailureKeepsNote(t *testing.T) {
	personRepo, noteRepo := newTestRepos(t)
	person := addTestPerson(t, personRepo)

	extractor := mock.NewMockFactExtractor()
	extractor.ExtractFactsFunc = func(_ context.Context, _ string, _ time.Time) (*ai.ExtractedFacts, error) {
		return nil, errors.New("model offline")
	}

	p, err := NewPipeline(personRepo, noteRepo, mock.NewMockProviderWithExtractor(extractor))
	require.NoError(t, err)
	defer p.Release()

	ctx := context.Background()
	note, err := p.IngestNote(ctx, person.Id, "extraction will fail")
	require.NoError(t, err)

	p.Wait()

	stored, err := noteRepo.GetNote(ctx, note.Id)
	require.NoError(t, err)
	assert.Equal(t, "extraction will fail", stored.RawText)
	assert.Empty(t, stored.ActionItems)
}

func TestIngestNote_ClockAnchorsExtraction(t *testing.T) {
	personRepo, noteRepo := newTestRepos(t)
	person := addTestPerson(t, personRepo)

	fixed := time.Date(2025, 6, 18, 15, 0, 0, 0, time.UTC)
	var seen time.Time
	extractor := mock.NewMockFactExtractor()
	extractor.ExtractFactsFunc = func(_ context.Context, _ string, now time.Time) (*ai.ExtractedFacts, error) {
		seen = now
		return &ai.ExtractedFacts{}, nil
	}

	p, err := NewPipeline(personRepo, noteRepo, mock.NewMockProviderWithExtractor(extractor),
		WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)
	defer p.Release()

	_, err = p.IngestNote(context.Background(), person.Id, "meet friday")
	require.NoError(t, err)
	p.Wait()

	assert.True(t, seen.Equal(fixed))
}
