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


package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/search"
	"github.com/poiesic/rolodex/storage"
	"github.com/poiesic/rolodex/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wednesdayClock() time.Time {
	return time.Date(2025, 6, 18, 15, 4, 5, 0, time.UTC)
}

// seedFixture loads a small network: Sarah with a rich note, Marcus with a
// plain one, and Priya with no notes at all.
func seedFixture(t *testing.T) (storage.PersonRepository, storage.NoteRepository, *core.Person) {
	t.Helper()

	personRepo, noteRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, personRepo.Close())
		require.NoError(t, noteRepo.Close())
		require.NoError(t, backend.Close())
	})

	ctx := context.Background()

	added, err := personRepo.AddPersons(ctx,
		&core.Person{FirstName: "Sarah", LastName: "Chen", Title: "Engineering Manager", Company: "Stripe"},
		&core.Person{FirstName: "Marcus", LastName: "Webb", Title: "Partner", Company: "Benchmark"},
		&core.Person{FirstName: "Priya", LastName: "Patel", Title: "Designer", Company: "Figma"},
	)
	require.NoError(t, err)
	sarah, marcus := added[0], added[1]

	_, err = noteRepo.AddNotes(ctx,
		&core.Note{
			PersonId: sarah.Id,
			RawText:  "Coffee with Sarah. She mentioned David Park is hiring platform engineers at Chime.",
			Meetings: []time.Time{time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)},
			ActionItems: []string{
				"Send Sarah the fintech deck",
			},
			Connections: []core.Connection{
				{Name: "David Park", Relationship: "former colleague"},
			},
			NetworkMentions: []core.NetworkMention{
				{
					PersonName: "David Park",
					Company:    "Chime",
					Context:    "hiring platform engineers",
					Snippet:    "David Park is hiring platform engineers",
				},
			},
		},
		&core.Note{
			PersonId: marcus.Id,
			RawText:  "Marcus raised a new growth fund.",
		},
	)
	require.NoError(t, err)

	return personRepo, noteRepo, sarah
}

func newTestSearcher(t *testing.T) (*search.Searcher, *core.Person) {
	t.Helper()

	personRepo, noteRepo, sarah := seedFixture(t)
	s, err := search.NewSearcher(personRepo, noteRepo,
		search.WithClock(wednesdayClock),
		search.WithPoolSize(2),
	)
	require.NoError(t, err)
	t.Cleanup(s.Release)
	return s, sarah
}

func TestNewSearcher_RequiresRepositories(t *testing.T) {
	personRepo, noteRepo, _ := seedFixture(t)

	_, err := search.NewSearcher(nil, noteRepo)
	assert.ErrorIs(t, err, search.ErrPersonRepositoryRequired)

	_, err = search.NewSearcher(personRepo, nil)
	assert.ErrorIs(t, err, search.ErrNoteRepositoryRequired)
}

func TestSearcher_RejectsEmptyQuery(t *testing.T) {
	s, _ := newTestSearcher(t)

	_, err := s.Search(context.Background(), "   ", nil)
	assert.ErrorIs(t, err, search.ErrInvalidQuery)
}

func TestSearcher_GlobalSearch(t *testing.T) {
	s, _ := newTestSearcher(t)

	results, err := s.Search(context.Background(), "sarah stripe", nil)
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Person match leads
	assert.Equal(t, core.ResultPersonName, results[0].Type)
	assert.Equal(t, "Sarah Chen - Engineering Manager at Stripe", results[0].Answer)

	// Forward connection expanded from Sarah, deduped across the structured
	// connection and the network mention naming the same person
	assert.True(t, results[1].IsForwardConnection)
	assert.Equal(t, "David Park", results[1].Answer)
	assert.Equal(t, "Sarah Chen", results[1].ConnectorName)

	// Note evidence follows
	assert.Equal(t, core.ResultEntityMatch, results[2].Type)
	assert.Equal(t, "sarah", results[2].Answer)
	assert.Equal(t, core.ResultActionItem, results[3].Type)
	assert.Equal(t, "Send Sarah the fintech deck", results[3].Answer)
}

func TestSearcher_WhoIsCollapses(t *testing.T) {
	s, _ := newTestSearcher(t)

	results, err := s.Search(context.Background(), "who is sarah", nil)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, core.ResultPersonName, results[0].Type)
	assert.Equal(t, "Sarah Chen - Engineering Manager at Stripe", results[0].Answer)
}

func TestSearcher_MeetingIntent(t *testing.T) {
	s, _ := newTestSearcher(t)

	results, err := s.Search(context.Background(), "meetings on friday", nil)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, core.ResultMeeting, results[0].Type)
	assert.Equal(t, "Meet Sarah Chen on Friday, June 20, 2025", results[0].Answer)
}

func TestSearcher_MeetingIntentNoMatch(t *testing.T) {
	s, _ := newTestSearcher(t)

	// Monday the 16th has no meetings on file
	results, err := s.Search(context.Background(), "meetings on monday", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearcher_ActionIntent(t *testing.T) {
	s, _ := newTestSearcher(t)

	results, err := s.Search(context.Background(), "action items deck", nil)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, core.ResultActionItem, results[0].Type)
	assert.Equal(t, "Send Sarah the fintech deck", results[0].Answer)
}

func TestSearcher_ScopedSearch(t *testing.T) {
	s, sarah := newTestSearcher(t)

	results, err := s.Search(context.Background(), "david", &sarah.Id)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, core.ResultConnection, results[0].Type)
	assert.Equal(t, "David Park: former colleague", results[0].Answer)

	assert.Equal(t, core.ResultNetworkMention, results[1].Type)
	assert.Equal(t, "David Park", results[1].Answer)
	assert.Equal(t, "hiring platform engineers", results[1].MatchReason)
}

func TestSearcher_ScopedSearchOtherPersonEmpty(t *testing.T) {
	s, sarah := newTestSearcher(t)

	// Scoping to Sarah hides Marcus's note entirely
	results, err := s.Search(context.Background(), "growth fund", &sarah.Id)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearcher_FuzzyQuery(t *testing.T) {
	s, _ := newTestSearcher(t)

	// One edit away from "sarah" still finds her
	results, err := s.Search(context.Background(), "who is sara", nil)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, core.ResultPersonName, results[0].Type)
	assert.Contains(t, results[0].Answer, "Sarah Chen")
}

func TestSearcher_NoMatches(t *testing.T) {
	s, _ := newTestSearcher(t)

	results, err := s.Search(context.Background(), "quantum blockchain", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearcher_Deterministic(t *testing.T) {
	s, _ := newTestSearcher(t)

	ctx := context.Background()
	first, err := s.Search(ctx, "sarah stripe", nil)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// Concurrent scoring must not leak into result ordering
	second, err := s.Search(ctx, "sarah stripe", nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type recordingMonitor struct {
	calls []string
}

func (m *recordingMonitor) Start(_ string) { m.calls = append(m.calls, "start") }
func (m *recordingMonitor) AfterAnalyze(_ *search.AnalyzedQuery) {
	m.calls = append(m.calls, "analyze")
}
func (m *recordingMonitor) AfterPersonScoring(_ []*core.PersonScore) {
	m.calls = append(m.calls, "persons")
}
func (m *recordingMonitor) AfterNoteScoring(_ []*core.NoteScore) {
	m.calls = append(m.calls, "notes")
}
func (m *recordingMonitor) AfterTraversal(_ []core.FormattedResult) {
	m.calls = append(m.calls, "traversal")
}
func (m *recordingMonitor) Finish(_ []core.FormattedResult) {
	m.calls = append(m.calls, "finish")
}

func TestSearcher_MonitorHooks(t *testing.T) {
	s, _ := newTestSearcher(t)

	monitor := &recordingMonitor{}
	_, err := s.SearchWithMonitor(context.Background(), "sarah stripe", nil, monitor)
	require.NoError(t, err)

	assert.Equal(t, []string{"start", "analyze", "persons", "notes", "traversal", "finish"}, monitor.calls)
}
