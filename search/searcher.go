package search

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/errgroup"

	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

// Searcher provides relevance search over persons and notes.
type Searcher struct {
	personRepository storage.PersonRepository
	noteRepository   storage.NoteRepository
	analyzer         *Analyzer
	pool             *ants.Pool
	poolSize         int
	logger           *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithClock sets the clock used to resolve relative date terms.
// Default is time.Now.
func WithClock(clock Clock) Option {
	return func(s *Searcher) error {
		s.analyzer = NewAnalyzer(clock)
		return nil
	}
}

// WithPoolSize sets the size of the scoring worker pool.
// Default is half the CPU count, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		s.poolSize = size
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	personRepository storage.PersonRepository,
	noteRepository storage.NoteRepository,
	opts ...Option,
) (*Searcher, error) {
	if personRepository == nil {
		return nil, ErrPersonRepositoryRequired
	}
	if noteRepository == nil {
		return nil, ErrNoteRepositoryRequired
	}

	s := &Searcher{
		personRepository: personRepository,
		noteRepository:   noteRepository,
		analyzer:         NewAnalyzer(time.Now),
		poolSize:         max(runtime.NumCPU()/2, 1),
		logger:           slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(s.poolSize)
	if err != nil {
		return nil, err
	}
	s.pool = pool

	return s, nil
}

// Release shuts down the scoring worker pool.
func (s *Searcher) Release() {
	s.pool.Release()
}

// Search answers a natural-language query. A non-nil scope restricts matching
// to that person's notes. Results are ranked, deduplicated and formatted.
func (s *Searcher) Search(ctx context.Context, query string, scope *core.ID) ([]core.FormattedResult, error) {
	return s.SearchWithMonitor(ctx, query, scope, nil)
}

// SearchWithMonitor answers a query with monitoring. The monitor receives
// callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, scope *core.ID, monitor SearchMonitor) ([]core.FormattedResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	q, err := s.analyzer.Analyze(query)
	if err != nil {
		return nil, err
	}
	monitor.AfterAnalyze(q)

	in := detectIntent(q.Lowered)

	var results []core.FormattedResult
	if scope != nil {
		results, err = s.searchScoped(ctx, q, in, *scope, monitor)
	} else {
		results, err = s.searchGlobal(ctx, q, in, monitor)
	}
	if err != nil {
		return nil, err
	}

	monitor.Finish(results)
	return results, nil
}

// searchGlobal runs the full pipeline: person scoring and note scoring in
// parallel, graph traversal from the top persons, then aggregation.
func (s *Searcher) searchGlobal(ctx context.Context, q *AnalyzedQuery, in queryIntent, monitor SearchMonitor) ([]core.FormattedResult, error) {
	var (
		personScores []*core.PersonScore
		noteScores   []*core.NoteScore
		forwards     []core.FormattedResult
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		persons, err := s.personRepository.GetAllPersons(gctx)
		if err != nil {
			s.logger.Error("error loading persons", "err", err)
			return err
		}
		personScores = s.scorePersons(q, persons)

		if len(personScores) == 0 {
			return nil
		}

		// One hop out from the best matches
		roots := traversalRoots(personScores)
		rootIDs := make([]core.ID, len(roots))
		for i, r := range roots {
			rootIDs[i] = r.Id
		}
		rootNotes, err := s.noteRepository.GetNotesByPersons(gctx, rootIDs...)
		if err != nil {
			s.logger.Error("error loading notes for traversal", "err", err)
			return err
		}
		forwards = buildForwardResults(roots, rootNotes)
		return nil
	})

	g.Go(func() error {
		notes, err := s.noteRepository.GetAllNotes(gctx)
		if err != nil {
			s.logger.Error("error loading notes", "err", err)
			return err
		}
		noteScores = s.scoreNotes(q, notes, false)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	monitor.AfterPersonScoring(personScores)
	monitor.AfterNoteScoring(noteScores)
	monitor.AfterTraversal(forwards)

	personScores, noteScores = applyIntentFilters(in, personScores, noteScores)

	personByID, err := s.loadMatchedPersons(ctx, personScores, noteScores)
	if err != nil {
		return nil, err
	}

	return assembleResults(in, personScores, forwards, noteScores, personByID), nil
}

// searchScoped scores only the notes of one person. Person scoring, phrase
// matching and traversal are skipped; the caller already knows who the
// results are about.
func (s *Searcher) searchScoped(ctx context.Context, q *AnalyzedQuery, in queryIntent, personID core.ID, monitor SearchMonitor) ([]core.FormattedResult, error) {
	notes, err := s.noteRepository.GetNotesByPerson(ctx, personID)
	if err != nil {
		s.logger.Error("error loading notes for person", "personId", personID, "err", err)
		return nil, err
	}

	noteScores := s.scoreNotes(q, notes, true)
	monitor.AfterNoteScoring(noteScores)

	_, noteScores = applyIntentFilters(in, nil, noteScores)

	personByID, err := s.loadMatchedPersons(ctx, nil, noteScores)
	if err != nil {
		return nil, err
	}

	return assembleResults(in, nil, nil, noteScores, personByID), nil
}

// scorePersons scores persons on the worker pool, then filters and ranks.
func (s *Searcher) scorePersons(q *AnalyzedQuery, persons []*core.Person) []*core.PersonScore {
	scores := make([]*core.PersonScore, len(persons))

	var wg sync.WaitGroup
	for i, person := range persons {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scores[i] = scorePerson(q, person)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool unavailable; score inline
			task()
		}
	}
	wg.Wait()

	included := make([]*core.PersonScore, 0, len(scores))
	for _, score := range scores {
		if includePerson(q, score) {
			included = append(included, score)
		}
	}
	sortPersonScores(included)
	return included
}

// scoreNotes scores notes on the worker pool, then drops non-matches and ranks.
func (s *Searcher) scoreNotes(q *AnalyzedQuery, notes []*core.Note, scoped bool) []*core.NoteScore {
	scores := make([]*core.NoteScore, len(notes))

	var wg sync.WaitGroup
	for i, note := range notes {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scores[i] = scoreNote(q, note, scoped)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool unavailable; score inline
			task()
		}
	}
	wg.Wait()

	matched := make([]*core.NoteScore, 0, len(scores))
	for _, score := range scores {
		if score != nil {
			matched = append(matched, score)
		}
	}
	sortNoteScores(matched)
	return matched
}

// loadMatchedPersons fetches person snapshots for every person referenced by
// the surviving evidence, so results can carry names and titles.
func (s *Searcher) loadMatchedPersons(ctx context.Context, personScores []*core.PersonScore, noteScores []*core.NoteScore) (map[core.ID]*core.Person, error) {
	personByID := make(map[core.ID]*core.Person)
	for _, ps := range personScores {
		personByID[ps.Person.Id] = ps.Person
	}

	var missing []core.ID
	for _, ns := range noteScores {
		if _, ok := personByID[ns.Note.PersonId]; !ok {
			missing = append(missing, ns.Note.PersonId)
			personByID[ns.Note.PersonId] = nil
		}
	}
	if len(missing) == 0 {
		return personByID, nil
	}

	persons, err := s.personRepository.GetPersons(ctx, missing...)
	if err != nil {
		s.logger.Error("error loading persons for note matches", "err", err)
		return nil, err
	}
	for _, p := range persons {
		personByID[p.Id] = p
	}

	for _, id := range missing {
		if personByID[id] == nil {
			s.logger.Warn("note references missing person", "personId", id)
		}
	}

	return personByID, nil
}
