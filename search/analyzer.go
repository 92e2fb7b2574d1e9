package search

import (
	"strings"
	"time"
)

// Clock returns the current time. Injected so relative date terms resolve
// deterministically in tests.
type Clock func() time.Time

// AnalyzedQuery is the tokenized and interpreted form of a raw query.
type AnalyzedQuery struct {
	Raw        string
	Lowered    string     // Trimmed, lower-cased query text
	Keywords   []string   // Tokens with stop words removed
	QueryWords []string   // All tokens, stop words included
	TargetDate *time.Time // Resolved relative date term, if any
}

// Analyzer turns raw query strings into AnalyzedQuery values.
type Analyzer struct {
	clock Clock
}

// NewAnalyzer creates an Analyzer. A nil clock defaults to time.Now.
func NewAnalyzer(clock Clock) *Analyzer {
	if clock == nil {
		clock = time.Now
	}
	return &Analyzer{clock: clock}
}

// Analyze tokenizes the query, removes stop words, and resolves any relative
// date term against the analyzer's clock. Returns ErrInvalidQuery for empty
// or whitespace-only input.
func (a *Analyzer) Analyze(query string) (*AnalyzedQuery, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, ErrInvalidQuery
	}

	lowered := strings.ToLower(trimmed)
	queryWords := tokenize(lowered)

	return &AnalyzedQuery{
		Raw:        query,
		Lowered:    lowered,
		Keywords:   filterStopWords(queryWords),
		QueryWords: queryWords,
		TargetDate: a.resolveDateTerm(lowered),
	}, nil
}

// Date terms checked in a fixed order. The first term found in the query wins.
var dateTerms = []string{
	"today", "tomorrow", "yesterday",
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// resolveDateTerm scans the lowered query for a relative date term and
// resolves it to a calendar date. Returns nil when no term is present.
func (a *Analyzer) resolveDateTerm(lowered string) *time.Time {
	for _, term := range dateTerms {
		if !strings.Contains(lowered, term) {
			continue
		}
		resolved := resolveTerm(term, a.clock())
		return &resolved
	}
	return nil
}

// resolveTerm maps a date term to a concrete date, truncated to midnight in
// the clock's location. Weekday names resolve within the current
// Sunday-anchored week, so "monday" on a Wednesday is two days in the past.
func resolveTerm(term string, now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch term {
	case "today":
		return day
	case "tomorrow":
		return day.AddDate(0, 0, 1)
	case "yesterday":
		return day.AddDate(0, 0, -1)
	}

	diff := int(weekdays[term]) - int(now.Weekday())
	return day.AddDate(0, 0, diff)
}

// sameDay reports whether two times fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
