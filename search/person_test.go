package search

import (
	"testing"

	"github.com/poiesic/rolodex/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, query string) *AnalyzedQuery {
	t.Helper()
	q, err := NewAnalyzer(fixedClock).Analyze(query)
	require.NoError(t, err)
	return q
}

func TestScorePerson_NameAndCompany(t *testing.T) {
	q := analyze(t, "sarah stripe")
	person := &core.Person{
		Id:        1,
		FirstName: "Sarah",
		LastName:  "Chen",
		Company:   "Stripe",
		Title:     "Engineering Manager",
	}

	score := scorePerson(q, person)

	assert.Equal(t, 1.0, score.MatchRatio)
	assert.ElementsMatch(t, []string{"sarah", "stripe"}, score.MatchedKeywords)
	// 2 composite hits + 2 for first name + 1 for company
	assert.Equal(t, 5, score.MatchScore)
	assert.True(t, includePerson(q, score))
}

func TestScorePerson_PartialCoverageExcluded(t *testing.T) {
	q := analyze(t, "sarah stripe")
	person := &core.Person{
		Id:        2,
		FirstName: "Marcus",
		LastName:  "Webb",
		Company:   "Stripe",
	}

	score := scorePerson(q, person)

	assert.Equal(t, 0.5, score.MatchRatio)
	assert.False(t, includePerson(q, score), "half coverage should not clear the 0.7 gate")
}

func TestScorePerson_SingleKeywordFallback(t *testing.T) {
	// "sarah" does not substring-match "Sara", but the first-name field is
	// within edit distance, which is worth 2 points
	q := analyze(t, "sarah")
	person := &core.Person{
		Id:        3,
		FirstName: "Sara",
		LastName:  "Kim",
	}

	score := scorePerson(q, person)

	assert.Equal(t, 0.0, score.MatchRatio)
	assert.GreaterOrEqual(t, score.MatchScore, 2)
	assert.True(t, includePerson(q, score))
}

func TestScorePerson_SingleWeakHitExcluded(t *testing.T) {
	// A fuzzy company hit is worth a single point; not enough for a
	// single-keyword query when the composite profile does not match
	q := analyze(t, "stripe")
	person := &core.Person{
		Id:        4,
		FirstName: "Priya",
		LastName:  "Patel",
		Company:   "Strpe",
	}

	score := scorePerson(q, person)

	assert.Equal(t, 0.0, score.MatchRatio)
	assert.Equal(t, 1, score.MatchScore)
	assert.False(t, includePerson(q, score))
}

func TestScorePerson_StopWordsDoNotBoost(t *testing.T) {
	q := analyze(t, "who is sarah")
	person := &core.Person{
		Id:        5,
		FirstName: "Sarah",
		LastName:  "Chen",
	}

	score := scorePerson(q, person)

	// Only "sarah" contributes: 1 composite + 2 name
	assert.Equal(t, 3, score.MatchScore)
}

func TestSortPersonScores(t *testing.T) {
	a := &core.PersonScore{Person: &core.Person{Id: 3}, MatchRatio: 0.5, MatchScore: 9}
	b := &core.PersonScore{Person: &core.Person{Id: 1}, MatchRatio: 1.0, MatchScore: 2}
	c := &core.PersonScore{Person: &core.Person{Id: 2}, MatchRatio: 1.0, MatchScore: 2}
	d := &core.PersonScore{Person: &core.Person{Id: 4}, MatchRatio: 1.0, MatchScore: 5}

	scores := []*core.PersonScore{a, b, c, d}
	sortPersonScores(scores)

	// Ratio first, then score, then ID for ties
	assert.Equal(t, core.ID(4), scores[0].Person.Id)
	assert.Equal(t, core.ID(1), scores[1].Person.Id)
	assert.Equal(t, core.ID(2), scores[2].Person.Id)
	assert.Equal(t, core.ID(3), scores[3].Person.Id)
}
