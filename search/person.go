package search

import (
	"sort"
	"strings"

	"github.com/poiesic/rolodex/core"
)

// Tunable scoring thresholds, arrived at empirically.
const (
	// A person is included when more than this share of keywords match.
	personRatioThreshold = 0.7
	// Single-keyword queries instead require this many field hits.
	singleKeywordMinScore = 2
)

// scorePerson evaluates one person against the analyzed query.
//
// The composite profile string (name, company, title) is matched against each
// keyword to compute the match ratio. Individual fields are then matched
// against every non-stop-word query word for additional score: name hits
// count double, title and company hits count once.
func scorePerson(q *AnalyzedQuery, person *core.Person) *core.PersonScore {
	composite := strings.ToLower(strings.TrimSpace(
		person.FirstName + " " + person.LastName + " " + person.Company + " " + person.Title))

	var matched []string
	for _, kw := range q.Keywords {
		if isMatch(composite, kw) {
			matched = append(matched, kw)
		}
	}

	ratio := 0.0
	if len(q.Keywords) > 0 {
		ratio = float64(len(matched)) / float64(len(q.Keywords))
	}

	first := strings.ToLower(person.FirstName)
	last := strings.ToLower(person.LastName)
	title := strings.ToLower(person.Title)
	company := strings.ToLower(person.Company)

	score := len(matched)
	for _, word := range q.QueryWords {
		if stopWords[word] {
			continue
		}
		if isMatch(first, word) || (last != "" && isMatch(last, word)) {
			score += 2
		}
		if title != "" && isMatch(title, word) {
			score++
		}
		if company != "" && isMatch(company, word) {
			score++
		}
	}

	return &core.PersonScore{
		Person:          person,
		MatchScore:      score,
		MatchRatio:      ratio,
		MatchedKeywords: matched,
	}
}

// includePerson decides whether a scored person belongs in the result set.
// Multi-keyword queries require high keyword coverage; single-keyword queries
// fall back to the field-hit count so that "sarah" still finds Sarah.
func includePerson(q *AnalyzedQuery, score *core.PersonScore) bool {
	if score.MatchRatio > personRatioThreshold && len(score.MatchedKeywords) > 0 {
		return true
	}
	return len(q.Keywords) == 1 && score.MatchScore >= singleKeywordMinScore
}

// sortPersonScores orders persons by match ratio, then match score, then ID
// so equal-quality results come back in a stable order.
func sortPersonScores(scores []*core.PersonScore) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].MatchRatio != scores[j].MatchRatio {
			return scores[i].MatchRatio > scores[j].MatchRatio
		}
		if scores[i].MatchScore != scores[j].MatchScore {
			return scores[i].MatchScore > scores[j].MatchScore
		}
		return scores[i].Person.Id < scores[j].Person.Id
	})
}
