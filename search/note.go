package search

import (
	"sort"
	"strings"

	"github.com/poiesic/rolodex/core"
)

// Tunable scoring weights and gates, arrived at empirically.
const (
	fullPhraseBonus      = 5
	meetingExactBonus    = 5
	meetingKeywordBonus  = 2
	connectionBonus      = 2
	entityBonus          = 5
	mentionEvidenceBonus = 10

	// Multi-keyword mention matches must cover more than this share of the
	// keywords to survive, unless the snippet contains the whole query.
	mentionCoverageGlobal = 0.7
	mentionCoverageScoped = 0.5
)

// meetingDateFormat renders meeting dates for fallback keyword matching and
// for formatted answers, e.g. "Friday, June 20, 2025".
const meetingDateFormat = "Monday, January 2, 2006"

// scoreNote evaluates one note against the analyzed query and collects the
// match evidence. Returns nil when the note scores zero or every match is
// filtered out. Scoped searches (a single person's notes) skip full-phrase
// matching and use the lower mention coverage gate.
func scoreNote(q *AnalyzedQuery, note *core.Note, scoped bool) *core.NoteScore {
	var (
		score   int
		matches []core.Match
	)

	text := strings.ToLower(note.RawText)

	// Full query phrase in the raw text is strong evidence.
	if !scoped && strings.Contains(text, q.Lowered) {
		score += fullPhraseBonus
		matches = append(matches, core.Match{
			Kind:            core.MatchTextMatch,
			Score:           fullPhraseBonus,
			Text:            q.Lowered,
			MatchedKeywords: []string{q.Lowered},
		})
	}

	// Keyword hits in the raw text. Each keyword adds to the score but only
	// the first hit is reported as evidence.
	var textHit string
	for _, kw := range q.Keywords {
		if strings.Contains(text, kw) {
			score++
			if textHit == "" {
				textHit = kw
			}
		}
	}
	if textHit != "" {
		matches = append(matches, core.Match{
			Kind:            core.MatchTextMatch,
			Score:           1,
			Text:            textHit,
			MatchedKeywords: []string{textHit},
		})
	}

	score, matches = scoreMeetings(q, note, score, matches)
	score, matches = scoreActionItems(q, note, score, matches)
	score, matches = scoreConnections(q, note, score, matches)
	score, matches = scoreMentions(q, note, score, matches)
	score, matches = scoreEntities(q, note, score, matches)

	matches = filterMatches(q, matches, scoped)
	if score <= 0 || len(matches) == 0 {
		return nil
	}

	for i := range matches {
		matches[i].NoteId = note.Id
		matches[i].PersonId = note.PersonId
	}

	return &core.NoteScore{
		Note:       note,
		MatchScore: score,
		Matches:    matches,
	}
}

// scoreMeetings matches meeting dates. With a resolved target date, only
// meetings on that calendar day match. Without one, the formatted date string
// is matched against each keyword.
func scoreMeetings(q *AnalyzedQuery, note *core.Note, score int, matches []core.Match) (int, []core.Match) {
	for _, meeting := range note.Meetings {
		if q.TargetDate != nil {
			if sameDay(meeting, *q.TargetDate) {
				score += meetingExactBonus
				matches = append(matches, core.Match{
					Kind:    core.MatchMeeting,
					Score:   meetingExactBonus,
					Meeting: meeting,
				})
			}
			continue
		}

		formatted := strings.ToLower(meeting.Format(meetingDateFormat))
		weekday := strings.ToLower(meeting.Weekday().String())
		for _, kw := range q.Keywords {
			if strings.Contains(formatted, kw) || weekday == kw {
				score += meetingKeywordBonus
				matches = append(matches, core.Match{
					Kind:            core.MatchMeeting,
					Score:           meetingKeywordBonus,
					Meeting:         meeting,
					MatchedKeywords: []string{kw},
				})
			}
		}
	}
	return score, matches
}

func scoreActionItems(q *AnalyzedQuery, note *core.Note, score int, matches []core.Match) (int, []core.Match) {
	for _, item := range note.ActionItems {
		lowered := strings.ToLower(item)
		for _, kw := range q.Keywords {
			if strings.Contains(lowered, kw) {
				score++
				matches = append(matches, core.Match{
					Kind:            core.MatchActionItem,
					Score:           1,
					Text:            item,
					MatchedKeywords: []string{kw},
				})
			}
		}
	}
	return score, matches
}

func scoreConnections(q *AnalyzedQuery, note *core.Note, score int, matches []core.Match) (int, []core.Match) {
	for i := range note.Connections {
		conn := &note.Connections[i]
		lowered := strings.ToLower(conn.Name + " " + conn.Relationship)
		for _, kw := range q.Keywords {
			if strings.Contains(lowered, kw) {
				score += connectionBonus
				matches = append(matches, core.Match{
					Kind:            core.MatchConnection,
					Score:           connectionBonus,
					Connection:      conn,
					MatchedKeywords: []string{kw},
				})
			}
		}
	}
	return score, matches
}

// scoreMentions matches network mentions. Keywords hitting identifying fields
// are boosted: person name 5, title 3, company 2, any other mention text 1.
// A mention that matches at all receives a flat evidence bonus on top.
func scoreMentions(q *AnalyzedQuery, note *core.Note, score int, matches []core.Match) (int, []core.Match) {
	for i := range note.NetworkMentions {
		mention := &note.NetworkMentions[i]
		composite := strings.ToLower(strings.Join([]string{
			mention.PersonName, mention.Company, mention.Title, mention.Context}, " "))
		personName := strings.ToLower(mention.PersonName)
		title := strings.ToLower(mention.Title)
		company := strings.ToLower(mention.Company)

		mentionScore := 0
		var matchedKws []string
		for _, kw := range q.Keywords {
			hit := false
			if strings.Contains(composite, kw) {
				mentionScore++
				hit = true
			}
			if personName != "" && strings.Contains(personName, kw) {
				mentionScore += 5
				hit = true
			}
			if title != "" && strings.Contains(title, kw) {
				mentionScore += 3
				hit = true
			}
			if company != "" && strings.Contains(company, kw) {
				mentionScore += 2
				hit = true
			}
			if hit {
				matchedKws = append(matchedKws, kw)
			}
		}

		if mentionScore > 0 {
			total := mentionScore + mentionEvidenceBonus
			score += total
			matches = append(matches, core.Match{
				Kind:            core.MatchNetworkMention,
				Score:           total,
				Mention:         mention,
				MatchedKeywords: matchedKws,
			})
		}
	}
	return score, matches
}

// scoreEntities matches keywords against the extracted entity lists. Each
// matching keyword adds to the score; a single evidence entry reports them.
func scoreEntities(q *AnalyzedQuery, note *core.Note, score int, matches []core.Match) (int, []core.Match) {
	sets := [][]string{
		note.Entities.People,
		note.Entities.Companies,
		note.Entities.Titles,
	}

	var matchedKws []string
	for _, kw := range q.Keywords {
		hit := false
		for _, set := range sets {
			for _, entity := range set {
				if strings.Contains(strings.ToLower(entity), kw) {
					hit = true
					break
				}
			}
			if hit {
				break
			}
		}
		if hit {
			score += entityBonus
			matchedKws = append(matchedKws, kw)
		}
	}

	if len(matchedKws) > 0 {
		matches = append(matches, core.Match{
			Kind:            core.MatchEntity,
			Score:           entityBonus * len(matchedKws),
			Text:            matchedKws[0],
			MatchedKeywords: matchedKws,
		})
	}
	return score, matches
}

// filterMatches applies the dedup and coverage rules:
//   - A mention match supersedes raw text matches from the same note.
//   - Multi-keyword mention matches must cover enough of the keywords, unless
//     the mention snippet contains the whole query phrase.
func filterMatches(q *AnalyzedQuery, matches []core.Match, scoped bool) []core.Match {
	hasMention := false
	for _, m := range matches {
		if m.Kind == core.MatchNetworkMention {
			hasMention = true
			break
		}
	}

	threshold := mentionCoverageGlobal
	if scoped {
		threshold = mentionCoverageScoped
	}

	filtered := make([]core.Match, 0, len(matches))
	for _, m := range matches {
		switch m.Kind {
		case core.MatchTextMatch:
			if hasMention {
				continue
			}
		case core.MatchNetworkMention:
			if len(q.Keywords) > 1 {
				coverage := float64(len(m.MatchedKeywords)) / float64(len(q.Keywords))
				snippet := strings.ToLower(m.Mention.Snippet)
				if coverage <= threshold && !strings.Contains(snippet, q.Lowered) {
					continue
				}
			}
		}
		filtered = append(filtered, m)
	}
	return filtered
}

// sortNoteScores orders notes by match score descending, then ID ascending.
func sortNoteScores(scores []*core.NoteScore) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].MatchScore != scores[j].MatchScore {
			return scores[i].MatchScore > scores[j].MatchScore
		}
		return scores[i].Note.Id < scores[j].Note.Id
	})
}

// truncateSnippet limits a raw text snippet to max runes for display.
func truncateSnippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
