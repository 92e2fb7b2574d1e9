package search

import (
	"fmt"
	"strings"

	"github.com/poiesic/rolodex/core"
)

// Snippet length cap for text and entity match results.
const snippetMaxRunes = 140

// formatPersonResult renders a person match as a presentable result, e.g.
// "Sarah Chen - Engineering Manager at Stripe".
func formatPersonResult(ps *core.PersonScore) core.FormattedResult {
	person := ps.Person
	answer := person.FullName()
	switch {
	case person.Title != "" && person.Company != "":
		answer += " - " + person.Title + " at " + person.Company
	case person.Title != "":
		answer += " - " + person.Title
	case person.Company != "":
		answer += " - " + person.Company
	}

	return core.FormattedResult{
		Type:        core.ResultPersonName,
		Person:      person,
		Answer:      answer,
		MatchReason: strings.Join(ps.MatchedKeywords, ", "),
	}
}

// formatNoteMatch renders one piece of note evidence as a presentable result.
// Raw text and entity matches share the entityMatch shape: the matched term
// as the answer with a snippet of the note for context.
func formatNoteMatch(m core.Match, person *core.Person, note *core.Note) core.FormattedResult {
	switch m.Kind {
	case core.MatchMeeting:
		return core.FormattedResult{
			Type:   core.ResultMeeting,
			Person: person,
			Answer: fmt.Sprintf("Meet %s on %s", person.FullName(), m.Meeting.Format(meetingDateFormat)),
		}
	case core.MatchActionItem:
		return core.FormattedResult{
			Type:        core.ResultActionItem,
			Person:      person,
			Answer:      m.Text,
			MatchReason: strings.Join(m.MatchedKeywords, ", "),
		}
	case core.MatchConnection:
		answer := m.Connection.Name
		if m.Connection.Relationship != "" {
			answer += ": " + m.Connection.Relationship
		}
		return core.FormattedResult{
			Type:   core.ResultConnection,
			Person: person,
			Answer: answer,
		}
	case core.MatchNetworkMention:
		answer := m.Mention.PersonName
		if answer == "" {
			answer = m.Mention.Company
		}
		if answer == "" {
			answer = m.Mention.Title
		}
		return core.FormattedResult{
			Type:        core.ResultNetworkMention,
			Person:      person,
			Answer:      answer,
			MatchReason: m.Mention.Context,
			Snippet:     m.Mention.Snippet,
		}
	default: // MatchTextMatch, MatchEntity
		return core.FormattedResult{
			Type:    core.ResultEntityMatch,
			Person:  person,
			Answer:  m.Text,
			Snippet: truncateSnippet(note.RawText, snippetMaxRunes),
		}
	}
}

// dedupKey identifies equivalent note evidence: kind plus person plus a
// discriminator drawn from the matched keyword, the mention snippet, or the
// connection name, falling back to the formatted answer.
func dedupKey(m core.Match, formatted core.FormattedResult) string {
	disc := ""
	switch {
	case len(m.MatchedKeywords) > 0:
		disc = m.MatchedKeywords[0]
	case m.Mention != nil && m.Mention.Snippet != "":
		disc = m.Mention.Snippet
	case m.Connection != nil:
		disc = m.Connection.Name
	default:
		disc = formatted.Answer
	}
	return fmt.Sprintf("%d:%d:%s", m.Kind, m.PersonId, disc)
}

// assembleResults merges the three evidence streams into the final ordered
// result list: person matches first, then forward connections, then note
// evidence ranked by note score. Duplicate evidence is dropped. A who-is
// query that matched a person collapses to that single result.
func assembleResults(
	in queryIntent,
	persons []*core.PersonScore,
	forwards []core.FormattedResult,
	notes []*core.NoteScore,
	personByID map[core.ID]*core.Person,
) []core.FormattedResult {
	var results []core.FormattedResult

	for _, ps := range persons {
		results = append(results, formatPersonResult(ps))
	}

	seenForward := make(map[string]bool)
	for _, fr := range forwards {
		key := fr.Answer + "|" + fr.ConnectorName
		if seenForward[key] {
			continue
		}
		seenForward[key] = true
		results = append(results, fr)
	}

	seen := make(map[string]bool)
	for _, ns := range notes {
		for _, m := range ns.Matches {
			person := personByID[m.PersonId]
			if person == nil {
				// Note references a deleted person; nothing to render.
				continue
			}
			formatted := formatNoteMatch(m, person, ns.Note)
			key := dedupKey(m, formatted)
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, formatted)
		}
	}

	if in.whoIs {
		for _, r := range results {
			if r.Type == core.ResultPersonName {
				return []core.FormattedResult{r}
			}
		}
	}

	return results
}
