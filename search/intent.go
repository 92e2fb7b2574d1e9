package search

import (
	"strings"

	"github.com/poiesic/rolodex/core"
)

// queryIntent captures coarse phrase signals detected in the query.
// Multiple intents can be active at once; filters apply in a fixed order.
type queryIntent struct {
	whoIs   bool
	meeting bool
	action  bool
}

func detectIntent(lowered string) queryIntent {
	return queryIntent{
		whoIs:   strings.Contains(lowered, "who is") || strings.Contains(lowered, "who's"),
		meeting: strings.Contains(lowered, "meeting"),
		action: strings.Contains(lowered, "action") ||
			strings.Contains(lowered, "task") ||
			strings.Contains(lowered, "todo"),
	}
}

// applyIntentFilters narrows the result sets according to detected intent.
// Filters run in order: who-is, then meeting, then action. The who-is filter
// only fires when a person actually matched; otherwise note evidence is the
// best available answer and is kept.
func applyIntentFilters(in queryIntent, persons []*core.PersonScore, notes []*core.NoteScore) ([]*core.PersonScore, []*core.NoteScore) {
	if in.whoIs && len(persons) > 0 {
		persons = persons[:1]
		notes = nil
	}
	if in.meeting {
		persons = nil
		notes = filterNotesByKind(notes, core.MatchMeeting)
	}
	if in.action {
		persons = nil
		notes = filterNotesByKind(notes, core.MatchActionItem)
	}
	return persons, notes
}

// filterNotesByKind keeps only notes with at least one match of the given
// kind. Surviving notes retain all of their matches; the filter selects
// notes, not evidence.
func filterNotesByKind(notes []*core.NoteScore, kind core.MatchKind) []*core.NoteScore {
	var kept []*core.NoteScore
	for _, ns := range notes {
		for _, m := range ns.Matches {
			if m.Kind == kind {
				kept = append(kept, ns)
				break
			}
		}
	}
	return kept
}
