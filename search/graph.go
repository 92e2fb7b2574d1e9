package search

import (
	"github.com/poiesic/rolodex/core"
)

// Only the best person matches seed graph traversal.
const maxTraversalRoots = 3

// traversalRoots picks the top-ranked persons to expand from. The scores must
// already be sorted.
func traversalRoots(scores []*core.PersonScore) []*core.Person {
	n := len(scores)
	if n > maxTraversalRoots {
		n = maxTraversalRoots
	}
	roots := make([]*core.Person, 0, n)
	for _, s := range scores[:n] {
		roots = append(roots, s.Person)
	}
	return roots
}

// buildForwardResults expands one hop from each root person into the people
// they are recorded as knowing: structured connections and named network
// mentions from the root's notes. Results are typed as network mentions and
// flagged as forward connections, with the root as the connector.
func buildForwardResults(roots []*core.Person, notes []*core.Note) []core.FormattedResult {
	notesByPerson := make(map[core.ID][]*core.Note, len(roots))
	for _, note := range notes {
		notesByPerson[note.PersonId] = append(notesByPerson[note.PersonId], note)
	}

	var results []core.FormattedResult
	for _, root := range roots {
		for _, note := range notesByPerson[root.Id] {
			for _, conn := range note.Connections {
				if conn.Name == "" {
					continue
				}
				reason := conn.Relationship
				if reason == "" {
					reason = "Connected"
				}
				results = append(results, core.FormattedResult{
					Type:                core.ResultNetworkMention,
					Person:              root,
					Answer:              conn.Name,
					ConnectorName:       root.FullName(),
					MatchReason:         reason,
					IsForwardConnection: true,
				})
			}
			for i := range note.NetworkMentions {
				mention := &note.NetworkMentions[i]
				if mention.PersonName == "" {
					continue
				}
				reason := mention.Context
				if reason == "" {
					reason = "Network Mention"
				}
				results = append(results, core.FormattedResult{
					Type:                core.ResultNetworkMention,
					Person:              root,
					Answer:              mention.PersonName,
					ConnectorName:       root.FullName(),
					MatchReason:         reason,
					Snippet:             mention.Snippet,
					IsForwardConnection: true,
				})
			}
		}
	}
	return results
}
