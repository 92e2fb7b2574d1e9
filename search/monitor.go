package search

import (
	"github.com/poiesic/rolodex/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterAnalyze(q *AnalyzedQuery)
	AfterPersonScoring(scores []*core.PersonScore)
	AfterNoteScoring(scores []*core.NoteScore)
	AfterTraversal(forwards []core.FormattedResult)
	Finish(results []core.FormattedResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                            {}
func (n *noopMonitor) AfterAnalyze(_ *AnalyzedQuery)             {}
func (n *noopMonitor) AfterPersonScoring(_ []*core.PersonScore)  {}
func (n *noopMonitor) AfterNoteScoring(_ []*core.NoteScore)      {}
func (n *noopMonitor) AfterTraversal(_ []core.FormattedResult)   {}
func (n *noopMonitor) Finish(_ []core.FormattedResult)           {}
