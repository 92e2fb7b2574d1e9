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


package ingestion

import (
	"time"

	"github.com/poiesic/rolodex/ai"
	"github.com/poiesic/rolodex/core"
)

// meetingDateLayout is the date form the extractor is asked to produce.
const meetingDateLayout = "2006-01-02"

// ApplyFacts copies extracted facts onto a note, replacing any previously
// extracted fields. Malformed meeting dates, connections without a name, and
// mentions without any identifying field are dropped. The note's raw text is
// never touched.
func ApplyFacts(note *core.Note, facts *ai.ExtractedFacts) {
	note.Meetings = nil
	for _, m := range facts.Meetings {
		date, err := time.Parse(meetingDateLayout, m.Date)
		if err != nil {
			continue
		}
		note.Meetings = append(note.Meetings, date.UTC())
	}

	note.ActionItems = facts.ActionItems

	note.Connections = nil
	for _, c := range facts.Connections {
		if c.Name == "" {
			continue
		}
		note.Connections = append(note.Connections, core.Connection{
			Name:         c.Name,
			Relationship: c.Relationship,
		})
	}

	note.NetworkMentions = nil
	for _, nm := range facts.NetworkMentions {
		if nm.PersonName == "" && nm.Company == "" && nm.Title == "" {
			continue
		}
		note.NetworkMentions = append(note.NetworkMentions, core.NetworkMention{
			PersonName: nm.PersonName,
			Company:    nm.Company,
			Title:      nm.Title,
			Context:    nm.Context,
			Snippet:    nm.Snippet,
		})
	}

	note.Entities = core.EntitySet{
		People:    facts.Entities.People,
		Companies: facts.Entities.Companies,
		Titles:    facts.Entities.Titles,
		Keywords:  facts.Entities.Keywords,
	}
}
