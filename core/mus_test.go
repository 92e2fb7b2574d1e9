package core

import (
	"testing"
	"time"
)

func TestPersonMUS_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC)

	person := &Person{
		Id:         42,
		FirstName:  "Sarah",
		LastName:   "Chen",
		Company:    "Stripe",
		Title:      "Engineering Manager",
		Email:      "sarah@example.com",
		Phone:      "+1 555 0100",
		InsertedAt: now,
		UpdatedAt:  now.Add(time.Hour),
	}

	buf := make([]byte, PersonMUS.Size(person))
	n := PersonMUS.Marshal(person, buf)
	if n != len(buf) {
		t.Fatalf("Marshal() wrote %d bytes, Size() said %d", n, len(buf))
	}

	got, n, err := PersonMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Unmarshal() consumed %d bytes, want %d", n, len(buf))
	}

	if got.Id != person.Id || got.FirstName != person.FirstName || got.LastName != person.LastName {
		t.Errorf("Unmarshal() = %+v, want %+v", got, person)
	}
	if got.Company != person.Company || got.Title != person.Title {
		t.Errorf("Unmarshal() = %+v, want %+v", got, person)
	}
	if got.Email != person.Email || got.Phone != person.Phone {
		t.Errorf("Unmarshal() = %+v, want %+v", got, person)
	}
	if !got.InsertedAt.Equal(person.InsertedAt) || !got.UpdatedAt.Equal(person.UpdatedAt) {
		t.Errorf("Unmarshal() timestamps = %v/%v, want %v/%v",
			got.InsertedAt, got.UpdatedAt, person.InsertedAt, person.UpdatedAt)
	}
}

func TestNoteMUS_RoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC)
	meeting := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	note := &Note{
		Id:          7,
		PersonId:    42,
		RawText:     "Met Sarah at the fintech meetup. She mentioned David Park runs platform at Chime.",
		ActionItems: []string{"send Sarah the deck", "intro to David"},
		Meetings:    []time.Time{meeting},
		Connections: []Connection{
			{Name: "David Park", Relationship: "former colleague"},
		},
		NetworkMentions: []NetworkMention{
			{
				PersonName: "David Park",
				Company:    "Chime",
				Title:      "Head of Platform",
				Context:    "runs platform engineering",
				Snippet:    "David Park runs platform at Chime",
			},
		},
		Entities: EntitySet{
			People:    []string{"David Park"},
			Companies: []string{"Chime"},
			Titles:    []string{"Head of Platform"},
			Keywords:  []string{"fintech", "meetup"},
		},
		InsertedAt: now,
		UpdatedAt:  now,
	}

	buf := make([]byte, NoteMUS.Size(note))
	n := NoteMUS.Marshal(note, buf)
	if n != len(buf) {
		t.Fatalf("Marshal() wrote %d bytes, Size() said %d", n, len(buf))
	}

	got, n, err := NoteMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Unmarshal() consumed %d bytes, want %d", n, len(buf))
	}

	if got.Id != note.Id || got.PersonId != note.PersonId || got.RawText != note.RawText {
		t.Errorf("Unmarshal() = %+v, want %+v", got, note)
	}
	if len(got.ActionItems) != 2 || got.ActionItems[0] != "send Sarah the deck" {
		t.Errorf("Unmarshal() action items = %v", got.ActionItems)
	}
	if len(got.Meetings) != 1 || !got.Meetings[0].Equal(meeting) {
		t.Errorf("Unmarshal() meetings = %v, want [%v]", got.Meetings, meeting)
	}
	if len(got.Connections) != 1 || got.Connections[0] != note.Connections[0] {
		t.Errorf("Unmarshal() connections = %v", got.Connections)
	}
	if len(got.NetworkMentions) != 1 || got.NetworkMentions[0] != note.NetworkMentions[0] {
		t.Errorf("Unmarshal() mentions = %v", got.NetworkMentions)
	}
	if len(got.Entities.Keywords) != 2 || got.Entities.Keywords[1] != "meetup" {
		t.Errorf("Unmarshal() entities = %+v", got.Entities)
	}
}

func TestNoteMUS_EmptyOptionalFields(t *testing.T) {
	note := &Note{
		Id:       1,
		PersonId: 2,
		RawText:  "just a raw note",
	}

	buf := make([]byte, NoteMUS.Size(note))
	NoteMUS.Marshal(note, buf)

	got, _, err := NoteMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.RawText != note.RawText {
		t.Errorf("RawText = %q, want %q", got.RawText, note.RawText)
	}
	if len(got.ActionItems) != 0 || len(got.Meetings) != 0 || len(got.Connections) != 0 {
		t.Errorf("expected empty extracted fields, got %+v", got)
	}
}

func TestNoteMUS_TruncatedData(t *testing.T) {
	note := &Note{
		Id:       1,
		PersonId: 2,
		RawText:  "a note long enough to truncate meaningfully",
	}
	buf := make([]byte, NoteMUS.Size(note))
	NoteMUS.Marshal(note, buf)

	_, _, err := NoteMUS.Unmarshal(buf[:len(buf)/2])
	if err == nil {
		t.Fatal("Unmarshal() of truncated data should fail")
	}
}
