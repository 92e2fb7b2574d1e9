package ai

// ExtractedMeeting is a meeting reference found in note text.
type ExtractedMeeting struct {
	// Person is the name of the meeting counterpart, as written in the text.
	Person string

	// Date is the resolved calendar date in "YYYY-MM-DD" form. Relative
	// references are resolved against the time passed to ExtractFacts.
	Date string
}

// ExtractedConnection is a person the note's subject is recorded as knowing.
type ExtractedConnection struct {
	Name         string
	Relationship string
}

// ExtractedMention is a third party mentioned in passing, with whatever
// identifying detail the text provides.
type ExtractedMention struct {
	// PersonName is the mentioned person's name, or their role when the text
	// gives no name ("their CTO").
	PersonName string

	// Company mentioned in relation to this person.
	Company string

	// Title is the person's job title or role.
	Title string

	// Context describes the relationship ("knows", "works with", "met").
	Context string

	// Snippet is the exact sentence or phrase from the text.
	Snippet string
}

// ExtractedEntities lists the unique entities found anywhere in the text.
type ExtractedEntities struct {
	People    []string
	Companies []string
	Titles    []string
	Keywords  []string
}

// ExtractedFacts is the full structured output of fact extraction for one note.
type ExtractedFacts struct {
	Meetings        []ExtractedMeeting
	ActionItems     []string
	Connections     []ExtractedConnection
	NetworkMentions []ExtractedMention
	Entities        ExtractedEntities
}
