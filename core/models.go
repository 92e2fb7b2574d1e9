package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Person represents a contact tracked by the rolodex.
type Person struct {
	Id         ID
	FirstName  string
	LastName   string
	Company    string
	Title      string
	Email      string
	Phone      string
	InsertedAt time.Time // When the record was inserted into the database
	UpdatedAt  time.Time // When the record was last updated
}

// FullName returns the person's display name as "FirstName LastName".
func (p *Person) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Connection represents a structured relationship recorded in a note,
// linking the note's subject to another named person.
type Connection struct {
	Name         string
	Relationship string
}

// NetworkMention represents a third party mentioned in a note's text,
// extracted with whatever identifying fields the text supplied.
type NetworkMention struct {
	PersonName string
	Company    string
	Title      string
	Context    string // Short description of how the person came up
	Snippet    string // Verbatim fragment of the note text containing the mention
}

// EntitySet holds the raw named entities extracted from a note.
type EntitySet struct {
	People    []string
	Companies []string
	Titles    []string
	Keywords  []string
}

// Note represents a free-text note about a person. The structured fields
// beyond RawText are populated asynchronously by fact extraction.
type Note struct {
	Id              ID
	PersonId        ID
	RawText         string
	ActionItems     []string
	Meetings        []time.Time
	Connections     []Connection
	NetworkMentions []NetworkMention
	Entities        EntitySet
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// Checkpoint records progress of a long-running maintenance job so it can
// resume after interruption.
type Checkpoint struct {
	JobType         string
	LastProcessedId ID
	UpdatedAt       time.Time
}

// MatchKind identifies which part of a note produced a match.
type MatchKind int

const (
	// MatchTextMatch indicates a keyword hit in the note's raw text.
	MatchTextMatch MatchKind = iota + 1
	// MatchMeeting indicates a meeting date hit.
	MatchMeeting
	// MatchActionItem indicates an action item text hit.
	MatchActionItem
	// MatchConnection indicates a structured connection hit.
	MatchConnection
	// MatchNetworkMention indicates a network mention hit.
	MatchNetworkMention
	// MatchEntity indicates an extracted entity hit.
	MatchEntity
)

// Match represents a single piece of match evidence found within a note.
// Exactly one of the payload fields is populated, according to Kind.
type Match struct {
	Kind            MatchKind
	NoteId          ID
	PersonId        ID
	Score           int
	MatchedKeywords []string

	Text       string          // TextMatch, ActionItem and Entity payload
	Meeting    time.Time       // Meeting payload
	Connection *Connection     // Connection payload
	Mention    *NetworkMention // NetworkMention payload
}

// PersonScore represents a person's relevance to a query.
type PersonScore struct {
	Person          *Person
	MatchScore      int
	MatchRatio      float64 // Matched keywords over total keywords
	MatchedKeywords []string
}

// NoteScore represents a note's relevance to a query, with the evidence
// that contributed to the score.
type NoteScore struct {
	Note       *Note
	MatchScore int
	Matches    []Match
}

// ResultType identifies the shape of a formatted search result.
type ResultType string

const (
	ResultPersonName     ResultType = "personName"
	ResultMeeting        ResultType = "meeting"
	ResultActionItem     ResultType = "actionItem"
	ResultConnection     ResultType = "connection"
	ResultNetworkMention ResultType = "networkMention"
	ResultEntityMatch    ResultType = "entityMatch"
)

// FormattedResult represents a single presentable search result.
type FormattedResult struct {
	Type                ResultType
	Person              *Person // Snapshot of the person the evidence belongs to
	Answer              string
	ConnectorName       string // Who links the query to this result, for forward connections
	MatchReason         string
	Snippet             string
	IsForwardConnection bool
}
