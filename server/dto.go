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


package server

import (
	"strconv"
	"time"

	"github.com/poiesic/rolodex/core"
)

// Wire types for the JSON API. Core types stay free of JSON tags; all
// translation happens here. IDs are decimal strings on the wire.

type searchRequest struct {
	Query    string `json:"query"`
	PersonId string `json:"personId"`
}

type createPersonRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type createNoteRequest struct {
	PersonId string `json:"personId"`
	RawText  string `json:"rawText"`
}

type personPayload struct {
	Id        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company,omitempty"`
	Title     string `json:"title,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type connectionPayload struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship,omitempty"`
}

type mentionPayload struct {
	PersonName string `json:"personName,omitempty"`
	Company    string `json:"company,omitempty"`
	Title      string `json:"title,omitempty"`
	Context    string `json:"context,omitempty"`
	Snippet    string `json:"snippet,omitempty"`
}

type entitiesPayload struct {
	People    []string `json:"people"`
	Companies []string `json:"companies"`
	Titles    []string `json:"titles"`
	Keywords  []string `json:"keywords"`
}

type notePayload struct {
	Id              string              `json:"id"`
	PersonId        string              `json:"personId"`
	RawText         string              `json:"rawText"`
	ActionItems     []string            `json:"actionItems"`
	Meetings        []string            `json:"meetings"`
	Connections     []connectionPayload `json:"connections"`
	NetworkMentions []mentionPayload    `json:"networkMentions"`
	Entities        entitiesPayload     `json:"extractedEntities"`
}

type searchResultPayload struct {
	Type                string         `json:"type"`
	Person              *personPayload `json:"person,omitempty"`
	Answer              string         `json:"answer"`
	ConnectorName       string         `json:"connectorName,omitempty"`
	MatchReason         string         `json:"matchReason,omitempty"`
	Snippet             string         `json:"snippet,omitempty"`
	IsForwardConnection bool           `json:"isForwardConnection,omitempty"`
}

func formatID(id core.ID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseID(s string) (core.ID, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return core.ID(v), nil
}

func toPersonPayload(person *core.Person) *personPayload {
	if person == nil {
		return nil
	}
	return &personPayload{
		Id:        formatID(person.Id),
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Company:   person.Company,
		Title:     person.Title,
		Email:     person.Email,
		Phone:     person.Phone,
	}
}

func toNotePayload(note *core.Note) *notePayload {
	meetings := make([]string, len(note.Meetings))
	for i, m := range note.Meetings {
		meetings[i] = m.Format(time.RFC3339)
	}

	connections := make([]connectionPayload, len(note.Connections))
	for i, c := range note.Connections {
		connections[i] = connectionPayload{Name: c.Name, Relationship: c.Relationship}
	}

	mentions := make([]mentionPayload, len(note.NetworkMentions))
	for i, nm := range note.NetworkMentions {
		mentions[i] = mentionPayload{
			PersonName: nm.PersonName,
			Company:    nm.Company,
			Title:      nm.Title,
			Context:    nm.Context,
			Snippet:    nm.Snippet,
		}
	}

	return &notePayload{
		Id:              formatID(note.Id),
		PersonId:        formatID(note.PersonId),
		RawText:         note.RawText,
		ActionItems:     note.ActionItems,
		Meetings:        meetings,
		Connections:     connections,
		NetworkMentions: mentions,
		Entities: entitiesPayload{
			People:    note.Entities.People,
			Companies: note.Entities.Companies,
			Titles:    note.Entities.Titles,
			Keywords:  note.Entities.Keywords,
		},
	}
}

func toSearchResultPayload(r core.FormattedResult) searchResultPayload {
	return searchResultPayload{
		Type:                string(r.Type),
		Person:              toPersonPayload(r.Person),
		Answer:              r.Answer,
		ConnectorName:       r.ConnectorName,
		MatchReason:         r.MatchReason,
		Snippet:             r.Snippet,
		IsForwardConnection: r.IsForwardConnection,
	}
}
