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
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

// handleCreateNote answers POST /api/note. The note is stored immediately;
// fact extraction runs in the background.
func (s *Server) handleCreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	personID, err := parseID(req.PersonId)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid personId")
		return
	}

	note, err := s.pipeline.IngestNote(c.Request.Context(), personID, req.RawText)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respondError(c, http.StatusNotFound, "Person not found")
		case errors.Is(err, core.ErrInvalidNote):
			respondError(c, http.StatusBadRequest, "Note text is required")
		default:
			s.logger.Error("creating note failed", "person_id", personID, "error", err)
			respondError(c, http.StatusInternalServerError, "Failed to create note")
		}
		return
	}

	respondData(c, toNotePayload(note))
}

// handleListNotes answers GET /api/note. An optional personId query parameter
// restricts the listing to one person's notes.
func (s *Server) handleListNotes(c *gin.Context) {
	var (
		notes []*core.Note
		err   error
	)
	if raw := c.Query("personId"); raw != "" {
		personID, parseErr := parseID(raw)
		if parseErr != nil {
			respondError(c, http.StatusBadRequest, "Invalid personId")
			return
		}
		notes, err = s.noteRepository.GetNotesByPerson(c.Request.Context(), personID)
	} else {
		notes, err = s.noteRepository.GetAllNotes(c.Request.Context())
	}
	if err != nil {
		s.logger.Error("listing notes failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to list notes")
		return
	}

	payload := make([]*notePayload, 0, len(notes))
	for _, note := range notes {
		payload = append(payload, toNotePayload(note))
	}
	respondData(c, payload)
}

// handleDeleteNote answers DELETE /api/note?noteId=.
func (s *Server) handleDeleteNote(c *gin.Context) {
	raw := c.Query("noteId")
	if raw == "" {
		respondError(c, http.StatusBadRequest, "noteId is required")
		return
	}
	noteID, err := parseID(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid noteId")
		return
	}

	if err := s.noteRepository.DeleteNotes(c.Request.Context(), noteID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Note not found")
			return
		}
		s.logger.Error("deleting note failed", "note_id", noteID, "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to delete note")
		return
	}

	respondData(c, gin.H{"deleted": formatID(noteID)})
}
