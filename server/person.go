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
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poiesic/rolodex/core"
)

// handleCreatePerson answers POST /api/person.
func (s *Server) handleCreatePerson(c *gin.Context) {
	var req createPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	person := &core.Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Title:     req.Title,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := core.ValidatePerson(person); err != nil {
		respondError(c, http.StatusBadRequest, "First and last name are required")
		return
	}

	stored, err := s.personRepository.AddPersons(c.Request.Context(), person)
	if err != nil {
		s.logger.Error("creating person failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to create person")
		return
	}

	respondData(c, toPersonPayload(stored[0]))
}

// handleListPersons answers GET /api/person with every stored person.
func (s *Server) handleListPersons(c *gin.Context) {
	persons, err := s.personRepository.GetAllPersons(c.Request.Context())
	if err != nil {
		s.logger.Error("listing persons failed", "error", err)
		respondError(c, http.StatusInternalServerError, "Failed to list persons")
		return
	}

	payload := make([]*personPayload, 0, len(persons))
	for _, person := range persons {
		payload = append(payload, toPersonPayload(person))
	}
	respondData(c, payload)
}
