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
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/search"
)

// handleSearch answers POST /api/search. The optional personId scopes the
// search to a single person's notes.
func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		respondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	var scope *core.ID
	if req.PersonId != "" {
		id, err := parseID(req.PersonId)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid personId")
			return
		}
		scope = &id
	}

	results, err := s.searcher.Search(c.Request.Context(), req.Query, scope)
	if err != nil {
		if errors.Is(err, search.ErrInvalidQuery) {
			respondError(c, http.StatusBadRequest, "Query is required")
			return
		}
		s.logger.Error("search failed", "query", req.Query, "error", err)
		respondError(c, http.StatusInternalServerError, "Search failed")
		return
	}

	payload := make([]searchResultPayload, 0, len(results))
	for _, result := range results {
		payload = append(payload, toSearchResultPayload(result))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         payload,
		"totalResults": len(payload),
	})
}
