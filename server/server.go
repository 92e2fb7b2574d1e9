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
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/poiesic/rolodex/ingestion"
	"github.com/poiesic/rolodex/search"
	"github.com/poiesic/rolodex/storage"
)

// Server exposes the searcher, the ingestion pipeline and the repositories
// over HTTP. All responses share a JSON envelope: successes carry
// {"success": true, "data": ...}, failures {"success": false, "error": ...}.
type Server struct {
	engine           *gin.Engine
	searcher         *search.Searcher
	pipeline         *ingestion.Pipeline
	personRepository storage.PersonRepository
	noteRepository   storage.NoteRepository
	logger           *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates an HTTP server around the given components.
func NewServer(
	searcher *search.Searcher,
	pipeline *ingestion.Pipeline,
	personRepository storage.PersonRepository,
	noteRepository storage.NoteRepository,
	opts ...Option,
) (*Server, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if pipeline == nil {
		return nil, ErrPipelineRequired
	}
	if personRepository == nil {
		return nil, ErrPersonRepositoryRequired
	}
	if noteRepository == nil {
		return nil, ErrNoteRepositoryRequired
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:           engine,
		searcher:         searcher,
		pipeline:         pipeline,
		personRepository: personRepository,
		noteRepository:   noteRepository,
		logger:           slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	api.POST("/search", s.handleSearch)
	api.POST("/person", s.handleCreatePerson)
	api.GET("/person", s.handleListPersons)
	api.POST("/note", s.handleCreateNote)
	api.GET("/note", s.handleListNotes)
	api.DELETE("/note", s.handleDeleteNote)

	s.engine.GET("/healthz", s.handleHealth)
}

// Handler returns the underlying HTTP handler, mainly for testing.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the server on the given address and blocks until it stops.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting HTTP server", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}
