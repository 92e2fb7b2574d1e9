// Package server exposes the Rolodex HTTP API.
//
// The API is JSON over HTTP, served by gin. Every response uses the same
// envelope: {"success": true, "data": ...} on success, with search responses
// additionally carrying "totalResults", and {"success": false, "error": "..."}
// on failure. IDs cross the wire as decimal strings.
//
// Routes:
//
//	POST /api/search   relevance search, optionally scoped to one person
//	POST /api/person   create a person
//	GET  /api/person   list all persons
//	POST /api/note     capture a note (fact extraction runs asynchronously)
//	GET  /api/note     list notes, optionally filtered by personId
//	DELETE /api/note   delete a note by noteId
//	GET  /healthz      liveness probe
package server
