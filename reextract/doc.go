// Package reextract provides functionality for re-running fact extraction
// over existing notes, typically after switching to a new or updated
// extraction model.
//
// This package supports batch processing of notes, progress tracking, retry
// logic with exponential backoff, and checkpointed resume so an interrupted
// run picks up where it left off.
package reextract
