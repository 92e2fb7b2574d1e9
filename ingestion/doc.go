// Package ingestion provides pipeline orchestration for capturing notes.
//
// The Pipeline type manages the note ingestion workflow:
//   - Validating and adding notes to storage
//   - Extracting structured facts (meetings, action items, connections,
//     network mentions, entities) asynchronously
//   - Updating the stored note once extraction completes
//
// Fact extraction runs on a worker pool so note capture stays fast. Errors
// during async extraction are logged but do not fail the ingestion operation;
// the note remains stored with its raw text.
package ingestion
