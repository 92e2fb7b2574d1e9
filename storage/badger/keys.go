package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/rolodex/core"
)

// Key prefixes for different data types
const (
	personRecordPrefix = "perrec"
	personIDSeq        = "perrecseq"
	noteRecordPrefix   = "notrec"
	notePersonPrefix   = "notper"
	noteIDSeq          = "notrecseq"
)

// makePersonKey generates a key for a person by ID.
func makePersonKey(id core.ID) []byte {
	return makeRecordKey(personRecordPrefix, id)
}

// makeNoteKey generates a key for a note by ID.
func makeNoteKey(id core.ID) []byte {
	return makeRecordKey(noteRecordPrefix, id)
}

// makeRecordKey generates a primary record key.
// Format: prefix: followed by the ID in BigEndian so iteration order
// matches numeric ID order.
func makeRecordKey(prefix string, id core.ID) []byte {
	prefixBytes := []byte(prefix + ":")
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeNotePersonKey generates a composite key for the note-by-person index.
// Format: prefix:personID:noteID
func makeNotePersonKey(personID, noteID core.ID) []byte {
	prefix := notePersonPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for personID + 8 bytes for noteID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(personID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(noteID))
	return buf
}

// makePartialNotePersonKey generates a partial key for per-person note scans.
// Format: prefix:personID
func makePartialNotePersonKey(personID core.ID) []byte {
	prefix := notePersonPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for personID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(personID))
	return buf
}

// makeCheckpointKey generates a key for long-running job checkpoints.
func makeCheckpointKey(jobType string) []byte {
	return []byte(fmt.Sprintf("%s:chkpt", jobType))
}
