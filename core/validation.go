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


package core

import (
	"fmt"
	"strings"
)

// ValidatePerson validates a Person according to domain rules.
//
// Validation rules:
//   - FirstName must not be empty after trimming whitespace
//   - LastName must not be empty after trimming whitespace
//
// NOT validated:
//   - ID (0 is valid from database sequences)
//   - Company, Title, Email, Phone (all optional)
func ValidatePerson(person *Person) error {
	if person == nil {
		return fmt.Errorf("%w: person is nil", ErrInvalidPerson)
	}

	if strings.TrimSpace(person.FirstName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPerson, ErrEmptyFirstName)
	}

	if strings.TrimSpace(person.LastName) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPerson, ErrEmptyLastName)
	}

	return nil
}

// ValidateNote validates a Note according to domain rules.
//
// Validation rules:
//   - RawText must not be empty after trimming whitespace
//   - PersonId must be set
//
// NOT validated (populated by fact extraction):
//   - ActionItems, Meetings, Connections, NetworkMentions, Entities
//   - ID (0 is valid from database sequences)
func ValidateNote(note *Note) error {
	if note == nil {
		return fmt.Errorf("%w: note is nil", ErrInvalidNote)
	}

	if strings.TrimSpace(note.RawText) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrEmptyNoteText)
	}

	if note.PersonId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidNote, ErrMissingPersonId)
	}

	return nil
}
