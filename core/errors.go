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

import "errors"

// Domain validation errors
var (
	// ErrInvalidPerson indicates a Person failed validation.
	ErrInvalidPerson = errors.New("invalid person")

	// ErrInvalidNote indicates a Note failed validation.
	ErrInvalidNote = errors.New("invalid note")

	// ErrEmptyFirstName indicates the FirstName field is empty.
	ErrEmptyFirstName = errors.New("first name cannot be empty")

	// ErrEmptyLastName indicates the LastName field is empty.
	ErrEmptyLastName = errors.New("last name cannot be empty")

	// ErrEmptyNoteText indicates the RawText field is empty.
	ErrEmptyNoteText = errors.New("note text cannot be empty")

	// ErrMissingPersonId indicates a note has no owning person.
	ErrMissingPersonId = errors.New("note must reference a person")

	// ErrTruncatedData indicates serialized data ended before the record did.
	ErrTruncatedData = errors.New("truncated data")
)
