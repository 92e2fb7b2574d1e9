package core

import (
	"errors"
	"testing"
)

func TestValidatePerson(t *testing.T) {
	tests := []struct {
		name    string
		person  *Person
		wantErr error
	}{
		{
			name: "valid person",
			person: &Person{
				Id:        1,
				FirstName: "Sarah",
				LastName:  "Chen",
				Company:   "Stripe",
				Title:     "Engineering Manager",
			},
			wantErr: nil,
		},
		{
			name: "valid person without optional fields",
			person: &Person{
				FirstName: "Sarah",
				LastName:  "Chen",
			},
			wantErr: nil,
		},
		{
			name: "empty last name",
			person: &Person{
				FirstName: "Sarah",
			},
			wantErr: ErrEmptyLastName,
		},
		{
			name:    "nil person",
			person:  nil,
			wantErr: ErrInvalidPerson,
		},
		{
			name: "empty first name",
			person: &Person{
				LastName: "Chen",
			},
			wantErr: ErrEmptyFirstName,
		},
		{
			name: "whitespace first name",
			person: &Person{
				FirstName: "   ",
			},
			wantErr: ErrEmptyFirstName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePerson(tt.person)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePerson() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePerson() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidPerson) {
				t.Errorf("ValidatePerson() error = %v, should wrap ErrInvalidPerson", err)
			}
		})
	}
}

func TestValidateNote(t *testing.T) {
	tests := []struct {
		name    string
		note    *Note
		wantErr error
	}{
		{
			name: "valid note",
			note: &Note{
				PersonId: 1,
				RawText:  "Met Sarah at the conference.",
			},
			wantErr: nil,
		},
		{
			name: "valid note with extracted fields",
			note: &Note{
				PersonId:    1,
				RawText:     "Intro John to Marcus next week.",
				ActionItems: []string{"intro John to Marcus"},
			},
			wantErr: nil,
		},
		{
			name:    "nil note",
			note:    nil,
			wantErr: ErrInvalidNote,
		},
		{
			name: "empty text",
			note: &Note{
				PersonId: 1,
			},
			wantErr: ErrEmptyNoteText,
		},
		{
			name: "whitespace text",
			note: &Note{
				PersonId: 1,
				RawText:  "  \n\t",
			},
			wantErr: ErrEmptyNoteText,
		},
		{
			name: "missing person",
			note: &Note{
				RawText: "Orphaned note.",
			},
			wantErr: ErrMissingPersonId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNote(tt.note)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateNote() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateNote() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidNote) {
				t.Errorf("ValidateNote() error = %v, should wrap ErrInvalidNote", err)
			}
		})
	}
}
