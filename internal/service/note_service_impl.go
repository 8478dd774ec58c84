package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/repository"
)

// ErrEmptyNoteBody rejects blank notes.
var ErrEmptyNoteBody = errors.New("note body must not be empty")

type noteService struct {
	notes   repository.NoteRepo
	records repository.RecordRepo
}

// NewNoteService wires a NoteService over the given repositories.
func NewNoteService(notes repository.NoteRepo, records repository.RecordRepo) NoteService {
	return &noteService{notes: notes, records: records}
}

// Attach creates a note on an existing record. The record is read first so
// a dangling record ID surfaces as a clean error instead of an FK failure.
func (s *noteService) Attach(ctx context.Context, recordID, body string) (*domain.Note, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyNoteBody
	}
	if _, err := s.records.GetByID(ctx, recordID); err != nil {
		return nil, err
	}

	note := &domain.Note{RecordID: recordID, Body: body}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) ListByRecord(ctx context.Context, recordID string) ([]*domain.Note, error) {
	return s.notes.ListByRecord(ctx, recordID)
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
