package testutil

import (
	"time"

	"github.com/gridlog/gridlog/internal/domain"
	"github.com/google/uuid"
)

// RecordOption customizes a test time record.
type RecordOption func(*domain.TimeRecord)

func WithCategory(id string) RecordOption {
	return func(r *domain.TimeRecord) {
		r.CategoryID = &id
	}
}

func WithMood(state string) RecordOption {
	return func(r *domain.TimeRecord) {
		r.StateID = &state
	}
}

func WithOwner(owner string) RecordOption {
	return func(r *domain.TimeRecord) {
		r.OwnerID = owner
	}
}

// NewTestRecord builds a 30-minute record starting at start.
func NewTestRecord(start time.Time, opts ...RecordOption) *domain.TimeRecord {
	r := &domain.TimeRecord{
		ID:      uuid.New().String(),
		Start:   start,
		End:     start.Add(30 * time.Minute),
		OwnerID: "test-owner",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestCategory builds a category with a stable color.
func NewTestCategory(name string) *domain.Category {
	return &domain.Category{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     "#83a598",
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestNote builds a note attached to the given record.
func NewTestNote(recordID, body string) *domain.Note {
	return &domain.Note{
		ID:        uuid.New().String(),
		RecordID:  recordID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}
