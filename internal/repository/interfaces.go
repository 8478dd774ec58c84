package repository

import (
	"context"
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// RecordRepo is the persistence surface for time records. Range queries use
// half-open instant intervals [start, end).
type RecordRepo interface {
	FetchRange(ctx context.Context, start, end time.Time) ([]*domain.TimeRecord, error)
	GetByID(ctx context.Context, id string) (*domain.TimeRecord, error)
	Create(ctx context.Context, r *domain.TimeRecord) (*domain.TimeRecord, error)
	Update(ctx context.Context, r *domain.TimeRecord) (*domain.TimeRecord, error)
	Delete(ctx context.Context, id string) error
}

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	ListByRecord(ctx context.Context, recordID string) ([]*domain.Note, error)
	Delete(ctx context.Context, id string) error
}
