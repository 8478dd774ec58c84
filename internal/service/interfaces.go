package service

import (
	"context"
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// RecordService is the application-facing store for time records. It
// satisfies the timeline engine's Store port; the batch variants are used
// by the pending-queue flush path and run inside a single transaction.
type RecordService interface {
	FetchRange(ctx context.Context, start, end time.Time) ([]*domain.TimeRecord, error)
	GetByID(ctx context.Context, id string) (*domain.TimeRecord, error)
	Create(ctx context.Context, draft *domain.TimeRecord) (*domain.TimeRecord, error)
	CreateBatch(ctx context.Context, drafts []*domain.TimeRecord) ([]*domain.TimeRecord, error)
	Update(ctx context.Context, rec *domain.TimeRecord) (*domain.TimeRecord, error)
	UpdateBatch(ctx context.Context, recs []*domain.TimeRecord) ([]*domain.TimeRecord, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type NoteService interface {
	Attach(ctx context.Context, recordID, body string) (*domain.Note, error)
	ListByRecord(ctx context.Context, recordID string) ([]*domain.Note, error)
	Delete(ctx context.Context, id string) error
}
