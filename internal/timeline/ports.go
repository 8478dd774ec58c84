package timeline

import (
	"context"
	"time"

	"github.com/gridlog/gridlog/internal/domain"
)

// Store is the persistence collaborator the engine reads and writes through.
// The engine never talks to the database directly; everything goes through
// this port so tests can substitute an in-memory fake.
type Store interface {
	FetchRange(ctx context.Context, start, end time.Time) ([]*domain.TimeRecord, error)
	Create(ctx context.Context, draft *domain.TimeRecord) (*domain.TimeRecord, error)
	CreateBatch(ctx context.Context, drafts []*domain.TimeRecord) ([]*domain.TimeRecord, error)
	Update(ctx context.Context, rec *domain.TimeRecord) (*domain.TimeRecord, error)
	UpdateBatch(ctx context.Context, recs []*domain.TimeRecord) ([]*domain.TimeRecord, error)
	Delete(ctx context.Context, id string) error
}

// Toasts receives user-facing notices. Calls are fire-and-forget and must
// never block or fail into engine control flow.
type Toasts interface {
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// NoopToasts discards all notices.
type NoopToasts struct{}

func (NoopToasts) Success(string) {}
func (NoopToasts) Warning(string) {}
func (NoopToasts) Error(string)   {}
