package service

import (
	"context"
	"time"

	"github.com/gridlog/gridlog/internal/db"
	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/repository"
	"github.com/gridlog/gridlog/internal/timeline"
)

type recordService struct {
	records repository.RecordRepo
	uow     db.UnitOfWork
	obs     timeline.EngineObserver
}

// NewRecordService wires a RecordService over the given repository. The
// unit of work backs the batch variants; obs may be nil.
func NewRecordService(records repository.RecordRepo, uow db.UnitOfWork, obs ...timeline.EngineObserver) RecordService {
	var observer timeline.EngineObserver = timeline.NoopEngineObserver{}
	for _, o := range obs {
		if o != nil {
			observer = o
			break
		}
	}
	return &recordService{records: records, uow: uow, obs: observer}
}

// Compile-time check: the service satisfies the engine's store port.
var _ timeline.Store = (RecordService)(nil)

func (s *recordService) FetchRange(ctx context.Context, start, end time.Time) ([]*domain.TimeRecord, error) {
	records, err := s.records.FetchRange(ctx, start, end)
	s.obs.Observe(timeline.EngineEvent{Op: "store_fetch_range", Success: err == nil, Err: err, Fields: map[string]any{
		"from":  start.Format(time.RFC3339),
		"to":    end.Format(time.RFC3339),
		"count": len(records),
	}})
	return records, err
}

func (s *recordService) GetByID(ctx context.Context, id string) (*domain.TimeRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *recordService) Create(ctx context.Context, draft *domain.TimeRecord) (*domain.TimeRecord, error) {
	created, err := s.records.Create(ctx, draft)
	s.obs.Observe(timeline.EngineEvent{Op: "store_create", Success: err == nil, Err: err})
	return created, err
}

// CreateBatch inserts all drafts inside one transaction: the flush path
// either logs every queued slot or none of them.
func (s *recordService) CreateBatch(ctx context.Context, drafts []*domain.TimeRecord) ([]*domain.TimeRecord, error) {
	var created []*domain.TimeRecord
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		for _, draft := range drafts {
			rec, err := txRecords.Create(ctx, draft)
			if err != nil {
				return err
			}
			created = append(created, rec)
		}
		return nil
	})
	s.obs.Observe(timeline.EngineEvent{Op: "store_create_batch", Success: err == nil, Err: err, Fields: map[string]any{
		"drafts": len(drafts),
	}})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *recordService) Update(ctx context.Context, rec *domain.TimeRecord) (*domain.TimeRecord, error) {
	updated, err := s.records.Update(ctx, rec)
	s.obs.Observe(timeline.EngineEvent{Op: "store_update", Success: err == nil, Err: err, Fields: map[string]any{
		"record": rec.ID,
	}})
	return updated, err
}

// UpdateBatch applies all updates inside one transaction.
func (s *recordService) UpdateBatch(ctx context.Context, recs []*domain.TimeRecord) ([]*domain.TimeRecord, error) {
	var updated []*domain.TimeRecord
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		for _, rec := range recs {
			out, err := txRecords.Update(ctx, rec)
			if err != nil {
				return err
			}
			updated = append(updated, out)
		}
		return nil
	})
	s.obs.Observe(timeline.EngineEvent{Op: "store_update_batch", Success: err == nil, Err: err, Fields: map[string]any{
		"records": len(recs),
	}})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *recordService) Delete(ctx context.Context, id string) error {
	err := s.records.Delete(ctx, id)
	s.obs.Observe(timeline.EngineEvent{Op: "store_delete", Success: err == nil, Err: err, Fields: map[string]any{
		"record": id,
	}})
	return err
}
