package service

import (
	"context"
	"testing"
	"time"

	"github.com/gridlog/gridlog/internal/domain"
	"github.com/gridlog/gridlog/internal/repository"
	"github.com/gridlog/gridlog/internal/testutil"
	"github.com/gridlog/gridlog/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecordService(t *testing.T) RecordService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewRecordService(
		repository.NewSQLiteRecordRepo(database),
		testutil.NewTestUoW(database),
	)
}

func slotStart(hour, minute int) time.Time {
	return time.Date(2025, 6, 15, hour, minute, 0, 0, time.UTC)
}

func TestRecordService_CreateBatchReturnsAllCreated(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	drafts := []*domain.TimeRecord{
		testutil.NewTestRecord(slotStart(9, 0)),
		testutil.NewTestRecord(slotStart(14, 30)),
	}
	for _, d := range drafts {
		d.ID = "" // the store assigns identities
	}

	created, err := svc.CreateBatch(ctx, drafts)
	require.NoError(t, err)
	require.Len(t, created, 2)
	for _, rec := range created {
		assert.NotEmpty(t, rec.ID)
	}

	fetched, err := svc.FetchRange(ctx, slotStart(0, 0), slotStart(0, 0).AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, fetched, 2)
}

func TestRecordService_CreateBatchIsTransactional(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, testutil.NewTestRecord(slotStart(9, 0)))
	require.NoError(t, err)

	// The second draft reuses an existing primary key, failing the batch.
	dup := testutil.NewTestRecord(slotStart(10, 0))
	dup.ID = first.ID
	_, err = svc.CreateBatch(ctx, []*domain.TimeRecord{
		testutil.NewTestRecord(slotStart(11, 0)),
		dup,
	})
	require.Error(t, err)

	fetched, err := svc.FetchRange(ctx, slotStart(0, 0), slotStart(0, 0).AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, fetched, 1, "failed batch must roll back entirely")
}

func TestRecordService_UpdateBatch(t *testing.T) {
	svc := newRecordService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, testutil.NewTestRecord(slotStart(9, 0)))
	require.NoError(t, err)
	b, err := svc.Create(ctx, testutil.NewTestRecord(slotStart(10, 0)))
	require.NoError(t, err)

	a.StateID = domain.StrPtr("good")
	b.StateID = domain.StrPtr("low")
	updated, err := svc.UpdateBatch(ctx, []*domain.TimeRecord{a, b})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	got, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "good", *got.StateID)
}

func TestRecordService_SatisfiesEnginePort(t *testing.T) {
	var store timeline.Store = newRecordService(t)
	assert.NotNil(t, store)
}
