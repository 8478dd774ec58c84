package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gridlog/gridlog/internal/db"
	"github.com/gridlog/gridlog/internal/domain"
	"github.com/google/uuid"
)

const recordColumns = `id, start_at, end_at, category_id, state_id, owner_id`

// SQLiteRecordRepo implements RecordRepo over a SQLite database. It accepts
// a db.DBTX so the same code runs against the root handle or inside a
// transaction.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(dbtx db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: dbtx}
}

func (r *SQLiteRecordRepo) FetchRange(ctx context.Context, start, end time.Time) ([]*domain.TimeRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM time_records
		WHERE start_at >= ? AND start_at < ? ORDER BY start_at`
	rows, err := r.db.QueryContext(ctx, query, instant(start), instant(end))
	if err != nil {
		return nil, fmt.Errorf("fetching records in range: %w", err)
	}
	defer rows.Close()

	records, err := r.scanRecords(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachNoteIDs(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *SQLiteRecordRepo) GetByID(ctx context.Context, id string) (*domain.TimeRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM time_records WHERE id = ?`
	rec, err := r.scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.attachNoteIDs(ctx, []*domain.TimeRecord{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteRecordRepo) Create(ctx context.Context, rec *domain.TimeRecord) (*domain.TimeRecord, error) {
	out := rec.Clone()
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	query := `INSERT INTO time_records (id, start_at, end_at, category_id, state_id, owner_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	now := nowUTC()
	_, err := r.db.ExecContext(ctx, query,
		out.ID,
		instant(out.Start),
		instant(out.End),
		nullableStr(out.CategoryID),
		nullableStr(out.StateID),
		out.OwnerID,
		now,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting time record: %w", err)
	}
	return out, nil
}

func (r *SQLiteRecordRepo) Update(ctx context.Context, rec *domain.TimeRecord) (*domain.TimeRecord, error) {
	query := `UPDATE time_records
		SET start_at = ?, end_at = ?, category_id = ?, state_id = ?, owner_id = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		instant(rec.Start),
		instant(rec.End),
		nullableStr(rec.CategoryID),
		nullableStr(rec.StateID),
		rec.OwnerID,
		nowUTC(),
		rec.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating time record %s: %w", rec.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update of %s: %w", rec.ID, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("time record %s: %w", rec.ID, sql.ErrNoRows)
	}
	return rec.Clone(), nil
}

func (r *SQLiteRecordRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM time_records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting time record %s: %w", id, err)
	}
	return nil
}

func (r *SQLiteRecordRepo) scanRecord(row *sql.Row) (*domain.TimeRecord, error) {
	var rec domain.TimeRecord
	var start, end string
	var categoryID, stateID sql.NullString

	if err := row.Scan(&rec.ID, &start, &end, &categoryID, &stateID, &rec.OwnerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("time record not found: %w", err)
		}
		return nil, fmt.Errorf("scanning time record: %w", err)
	}
	return finishRecord(&rec, start, end, categoryID, stateID)
}

func (r *SQLiteRecordRepo) scanRecords(rows *sql.Rows) ([]*domain.TimeRecord, error) {
	var records []*domain.TimeRecord
	for rows.Next() {
		var rec domain.TimeRecord
		var start, end string
		var categoryID, stateID sql.NullString
		if err := rows.Scan(&rec.ID, &start, &end, &categoryID, &stateID, &rec.OwnerID); err != nil {
			return nil, fmt.Errorf("scanning time record row: %w", err)
		}
		parsed, err := finishRecord(&rec, start, end, categoryID, stateID)
		if err != nil {
			return nil, err
		}
		records = append(records, parsed)
	}
	return records, rows.Err()
}

func finishRecord(rec *domain.TimeRecord, start, end string, categoryID, stateID sql.NullString) (*domain.TimeRecord, error) {
	var err error
	if rec.Start, err = parseInstant(start); err != nil {
		return nil, fmt.Errorf("parsing record %s start: %w", rec.ID, err)
	}
	if rec.End, err = parseInstant(end); err != nil {
		return nil, fmt.Errorf("parsing record %s end: %w", rec.ID, err)
	}
	rec.CategoryID = strFromNull(categoryID)
	rec.StateID = strFromNull(stateID)
	return rec, nil
}

// attachNoteIDs fills NoteIDs for every record in one query.
func (r *SQLiteRecordRepo) attachNoteIDs(ctx context.Context, records []*domain.TimeRecord) error {
	if len(records) == 0 {
		return nil
	}
	byID := make(map[string]*domain.TimeRecord, len(records))
	placeholders := ""
	args := make([]any, 0, len(records))
	for i, rec := range records {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args = append(args, rec.ID)
		byID[rec.ID] = rec
	}

	query := `SELECT id, record_id FROM notes WHERE record_id IN (` + placeholders + `) ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("loading note ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var noteID, recordID string
		if err := rows.Scan(&noteID, &recordID); err != nil {
			return fmt.Errorf("scanning note id row: %w", err)
		}
		if rec, ok := byID[recordID]; ok {
			rec.NoteIDs = append(rec.NoteIDs, noteID)
		}
	}
	return rows.Err()
}
