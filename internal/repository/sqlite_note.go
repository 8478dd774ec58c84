package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gridlog/gridlog/internal/db"
	"github.com/gridlog/gridlog/internal/domain"
	"github.com/google/uuid"
)

// SQLiteNoteRepo implements NoteRepo using a SQLite database.
type SQLiteNoteRepo struct {
	db db.DBTX
}

// NewSQLiteNoteRepo creates a new SQLiteNoteRepo.
func NewSQLiteNoteRepo(dbtx db.DBTX) *SQLiteNoteRepo {
	return &SQLiteNoteRepo{db: dbtx}
}

func (r *SQLiteNoteRepo) Create(ctx context.Context, n *domain.Note) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO notes (id, record_id, body, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, n.ID, n.RecordID, n.Body, instant(n.CreatedAt)); err != nil {
		return fmt.Errorf("inserting note: %w", err)
	}
	return nil
}

func (r *SQLiteNoteRepo) ListByRecord(ctx context.Context, recordID string) ([]*domain.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, record_id, body, created_at FROM notes WHERE record_id = ? ORDER BY created_at`,
		recordID)
	if err != nil {
		return nil, fmt.Errorf("listing notes for record %s: %w", recordID, err)
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		var n domain.Note
		var createdAt string
		if err := rows.Scan(&n.ID, &n.RecordID, &n.Body, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		if n.CreatedAt, err = parseInstant(createdAt); err != nil {
			return nil, fmt.Errorf("parsing note %s created_at: %w", n.ID, err)
		}
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}

func (r *SQLiteNoteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}
	return nil
}
