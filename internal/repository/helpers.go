package repository

import (
	"database/sql"
	"time"
)

// nullableStr converts a *string to a value suitable for SQLite storage:
// nil becomes SQL NULL.
func nullableStr(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// strFromNull converts a sql.NullString back into a *string.
func strFromNull(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// instant formats an absolute instant for storage. Everything is stored in
// UTC; locations are a rendering concern.
func instant(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseInstant is the inverse of instant.
func parseInstant(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// nowUTC returns the current UTC time formatted for storage.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
