package domain

import "time"

// Category is a user-defined activity label shown in the legend.
type Category struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
}

// Note is free-form text attached to a time record.
type Note struct {
	ID        string
	RecordID  string
	Body      string
	CreatedAt time.Time
}
