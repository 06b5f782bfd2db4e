package domain

import (
	"context"
)

// RecordRepository defines operations for storing/retrieving analysis records
// This is a PORT - adapters (SQLite, Memory) will implement it
type RecordRepository interface {
	// Append persists a new record and assigns its ID
	Append(ctx context.Context, record *Record) error

	// Get retrieves a specific record by ID
	Get(ctx context.Context, id int64) (*Record, error)

	// ListAll returns every record, most recent first
	ListAll(ctx context.Context) ([]*Record, error)
}
