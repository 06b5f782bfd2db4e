package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

// RecordRepository implements domain.RecordRepository with SQLite
type RecordRepository struct {
	db *sql.DB
}

// NewRecordRepository creates a SQLite-backed repository
func NewRecordRepository(dbPath string) (*RecordRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Timestamps are unix milliseconds; readings_trace is EncodeTrace text
	schema := `
	CREATE TABLE IF NOT EXISTS plant_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		plant_name TEXT NOT NULL,
		average_lux REAL NOT NULL,
		min_light_level REAL,
		max_light_level REAL,
		duration_seconds INTEGER NOT NULL DEFAULT 0,
		readings_trace TEXT NOT NULL DEFAULT '',
		timestamp INTEGER NOT NULL,
		image_ref TEXT,
		is_suitable INTEGER,
		recommendation TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_plant_requests_timestamp ON plant_requests(timestamp);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &RecordRepository{db: db}, nil
}

const selectColumns = `id, plant_name, average_lux, min_light_level, max_light_level,
	duration_seconds, readings_trace, timestamp, image_ref, is_suitable, recommendation`

// Append stores a record in SQLite
func (r *RecordRepository) Append(ctx context.Context, record *domain.Record) error {
	query := `
		INSERT INTO plant_requests (plant_name, average_lux, min_light_level, max_light_level,
			duration_seconds, readings_trace, timestamp, image_ref, is_suitable, recommendation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		record.PlantName,
		record.AverageLux,
		nullFloat(record.MinLightLevel),
		nullFloat(record.MaxLightLevel),
		record.DurationSeconds,
		domain.EncodeTrace(record.Readings),
		record.Timestamp.UnixMilli(),
		nullString(record.ImageRef),
		nullBool(record.IsSuitable),
		record.Recommendation,
	)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert id: %w", err)
	}

	record.ID = id
	return nil
}

// Get retrieves a record by ID
func (r *RecordRepository) Get(ctx context.Context, id int64) (*domain.Record, error) {
	query := `SELECT ` + selectColumns + ` FROM plant_requests WHERE id = ?`

	record, err := scanRecord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query record: %w", err)
	}

	return record, nil
}

// ListAll returns every record, most recent first
func (r *RecordRepository) ListAll(ctx context.Context) ([]*domain.Record, error) {
	query := `SELECT ` + selectColumns + ` FROM plant_requests ORDER BY timestamp DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []*domain.Record{}
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// Close closes the database connection
func (r *RecordRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*domain.Record, error) {
	var (
		record      domain.Record
		minLevel    sql.NullFloat64
		maxLevel    sql.NullFloat64
		trace       string
		timestampMs int64
		imageRef    sql.NullString
		suitable    sql.NullBool
	)

	err := s.Scan(
		&record.ID,
		&record.PlantName,
		&record.AverageLux,
		&minLevel,
		&maxLevel,
		&record.DurationSeconds,
		&trace,
		&timestampMs,
		&imageRef,
		&suitable,
		&record.Recommendation,
	)
	if err != nil {
		return nil, err
	}

	if minLevel.Valid {
		record.MinLightLevel = &minLevel.Float64
	}
	if maxLevel.Valid {
		record.MaxLightLevel = &maxLevel.Float64
	}
	if suitable.Valid {
		record.IsSuitable = &suitable.Bool
	}
	record.ImageRef = imageRef.String
	record.Readings = domain.DecodeTrace(trace)
	record.Timestamp = time.UnixMilli(timestampMs)

	return &record, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullBool(v *bool) sql.NullBool {
	if v == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *v, Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
