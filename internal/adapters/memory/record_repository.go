package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

// RecordRepository implements domain.RecordRepository with in-memory storage
// This is perfect for development - no database setup needed
type RecordRepository struct {
	mu      sync.RWMutex
	records map[int64]*domain.Record
	nextID  int64
}

// NewRecordRepository creates an empty in-memory repository
func NewRecordRepository() *RecordRepository {
	return &RecordRepository{
		records: make(map[int64]*domain.Record),
		nextID:  1,
	}
}

// Append stores a record in memory and assigns its ID
func (r *RecordRepository) Append(ctx context.Context, record *domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = r.nextID
	r.nextID++

	r.records[record.ID] = cloneRecord(record)
	return nil
}

// Get retrieves a record by ID
func (r *RecordRepository) Get(ctx context.Context, id int64) (*domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[id]
	if !exists {
		return nil, domain.ErrRecordNotFound
	}

	return cloneRecord(record), nil
}

// ListAll returns all records, most recent first
func (r *RecordRepository) ListAll(ctx context.Context) ([]*domain.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*domain.Record, 0, len(r.records))
	for _, record := range r.records {
		results = append(results, cloneRecord(record))
	}

	// Newest first; ID breaks timestamp ties
	sort.Slice(results, func(i, j int) bool {
		if !results[i].Timestamp.Equal(results[j].Timestamp) {
			return results[i].Timestamp.After(results[j].Timestamp)
		}
		return results[i].ID > results[j].ID
	})

	return results, nil
}

// cloneRecord keeps stored records immutable from the caller's side
func cloneRecord(r *domain.Record) *domain.Record {
	c := *r
	c.Readings = append([]float64(nil), r.Readings...)
	if r.MinLightLevel != nil {
		v := *r.MinLightLevel
		c.MinLightLevel = &v
	}
	if r.MaxLightLevel != nil {
		v := *r.MaxLightLevel
		c.MaxLightLevel = &v
	}
	if r.IsSuitable != nil {
		v := *r.IsSuitable
		c.IsSuitable = &v
	}
	return &c
}
