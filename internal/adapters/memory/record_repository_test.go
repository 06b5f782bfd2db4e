package memory

import (
	"context"
	"testing"
	"time"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

func TestAppendAndGet(t *testing.T) {
	repo := NewRecordRepository()
	ctx := context.Background()

	suitable := true
	record := &domain.Record{
		PlantName:      "Cactus",
		AverageLux:     6000,
		Readings:       []float64{5900, 6100},
		Timestamp:      time.Now(),
		IsSuitable:     &suitable,
		Recommendation: "Excelente!",
	}
	if err := repo.Append(ctx, record); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if record.ID == 0 {
		t.Fatal("expected ID to be set after append")
	}

	got, err := repo.Get(ctx, record.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.PlantName != "Cactus" || len(got.Readings) != 2 {
		t.Errorf("unexpected record: %+v", got)
	}

	// Mutating the returned copy must not change the stored record
	got.Readings[0] = 0
	*got.IsSuitable = false
	again, _ := repo.Get(ctx, record.ID)
	if again.Readings[0] != 5900 || !*again.IsSuitable {
		t.Errorf("stored record was mutated: %+v", again)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := NewRecordRepository()

	_, err := repo.Get(context.Background(), 99)
	if err != domain.ErrRecordNotFound {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListAll_MostRecentFirst(t *testing.T) {
	repo := NewRecordRepository()
	ctx := context.Background()

	now := time.Now()
	_ = repo.Append(ctx, &domain.Record{PlantName: "old", Timestamp: now.Add(-time.Hour)})
	_ = repo.Append(ctx, &domain.Record{PlantName: "new", Timestamp: now})
	_ = repo.Append(ctx, &domain.Record{PlantName: "tie", Timestamp: now})

	records, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	want := []string{"tie", "new", "old"}
	for i, r := range records {
		if r.PlantName != want[i] {
			t.Errorf("position %d: got %q, want %q", i, r.PlantName, want[i])
		}
	}
}
