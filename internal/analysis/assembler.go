package analysis

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

// Measurement is what a finished sampling window produced
type Measurement struct {
	PlantName       string
	ImageRef        string
	AverageLux      float64
	DurationSeconds int
	Readings        []float64
}

// Assembler turns a measurement into a persisted record
type Assembler struct {
	repo  domain.RecordRepository
	clock clockwork.Clock
}

// NewAssembler creates an assembler; a nil clock means wall-clock time
func NewAssembler(repo domain.RecordRepository, clock clockwork.Clock) *Assembler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Assembler{repo: repo, clock: clock}
}

// Assemble judges the measurement against req (nil when the plant is
// unknown), builds the record and appends it to the repository.
// The record is returned even when storing it failed.
func (a *Assembler) Assemble(ctx context.Context, m Measurement, req *domain.PlantLightRequirement) (*domain.Record, domain.Verdict, error) {
	verdict := domain.Assess(m.PlantName, m.AverageLux, m.DurationSeconds, req)

	name := m.PlantName
	if req != nil {
		name = req.CanonicalName
	}

	suitable := verdict.Suitable
	record := &domain.Record{
		PlantName:       name,
		AverageLux:      m.AverageLux,
		DurationSeconds: m.DurationSeconds,
		Readings:        append([]float64{}, m.Readings...),
		Timestamp:       a.clock.Now(),
		ImageRef:        m.ImageRef,
		IsSuitable:      &suitable,
		Recommendation:  verdict.Recommendation,
	}
	if lo, hi, ok := domain.Bounds(m.Readings); ok {
		record.MinLightLevel = &lo
		record.MaxLightLevel = &hi
	}

	if err := a.repo.Append(ctx, record); err != nil {
		return record, verdict, fmt.Errorf("failed to save analysis record: %w", err)
	}

	log.Info().
		Int64("record_id", record.ID).
		Str("plant", record.PlantName).
		Float64("average_lux", record.AverageLux).
		Bool("suitable", suitable).
		Str("source", string(verdict.Source)).
		Msg("analysis record saved")

	return record, verdict, nil
}
