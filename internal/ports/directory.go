package ports

import (
	"context"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

// PlantDirectory looks up light requirements by free-text plant name.
// Lookups may block (simulated network search).
type PlantDirectory interface {
	Search(ctx context.Context, query string) (*domain.PlantLightRequirement, error)
}
