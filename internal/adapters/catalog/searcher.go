package catalog

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

// DefaultLatency mimics the round trip of an online plant database
const DefaultLatency = time.Second

// Searcher implements ports.PlantDirectory over a local catalog.
// It simulates network latency; there is no real remote lookup.
type Searcher struct {
	matcher *domain.Matcher
	latency time.Duration
	clock   clockwork.Clock
}

// NewSearcher creates a searcher; a nil clock means wall-clock time
func NewSearcher(matcher *domain.Matcher, latency time.Duration, clock clockwork.Clock) *Searcher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Searcher{
		matcher: matcher,
		latency: latency,
		clock:   clock,
	}
}

// Search waits out the simulated latency and then matches query.
// A nil requirement with a nil error means the plant is unknown.
func (s *Searcher) Search(ctx context.Context, query string) (*domain.PlantLightRequirement, error) {
	if s.latency > 0 {
		select {
		case <-s.clock.After(s.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	req, found := s.matcher.Match(query)
	if !found {
		log.Debug().Str("query", query).Msg("plant not in catalog")
		return nil, nil
	}

	log.Debug().
		Str("query", query).
		Str("plant", req.CanonicalName).
		Int("min_lux", req.MinLux).
		Int("max_lux", req.MaxLux).
		Msg("plant matched")
	return &req, nil
}
