package ports

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

// Pump polls a pollable LightSensor and pushes every valid reading into a SensorFeed.
// A sensor that keeps failing simply stops producing samples.
type Pump struct {
	sensor   LightSensor
	sink     SamplePublisher
	interval time.Duration
	clock    clockwork.Clock

	failures int // consecutive read failures
}

// DefaultPumpInterval is used when NewPump is given a non-positive interval
const DefaultPumpInterval = time.Second

// NewPump creates a sensor pump; a nil clock means wall-clock time
func NewPump(sensor LightSensor, sink SamplePublisher, interval time.Duration, clock clockwork.Clock) *Pump {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = DefaultPumpInterval
	}
	return &Pump{
		sensor:   sensor,
		sink:     sink,
		interval: interval,
		clock:    clock,
	}
}

// Start polls until ctx is cancelled. The first reading is taken immediately
// so the current light level is known before the first interval elapses.
func (p *Pump) Start(ctx context.Context) {
	log.Info().Dur("interval", p.interval).Msg("starting sensor pump")

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.pumpOnce(ctx)

		select {
		case <-ticker.Chan():
		case <-ctx.Done():
			log.Info().Msg("stopping sensor pump")
			return
		}
	}
}

func (p *Pump) pumpOnce(ctx context.Context) {
	lux, err := p.sensor.ReadLux(ctx)
	if err != nil {
		p.failures++
		// Log the first failure of a streak, then every 60th
		if p.failures == 1 || p.failures%60 == 0 {
			log.Warn().Err(err).Int("consecutive_failures", p.failures).Msg("sensor read failed")
		}
		return
	}
	if p.failures > 0 {
		log.Info().Int("failures", p.failures).Msg("sensor recovered")
		p.failures = 0
	}

	if _, err := domain.NewSample(lux, p.clock.Now()); err != nil {
		log.Warn().Err(err).Float64("lux", lux).Msg("dropping sensor reading")
		return
	}

	p.sink.Publish(lux)

	log.Debug().
		Float64("lux", lux).
		Str("category", domain.LightCategory(lux)).
		Msg("published light sample")
}
