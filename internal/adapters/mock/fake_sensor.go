package mock

import (
	"context"
	"math/rand"
	"sync"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

// FakeSensor simulates an ambient-light sensor for development
// This implements the ports.LightSensor interface
type FakeSensor struct {
	mu        sync.Mutex
	baseValue float64
	variation float64
	script    []float64
	rng       *rand.Rand
	closed    bool
}

// NewFakeSensor creates a sensor that returns realistic values
// baseValue: average lux (e.g., 500 for indoor lighting)
// variation: +/- range (e.g., 100 means 400-600)
func NewFakeSensor(baseValue, variation float64) *FakeSensor {
	return &FakeSensor{
		baseValue: baseValue,
		variation: variation,
		rng:       rand.New(rand.NewSource(rand.Int63())),
	}
}

// NewScriptedSensor replays values in order, then keeps returning the last one
func NewScriptedSensor(values ...float64) *FakeSensor {
	s := NewFakeSensor(0, 0)
	s.script = append([]float64(nil), values...)
	return s
}

// ReadLux returns a simulated light reading
// Simulates realistic variance (lights flicker, clouds pass, etc.)
func (s *FakeSensor) ReadLux(ctx context.Context) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, domain.ErrSensorUnavailable
	}

	if len(s.script) > 0 {
		lux := s.script[0]
		if len(s.script) > 1 {
			s.script = s.script[1:]
		}
		return lux, nil
	}

	// Random value around base +/- variation
	variance := (s.rng.Float64() - 0.5) * 2 * s.variation
	lux := s.baseValue + variance

	// Ensure non-negative
	if lux < 0 {
		lux = 0
	}

	return lux, nil
}

// Close marks the sensor unavailable
func (s *FakeSensor) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
