package domain

import (
	"math"
	"time"
)

// Sample is a single illuminance measurement captured from the sensor feed
// This is pure domain logic - no database, no transport, just business concepts
type Sample struct {
	Lux        float64
	CapturedAt time.Time
}

// NewSample creates a sample with validation
func NewSample(lux float64, capturedAt time.Time) (Sample, error) {
	// Business rule: Lux must be finite and cannot be negative
	if lux < 0 || math.IsNaN(lux) || math.IsInf(lux, 0) {
		return Sample{}, ErrInvalidLux
	}

	return Sample{
		Lux:        lux,
		CapturedAt: capturedAt,
	}, nil
}

// Light categories reported alongside the current reading
const (
	CategoryLow    = "Low Light"
	CategoryMedium = "Medium Light"
	CategoryHigh   = "High Light"
)

// LightCategory returns the human-readable band for a lux value
// Business logic: < 200 lux is low, 200-2500 lux is medium, >= 2500 lux is high
func LightCategory(lux float64) string {
	switch {
	case lux < 200:
		return CategoryLow
	case lux < 2500:
		return CategoryMedium
	default:
		return CategoryHigh
	}
}

// Category returns the light band of the sample
func (s Sample) Category() string {
	return LightCategory(s.Lux)
}

// Mean returns the arithmetic mean of values, or false when there are none
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// Bounds returns the smallest and largest value, or false when there are none
func Bounds(values []float64) (min, max float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}

	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, true
}
