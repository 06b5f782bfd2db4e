package analysis

import (
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
)

// ReadingBuffer is the append-only sample log of the running session.
// It is not safe for concurrent use; the Controller guards it with its mutex.
type ReadingBuffer struct {
	samples []domain.Sample
}

// Append adds a sample to the end of the buffer
func (b *ReadingBuffer) Append(s domain.Sample) {
	b.samples = append(b.samples, s)
}

// Len returns the number of buffered samples
func (b *ReadingBuffer) Len() int {
	return len(b.samples)
}

// Values returns a copy of the buffered lux values in arrival order
func (b *ReadingBuffer) Values() []float64 {
	values := make([]float64, len(b.samples))
	for i, s := range b.samples {
		values[i] = s.Lux
	}
	return values
}

// Average returns the mean lux of the buffer, or false when it is empty
func (b *ReadingBuffer) Average() (float64, bool) {
	return domain.Mean(b.Values())
}

// Reset drops every buffered sample
func (b *ReadingBuffer) Reset() {
	b.samples = nil
}
