package domain

import (
	"time"
)

// Record is the persisted outcome of one analysis session.
// Records are created once, at finalization, and never modified.
type Record struct {
	ID              int64
	PlantName       string
	AverageLux      float64
	MinLightLevel   *float64
	MaxLightLevel   *float64
	DurationSeconds int
	Readings        []float64
	Timestamp       time.Time
	ImageRef        string
	IsSuitable      *bool
	Recommendation  string
}

// HasImage reports whether the record references a picture of the plant
func (r *Record) HasImage() bool {
	return r.ImageRef != ""
}
