package grpc

import (
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/analysis"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
	"github.com/quentinrf/plant-monitor/services/light-analysis/pkg/api"
)

// RecordToAPI converts a domain record to its wire form
func RecordToAPI(r *domain.Record) *api.Record {
	readings := r.Readings
	if readings == nil {
		readings = []float64{}
	}
	return &api.Record{
		ID:              r.ID,
		PlantName:       r.PlantName,
		AverageLux:      r.AverageLux,
		MinLightLevel:   r.MinLightLevel,
		MaxLightLevel:   r.MaxLightLevel,
		DurationSeconds: int32(r.DurationSeconds),
		Readings:        readings,
		Timestamp:       r.Timestamp.UnixMilli(),
		ImageRef:        r.ImageRef,
		IsSuitable:      r.IsSuitable,
		Recommendation:  r.Recommendation,
	}
}

// StatusToAPI converts a controller snapshot to its wire form
func StatusToAPI(st analysis.Status) *api.Status {
	return &api.Status{
		State:                st.State.String(),
		SessionID:            st.SessionID,
		PlantName:            st.PlantName,
		Progress:             st.Progress,
		TimeRemainingSeconds: int32(st.TimeRemaining),
		CurrentLux:           st.CurrentLux,
		HasLux:               st.HasLux,
	}
}

// RequirementToAPI converts a catalog requirement to its wire form
func RequirementToAPI(r domain.PlantLightRequirement) *api.PlantRequirement {
	return &api.PlantRequirement{
		CanonicalName: r.CanonicalName,
		MinLux:        int32(r.MinLux),
		MaxLux:        int32(r.MaxLux),
		Description:   r.Description,
	}
}
