package api

// Record is the wire form of a persisted analysis
type Record struct {
	ID              int64     `json:"id"`
	PlantName       string    `json:"plant_name"`
	AverageLux      float64   `json:"average_lux"`
	MinLightLevel   *float64  `json:"min_light_level,omitempty"`
	MaxLightLevel   *float64  `json:"max_light_level,omitempty"`
	DurationSeconds int32     `json:"duration_seconds"`
	Readings        []float64 `json:"readings"`
	Timestamp       int64     `json:"timestamp"` // unix milliseconds
	ImageRef        string    `json:"image_ref,omitempty"`
	IsSuitable      *bool     `json:"is_suitable,omitempty"`
	Recommendation  string    `json:"recommendation"`
}

// PlantRequirement is the wire form of a catalog entry
type PlantRequirement struct {
	CanonicalName string `json:"canonical_name"`
	MinLux        int32  `json:"min_lux"`
	MaxLux        int32  `json:"max_lux"`
	Description   string `json:"description"`
}

// Status is the wire form of the controller snapshot
type Status struct {
	State                string  `json:"state"`
	SessionID            string  `json:"session_id,omitempty"`
	PlantName            string  `json:"plant_name,omitempty"`
	Progress             float64 `json:"progress"`
	TimeRemainingSeconds int32   `json:"time_remaining_seconds"`
	CurrentLux           float64 `json:"current_lux"`
	HasLux               bool    `json:"has_lux"`
}

type StartAnalysisRequest struct {
	PlantName       string `json:"plant_name"`
	ImageRef        string `json:"image_ref,omitempty"`
	DurationSeconds int32  `json:"duration_seconds"`
}

type StartAnalysisResponse struct {
	SessionID string `json:"session_id"`
	StartedAt int64  `json:"started_at"` // unix milliseconds
	EndsAt    int64  `json:"ends_at"`    // unix milliseconds
}

type GetStatusRequest struct{}

type GetStatusResponse struct {
	Status *Status `json:"status"`
}

type GetCurrentLightRequest struct{}

type GetCurrentLightResponse struct {
	Lux       float64 `json:"lux"`
	Category  string  `json:"category"`
	Available bool    `json:"available"`
}

type ListRecordsRequest struct {
	Limit int32 `json:"limit,omitempty"` // 0 means all
}

type ListRecordsResponse struct {
	Records []*Record `json:"records"`
}

type GetRecordRequest struct {
	ID int64 `json:"id"`
}

type GetRecordResponse struct {
	Record *Record `json:"record"`
}

type MatchPlantRequest struct {
	Query string `json:"query"`
}

type MatchPlantResponse struct {
	Found       bool              `json:"found"`
	Requirement *PlantRequirement `json:"requirement,omitempty"`
}
