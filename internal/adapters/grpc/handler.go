package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/analysis"
	"github.com/quentinrf/plant-monitor/services/light-analysis/internal/domain"
	"github.com/quentinrf/plant-monitor/services/light-analysis/pkg/api"
)

// Analyzer is the part of analysis.Controller the transports need
type Analyzer interface {
	Start(ctx context.Context, req analysis.Request) (*analysis.Session, error)
	Status() analysis.Status
}

// AnalysisServiceHandler implements the gRPC AnalysisService
type AnalysisServiceHandler struct {
	api.UnimplementedAnalysisServiceServer
	analyzer Analyzer
	repo     domain.RecordRepository
	matcher  *domain.Matcher
}

// NewAnalysisServiceHandler creates a new gRPC handler
func NewAnalysisServiceHandler(analyzer Analyzer, repo domain.RecordRepository, matcher *domain.Matcher) *AnalysisServiceHandler {
	return &AnalysisServiceHandler{
		analyzer: analyzer,
		repo:     repo,
		matcher:  matcher,
	}
}

// StartAnalysis begins a sampling window; the record is stored when it ends
func (h *AnalysisServiceHandler) StartAnalysis(ctx context.Context, req *api.StartAnalysisRequest) (*api.StartAnalysisResponse, error) {
	log.Info().
		Str("plant", req.PlantName).
		Int32("duration_seconds", req.DurationSeconds).
		Msg("StartAnalysis called")

	if strings.TrimSpace(req.PlantName) == "" {
		return nil, status.Error(codes.InvalidArgument, "plant_name is required")
	}

	session, err := h.analyzer.Start(ctx, analysis.Request{
		PlantName:       req.PlantName,
		ImageRef:        req.ImageRef,
		DurationSeconds: int(req.DurationSeconds),
	})
	if err != nil {
		return nil, StatusFromError(err)
	}

	return &api.StartAnalysisResponse{
		SessionID: session.ID,
		StartedAt: session.StartedAt.UnixMilli(),
		EndsAt:    session.EndsAt.UnixMilli(),
	}, nil
}

// GetStatus returns progress of the current session, if any
func (h *AnalysisServiceHandler) GetStatus(ctx context.Context, req *api.GetStatusRequest) (*api.GetStatusResponse, error) {
	return &api.GetStatusResponse{Status: StatusToAPI(h.analyzer.Status())}, nil
}

// GetCurrentLight returns the latest instantaneous reading
func (h *AnalysisServiceHandler) GetCurrentLight(ctx context.Context, req *api.GetCurrentLightRequest) (*api.GetCurrentLightResponse, error) {
	st := h.analyzer.Status()
	return &api.GetCurrentLightResponse{
		Lux:       st.CurrentLux,
		Category:  domain.LightCategory(st.CurrentLux),
		Available: st.HasLux,
	}, nil
}

// ListRecords returns stored analyses, most recent first
func (h *AnalysisServiceHandler) ListRecords(ctx context.Context, req *api.ListRecordsRequest) (*api.ListRecordsResponse, error) {
	log.Info().Int32("limit", req.Limit).Msg("ListRecords called")

	if req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit cannot be negative")
	}

	records, err := h.repo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list records")
		return nil, status.Error(codes.Internal, "failed to list records")
	}

	if req.Limit > 0 && int(req.Limit) < len(records) {
		records = records[:req.Limit]
	}

	out := make([]*api.Record, len(records))
	for i, r := range records {
		out[i] = RecordToAPI(r)
	}
	return &api.ListRecordsResponse{Records: out}, nil
}

// GetRecord returns one stored analysis
func (h *AnalysisServiceHandler) GetRecord(ctx context.Context, req *api.GetRecordRequest) (*api.GetRecordResponse, error) {
	record, err := h.repo.Get(ctx, req.ID)
	if err != nil {
		return nil, StatusFromError(err)
	}
	return &api.GetRecordResponse{Record: RecordToAPI(record)}, nil
}

// MatchPlant resolves a name against the catalog without any simulated latency
func (h *AnalysisServiceHandler) MatchPlant(ctx context.Context, req *api.MatchPlantRequest) (*api.MatchPlantResponse, error) {
	found, ok := h.matcher.Match(req.Query)
	if !ok {
		return &api.MatchPlantResponse{Found: false}, nil
	}
	return &api.MatchPlantResponse{Found: true, Requirement: RequirementToAPI(found)}, nil
}

// StatusFromError maps domain errors to gRPC status codes
func StatusFromError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSessionBusy):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrInvalidDuration), errors.Is(err, domain.ErrInvalidLux):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrRecordNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrControllerClosed):
		return status.Error(codes.Unavailable, err.Error())
	default:
		log.Error().Err(err).Msg("unexpected error")
		return status.Error(codes.Internal, "internal error")
	}
}
