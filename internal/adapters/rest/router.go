package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/quentinrf/plant-monitor/services/light-analysis/pkg/api"
)

// Response is the envelope of every JSON reply
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// NewRouter exposes the analysis service over HTTP/JSON.
// Metrics are served from gatherer when it is non-nil.
func NewRouter(svc api.AnalysisServiceServer, gatherer prometheus.Gatherer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "ok"})
	})
	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	h := &handlers{svc: svc}
	v1 := r.Group("/v1")
	{
		v1.POST("/analyses", h.startAnalysis)
		v1.GET("/analyses/status", h.getStatus)
		v1.GET("/light", h.getCurrentLight)
		v1.GET("/records", h.listRecords)
		v1.GET("/records/:id", h.getRecord)
		v1.GET("/plants/match", h.matchPlant)
	}

	return r
}

type handlers struct {
	svc api.AnalysisServiceServer
}

func (h *handlers) startAnalysis(c *gin.Context) {
	var req api.StartAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	resp, err := h.svc.StartAnalysis(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusAccepted, Response{Code: http.StatusAccepted, Message: "accepted", Data: resp})
}

func (h *handlers) getStatus(c *gin.Context) {
	resp, err := h.svc.GetStatus(c.Request.Context(), &api.GetStatusRequest{})
	if err != nil {
		fail(c, err)
		return
	}
	success(c, resp.Status)
}

func (h *handlers) getCurrentLight(c *gin.Context) {
	resp, err := h.svc.GetCurrentLight(c.Request.Context(), &api.GetCurrentLightRequest{})
	if err != nil {
		fail(c, err)
		return
	}
	success(c, resp)
}

func (h *handlers) listRecords(c *gin.Context) {
	var limit int64
	if s := c.Query("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			badRequest(c, "limit must be an integer")
			return
		}
		limit = n
	}

	resp, err := h.svc.ListRecords(c.Request.Context(), &api.ListRecordsRequest{Limit: int32(limit)})
	if err != nil {
		fail(c, err)
		return
	}
	success(c, resp.Records)
}

func (h *handlers) getRecord(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "id must be an integer")
		return
	}

	resp, err := h.svc.GetRecord(c.Request.Context(), &api.GetRecordRequest{ID: id})
	if err != nil {
		fail(c, err)
		return
	}
	success(c, resp.Record)
}

func (h *handlers) matchPlant(c *gin.Context) {
	resp, err := h.svc.MatchPlant(c.Request.Context(), &api.MatchPlantRequest{Query: c.Query("q")})
	if err != nil {
		fail(c, err)
		return
	}
	success(c, resp)
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Code: http.StatusOK, Message: "success", Data: data})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: message})
}

// fail translates a service status error into an HTTP reply
func fail(c *gin.Context, err error) {
	st := status.Convert(err)
	code := httpStatus(st.Code())
	c.JSON(code, Response{Code: code, Message: st.Message()})
}

func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.FailedPrecondition:
		return http.StatusConflict
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Msg("http request")
	}
}
