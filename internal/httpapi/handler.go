package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/mallaplan/planner/internal/metrics"
	"github.com/mallaplan/planner/planner"
)

// planRequestWire is the full body of POST /v1/plan: the §6.2 request plus
// the inlined row slices (§6.5).
type planRequestWire struct {
	requestWire
	Rows struct {
		Curriculum []curriculumRowWire `json:"curriculum"`
		Offering   []offeringRowWire   `json:"offering"`
		Difficulty []difficultyRowWire `json:"difficulty"`
	} `json:"rows"`
}

// Server wires cmd/plannerd's HTTP surface: POST /v1/plan, GET /healthz,
// GET /metrics.
type Server struct {
	engine  *gin.Engine
	metrics *metrics.Metrics
	timeout time.Duration
}

// NewServer builds a gin engine with the routes of spec.md §6.5 registered.
func NewServer(m *metrics.Metrics, requestTimeout time.Duration) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestIDMiddleware(), loggingMiddleware())

	s := &Server{engine: engine, metrics: m, timeout: requestTimeout}

	engine.GET("/healthz", s.handleHealthz)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))
	engine.POST("/v1/plan", s.handlePlan)

	return s
}

// Handler returns the underlying http.Handler for use with http.Server.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePlan(c *gin.Context) {
	start := time.Now()

	var body planRequestWire
	if err := c.ShouldBindJSON(&body); err != nil {
		s.metrics.RecordPlan("input_parse", time.Since(start).Seconds())
		c.JSON(http.StatusBadRequest, errorWire{ErrorKind: "InputParse", Message: err.Error()})
		return
	}

	req, err := toRequest(body.requestWire)
	if err != nil {
		s.metrics.RecordPlan("input_parse", time.Since(start).Seconds())
		c.JSON(http.StatusBadRequest, errorWire{ErrorKind: "InputParse", Message: err.Error()})
		return
	}

	rows := planner.Rows{
		Curriculum: fromCurriculumRowsWire(body.Rows.Curriculum),
		Offering:   fromOfferingRowsWire(body.Rows.Offering),
		Difficulty: fromDifficultyRowsWire(body.Rows.Difficulty),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.timeout)
	defer cancel()

	resp, err := planner.Plan(ctx, rows, req)
	if err != nil {
		var perr *planner.Error
		if errors.As(err, &perr) {
			status, ok := statusFor(perr.Kind)
			if !ok {
				status = http.StatusInternalServerError
			}
			level := log.Warn()
			if status == http.StatusInternalServerError {
				level = log.Error()
			}
			level.Str("request_id", requestID(c)).Str("error_kind", string(perr.Kind)).Msg(perr.Message)

			s.metrics.RecordPlan(string(perr.Kind), time.Since(start).Seconds())
			c.JSON(status, fromError(perr))
			return
		}

		log.Error().Str("request_id", requestID(c)).Err(err).Msg("unexpected plan error")
		s.metrics.RecordPlan("unknown", time.Since(start).Seconds())
		c.JSON(http.StatusInternalServerError, errorWire{ErrorKind: "InputParse", Message: err.Error()})
		return
	}

	s.metrics.RecordPlan("ok", time.Since(start).Seconds())
	s.metrics.ScheduleCandidates.Observe(float64(resp.ScheduleCount))
	if resp.Diagnostics.PartialResult {
		s.metrics.PartialResults.Inc()
	}
	if resp.Diagnostics.LivenessFallback {
		s.metrics.LivenessFallbacks.Inc()
	}

	c.JSON(http.StatusOK, fromResponse(resp))
}

// statusFor maps a fatal ErrorKind to its HTTP status (spec.md §6.5).
func statusFor(kind planner.ErrorKind) (int, bool) {
	switch kind {
	case planner.ErrorKindInputParse, planner.ErrorKindDuplicateName:
		return http.StatusBadRequest, true
	case planner.ErrorKindCyclicCurriculum:
		return http.StatusUnprocessableEntity, true
	default:
		return 0, false
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	v, _ := c.Get("request_id")
	s, _ := v.(string)
	return s
}

func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("request_id", requestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request completed")
	}
}
