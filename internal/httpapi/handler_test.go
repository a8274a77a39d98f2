package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mallaplan/planner/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer() *Server {
	return NewServer(metrics.New(prometheus.NewRegistry()), time.Second)
}

func TestHandleHealthz(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePlan_HappyPath(t *testing.T) {
	s := newTestServer()

	body := map[string]any{
		"approved_course_keys": []string{},
		"rows": map[string]any{
			"curriculum": []map[string]any{
				{"malla_id": 1, "name": "Calculus I"},
			},
			"offering": []map[string]any{
				{"code": "C1", "name": "Calculus I", "section_label": "1", "meetings": "LU 08:00 - 10:00", "instructor": "Smith"},
			},
		},
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/plan", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp responseWire
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ScheduleCount)
}

func TestHandlePlan_CyclicCurriculumReturns422(t *testing.T) {
	s := newTestServer()

	body := map[string]any{
		"rows": map[string]any{
			"curriculum": []map[string]any{
				{"malla_id": 1, "name": "A", "prerequisite_ids": []int{2}},
				{"malla_id": 2, "name": "B", "prerequisite_ids": []int{1}},
			},
		},
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/plan", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var envelope errorWire
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "CyclicCurriculum", envelope.ErrorKind)
}

func TestHandlePlan_MalformedBodyReturns400(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/plan", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePlan_AttachesRequestIDHeader(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
