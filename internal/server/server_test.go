package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/service"
)

type memorySink struct {
	mu          sync.Mutex
	schedules   []models.ScheduleRecord
	assessments []models.AssessmentRecord
}

func (s *memorySink) Init(context.Context) error { return nil }
func (s *memorySink) Load(context.Context) error { return nil }
func (s *memorySink) Close() error               { return nil }
func (s *memorySink) GetConfigPath() string      { return "memory" }

func (s *memorySink) SaveSchedule(_ context.Context, rec models.ScheduleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = append(s.schedules, rec)
	return nil
}

func (s *memorySink) SaveAssessment(_ context.Context, rec models.AssessmentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments = append(s.assessments, rec)
	return nil
}

type testEnv struct {
	handler http.Handler
	sink    *memorySink
	server  *Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	sink := &memorySink{}
	metrics := NewMetrics()
	svc := service.New(service.WithSink(sink), service.WithObserver(metrics))
	srv := New(Config{Addr: "127.0.0.1:0", CORSOrigins: []string{"http://localhost:3000"}}, svc, metrics)
	return &testEnv{handler: srv.Handler(), sink: sink, server: srv}
}

func (e *testEnv) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func lowRequest() models.ScheduleRequest {
	return models.ScheduleRequest{
		StartDate:    "2024-06-03",
		EndDate:      "2024-06-03",
		BurnoutLevel: 1.5,
		CalendarEvents: []models.CalendarEvent{
			{Title: "Standup", Start: "2024-06-03T10:00:00", End: "2024-06-03T10:15:00"},
		},
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestGenerateSchedule(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/generate-schedule", lowRequest())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.Equal(t, true, raw["success"])
	assert.NotContains(t, raw, "calendar_document")
	summary := raw["schedule"].(map[string]any)["schedule_summary"].(map[string]any)
	assert.Equal(t, "low", summary["interpreted_burnout_category"])
	assert.Equal(t, float64(3), summary["total_events_created"])

	var result models.ScheduleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Schedule.Events, 3)
	assert.Equal(t, "Meditation", result.Schedule.Events[0].Title)

	require.Len(t, env.sink.schedules, 1, "schedules are persisted")
}

func TestGenerateSchedule_WithICS(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/generate-schedule?ics=true", lowRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ScheduleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result.CalendarDocument, "BEGIN:VCALENDAR")
	assert.Equal(t, 4, strings.Count(result.CalendarDocument, "BEGIN:VEVENT"))
}

func TestGenerateCalendar(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/generate-schedule.ics", lowRequest())
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "text/calendar; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".ics")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "BEGIN:VCALENDAR"))
	assert.Contains(t, rec.Body.String(), "SUMMARY:Standup")
}

func TestGenerateSchedule_ClientErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   any
		detail string
	}{
		{"bad json", `{"start_date": `, "invalid request body"},
		{"burnout too high", func() models.ScheduleRequest { r := lowRequest(); r.BurnoutLevel = 7; return r }(), "burnout_level"},
		{"bad date", func() models.ScheduleRequest { r := lowRequest(); r.EndDate = "soon"; return r }(), "end_date"},
		{"inverted range", func() models.ScheduleRequest { r := lowRequest(); r.StartDate = "2024-06-09"; return r }(), "before start date"},
		{"range too long", func() models.ScheduleRequest {
			r := lowRequest()
			r.StartDate, r.EndDate = "0001-01-01", "9999-12-31"
			return r
		}(), "at most 366 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(t, http.MethodPost, "/api/generate-schedule", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.False(t, resp.Success)
			assert.Contains(t, resp.Detail, tt.detail)
			assert.Empty(t, env.sink.schedules)
		})
	}
}

func TestGenerateSchedule_MalformedEventsStillSucceed(t *testing.T) {
	env := newTestEnv(t)
	req := lowRequest()
	req.CalendarEvents = append(req.CalendarEvents, models.CalendarEvent{Title: "???", Start: "later", End: "much later"})

	rec := env.do(t, http.MethodPost, "/api/generate-schedule?ics=1", req)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ScheduleResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 4, strings.Count(result.CalendarDocument, "BEGIN:VEVENT"))
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/generate-schedule", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAssessment(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/assessment", map[string]any{
		"user_id": "u1",
		"answers": map[string]float64{"sleep": 2, "energy": 3},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp assessmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 2.5, resp.Assessment.Score)
	assert.Equal(t, models.SeverityModerate, resp.Assessment.Category)
	assert.Equal(t, "u1", resp.Assessment.UserID)
	require.Len(t, env.sink.assessments, 1)
}

func TestAssessment_Invalid(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/assessment", map[string]any{"answers": map[string]float64{}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Detail, "answers")
}

func TestCORS(t *testing.T) {
	env := newTestEnv(t)
	data, err := json.Marshal(lowRequest())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-schedule", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/generate-schedule", lowRequest())
	env.do(t, http.MethodPost, "/api/generate-schedule", map[string]any{"burnout_level": 9})

	rec := env.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.Contains(t, body, `calmher_schedules_generated_total{category="low"} 1`)
	assert.Contains(t, body, `calmher_events_scheduled_total 3`)
	assert.Contains(t, body, `calmher_http_requests_total{route="generate_schedule",status="200"} 1`)
	assert.Contains(t, body, `calmher_http_requests_total{route="generate_schedule",status="400"} 1`)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ScheduleGenerated(models.SeverityLow, 1)
	m.MalformedEvents(1)
	m.AssessmentScored(models.SeverityHigh)
	m.PersistFailed("schedule")

	rec := httptest.NewRecorder()
	m.WrapHandler("x", http.HandlerFunc(healthHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServe_Shutdown(t *testing.T) {
	env := newTestEnv(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- env.server.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
