package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julianstephens/calmher/internal/errors"
	"github.com/julianstephens/calmher/internal/logger"
	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/service"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Success bool   `json:"success"`
	Detail  string `json:"detail"`
}

type assessmentRequest struct {
	UserID  string                   `json:"user_id"`
	Answers models.AssessmentAnswers `json:"answers"`
}

type assessmentResponse struct {
	Success    bool                     `json:"success"`
	Assessment models.BurnoutAssessment `json:"assessment"`
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) generateSchedule(w http.ResponseWriter, r *http.Request) {
	var req models.ScheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	withICS, _ := strconv.ParseBool(r.URL.Query().Get("ics"))

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	res, err := s.svc.Generate(ctx, req, service.GenerateOptions{Calendar: withICS, Save: true})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ScheduleResult{
		Success:          true,
		Schedule:         res.Schedule,
		CalendarDocument: res.CalendarDocument,
	})
}

func (s *Server) generateCalendar(w http.ResponseWriter, r *http.Request) {
	var req models.ScheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	res, err := s.svc.Generate(ctx, req, service.GenerateOptions{Calendar: true, Save: true})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="wellness-schedule.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(res.CalendarDocument)); err != nil {
		logger.Debug("Failed to write calendar response", "error", err)
	}
}

func (s *Server) scoreAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	result, err := s.svc.Assess(ctx, req.Answers, service.AssessOptions{UserID: req.UserID, Save: true})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessmentResponse{Success: true, Assessment: result})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	return true
}

// writeError maps caller mistakes to 400; everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.IsClientError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}
	logger.Error("Request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Debug("Failed to write response", "error", err)
	}
}
