package service

import (
	"context"

	"github.com/julianstephens/calmher/internal/logger"
	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/scheduler"
	"github.com/julianstephens/calmher/internal/validation"
)

type GenerateOptions struct {
	// Calendar also renders the schedule and the caller's events as iCalendar
	Calendar bool
	// Save hands the result to the configured sink
	Save bool
}

type Result struct {
	Schedule         models.Schedule
	CalendarDocument string
	Conflicts        validation.ValidationResult
	// RecordID is set when the record was persisted
	RecordID string
}

// Generate validates req and builds its schedule. Malformed calendar events
// are skipped and reported in Conflicts. ctx is checked before and after
// scheduling; a canceled request is never serialized or saved. A persistence failure is logged and
// leaves RecordID empty; it never fails the call.
func (s *Service) Generate(ctx context.Context, req models.ScheduleRequest, opts GenerateOptions) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	parsed, conflicts, err := s.validator.ValidateRequest(req)
	if err != nil {
		return Result{}, err
	}

	malformed := conflicts.Malformed()
	for _, m := range malformed {
		logger.Warn("Skipping malformed calendar event", "error", m)
	}
	if len(malformed) > 0 {
		s.observer.MalformedEvents(len(malformed))
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	schedule, err := s.scheduler.Generate(scheduler.Input{
		StartDate:   parsed.StartDate,
		EndDate:     parsed.EndDate,
		Score:       req.BurnoutLevel,
		Preferences: req.Preferences,
		Busy:        parsed.Busy,
	})
	if err != nil {
		return Result{}, err
	}
	// the caller may have given up while the days were being allocated
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{Schedule: schedule, Conflicts: conflicts}

	if opts.Calendar {
		doc, err := s.serializer.Serialize(schedule, req.CalendarEvents)
		if err != nil {
			return Result{}, err
		}
		res.CalendarDocument = doc
	}

	s.observer.ScheduleGenerated(schedule.Summary.Category, schedule.Summary.TotalEventsCreated)
	logger.Debug("Schedule generated",
		"category", schedule.Summary.Category,
		"events", schedule.Summary.TotalEventsCreated,
		"skipped", len(malformed))

	if opts.Save {
		res.RecordID = s.saveSchedule(ctx, req, res)
	}

	return res, nil
}

func (s *Service) saveSchedule(ctx context.Context, req models.ScheduleRequest, res Result) string {
	rec := models.ScheduleRecord{
		ID:               s.newID(),
		UserID:           req.UserID,
		CreatedAt:        s.now().UTC(),
		Request:          req,
		Schedule:         res.Schedule,
		CalendarDocument: res.CalendarDocument,
	}
	if err := s.sink.SaveSchedule(ctx, rec); err != nil {
		logger.Warn("Failed to persist schedule", "id", rec.ID, "sink", s.sink.GetConfigPath(), "error", err)
		s.observer.PersistFailed("schedule")
		return ""
	}
	logger.Info("Schedule saved", "id", rec.ID, "sink", s.sink.GetConfigPath())
	return rec.ID
}
