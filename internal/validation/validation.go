package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/calmher/internal/calendar"
	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/errors"
	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/scheduler"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvalidDateTime        ConflictType = "invalid_datetime"
	ConflictOverlappingCommitments ConflictType = "overlapping_commitments"
)

// Conflict represents a problem found in a schedule request's calendar events
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Items       []string // Event titles involved
	TimeRange   string   // Human-readable time range (if applicable)
	Err         error    // set for invalid_datetime
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Malformed returns the errors of every event that was skipped.
func (vr *ValidationResult) Malformed() []error {
	var errs []error
	for _, c := range vr.Conflicts {
		if c.Type == ConflictInvalidDateTime && c.Err != nil {
			errs = append(errs, c.Err)
		}
	}
	return errs
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Request is a schedule request with its dates and events parsed.
type Request struct {
	StartDate time.Time
	EndDate   time.Time
	Busy      []models.BusyInterval
}

// Validator checks schedule requests before they reach the scheduler
type Validator struct {
	loc *time.Location
}

// New creates a Validator that reads dates and zone-less times in loc.
func New(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{loc: loc}
}

// ValidateRequest parses req. Bad dates, an inverted or overlong range and an
// out-of-range burnout level are errors. Calendar events that cannot be parsed are left out
// of Busy and reported as invalid_datetime conflicts; overlapping commitments
// are reported but kept.
func (v *Validator) ValidateRequest(req models.ScheduleRequest) (Request, ValidationResult, error) {
	result := ValidationResult{Conflicts: []Conflict{}}

	if err := scheduler.ValidateScore(req.BurnoutLevel); err != nil {
		return Request{}, result, err
	}

	start, err := v.parseDate("start_date", req.StartDate)
	if err != nil {
		return Request{}, result, err
	}
	end, err := v.parseDate("end_date", req.EndDate)
	if err != nil {
		return Request{}, result, err
	}
	if end.Before(start) {
		return Request{}, result, &errors.InvalidRangeError{Start: req.StartDate, End: req.EndDate}
	}
	if n := rangeDays(start, end); n > constants.MaxRangeDays {
		return Request{}, result, &errors.InvalidInputError{
			Field:  "end_date",
			Value:  req.EndDate,
			Reason: fmt.Sprintf("range spans %d days, at most %d allowed", n, constants.MaxRangeDays),
		}
	}

	busy := make([]models.BusyInterval, 0, len(req.CalendarEvents))
	for i, ev := range req.CalendarEvents {
		s, e, err := calendar.ParseInterval(ev.Start, ev.End, v.loc)
		if err != nil {
			malformed := &errors.MalformedEventError{Index: i, Title: ev.Title, Reason: err.Error()}
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Event \"%s\" has invalid times: %s", ev.Title, err),
				Items:       []string{ev.Title},
				Err:         malformed,
			})
			continue
		}
		busy = append(busy, models.BusyInterval{Title: ev.Title, Start: s, End: e})
	}

	result.Conflicts = append(result.Conflicts, overlappingCommitments(busy)...)

	return Request{StartDate: start, EndDate: end, Busy: busy}, result, nil
}

// rangeDays counts calendar days from start to end inclusive.
func rangeDays(start, end time.Time) int {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	first := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	last := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int((last.Unix()-first.Unix())/(24*60*60)) + 1
}

func (v *Validator) parseDate(field, value string) (time.Time, error) {
	d, err := time.ParseInLocation(constants.DateFormat, strings.TrimSpace(value), v.loc)
	if err != nil {
		return time.Time{}, &errors.InvalidInputError{
			Field:  field,
			Value:  value,
			Reason: "expected YYYY-MM-DD",
		}
	}
	return d, nil
}

func overlappingCommitments(busy []models.BusyInterval) []Conflict {
	var conflicts []Conflict
	for i := 0; i < len(busy); i++ {
		for j := i + 1; j < len(busy); j++ {
			a, b := busy[i], busy[j]
			if !models.Overlap(a.Start, a.End, b.Start, b.End) {
				continue
			}
			timeRange := fmt.Sprintf("%s-%s", a.Start.Format(constants.TimeFormat), a.End.Format(constants.TimeFormat))
			conflicts = append(conflicts, Conflict{
				Type: ConflictOverlappingCommitments,
				Description: fmt.Sprintf("%s: %s \"%s\" overlaps \"%s\"",
					formatDate(a.Start), timeRange, a.Title, b.Title),
				Date:      a.Start.Format(constants.DateFormat),
				Items:     []string{a.Title, b.Title},
				TimeRange: timeRange,
			})
		}
	}
	return conflicts
}

func formatDate(t time.Time) string {
	return t.Format("Mon Jan 2")
}
