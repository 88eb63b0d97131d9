package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/calmher/internal/calendar"
	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/models"
)

// RequestFlags collects a schedule request from flags, an optional request
// file and, with --interactive, a form for whatever is still missing.
type RequestFlags struct {
	Request     string  `help:"Read the request from a JSON file; other flags override its fields." type:"existingfile"`
	Start       string  `help:"First day of the schedule (YYYY-MM-DD or 'today')."`
	End         string  `help:"Last day of the schedule (YYYY-MM-DD or 'today')."`
	Burnout     float64 `help:"Burnout level from 1 (low) to 5 (critical)."`
	Prefs       string  `help:"Free-text preferences such as hobbies."`
	Events      string  `help:"Existing commitments as a JSON array or an .ics file." type:"existingfile"`
	User        string  `help:"User id stored with saved records."`
	Interactive bool    `short:"i" help:"Prompt for missing fields."`
}

func (f *RequestFlags) Build() (models.ScheduleRequest, error) {
	var req models.ScheduleRequest

	if f.Request != "" {
		data, err := os.ReadFile(f.Request)
		if err != nil {
			return req, fmt.Errorf("failed to read request file: %w", err)
		}
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("failed to parse request file %s: %w", f.Request, err)
		}
	}

	if f.Start != "" {
		req.StartDate = resolveDate(f.Start)
	}
	if f.End != "" {
		req.EndDate = resolveDate(f.End)
	}
	if f.Burnout != 0 {
		req.BurnoutLevel = f.Burnout
	}
	if f.Prefs != "" {
		req.Preferences = f.Prefs
	}
	if f.User != "" {
		req.UserID = f.User
	}
	if f.Events != "" {
		events, err := readEvents(f.Events)
		if err != nil {
			return req, err
		}
		req.CalendarEvents = events
	}

	if f.Interactive {
		if err := promptMissing(&req); err != nil {
			return req, err
		}
	}

	if req.StartDate == "" || req.EndDate == "" || req.BurnoutLevel == 0 {
		return req, fmt.Errorf("start, end and burnout are required (use flags, --request or --interactive)")
	}
	return req, nil
}

func resolveDate(s string) string {
	if strings.EqualFold(s, "today") {
		return time.Now().Format(constants.DateFormat)
	}
	return s
}

// readEvents loads commitments from JSON or, for .ics files, from iCalendar.
func readEvents(path string) ([]models.CalendarEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open events file: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".ics") {
		events, err := calendar.ParseEvents(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return events, nil
	}

	var events []models.CalendarEvent
	if err := json.NewDecoder(f).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return events, nil
}

func promptMissing(req *models.ScheduleRequest) error {
	burnout := ""
	if req.BurnoutLevel != 0 {
		burnout = strconv.FormatFloat(req.BurnoutLevel, 'f', -1, 64)
	}
	if req.StartDate == "" {
		req.StartDate = time.Now().Format(constants.DateFormat)
	}
	if req.EndDate == "" {
		req.EndDate = time.Now().AddDate(0, 0, 6).Format(constants.DateFormat)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&req.StartDate).
				Validate(validateDate),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(&req.EndDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Burnout level").
				Description("1 = doing fine, 5 = running on empty").
				Value(&burnout).
				Validate(validateBurnout),
			huh.NewText().
				Title("Preferences").
				Description("Hobbies or things that help you unwind").
				Value(&req.Preferences),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	level, err := strconv.ParseFloat(strings.TrimSpace(burnout), 64)
	if err != nil {
		return fmt.Errorf("invalid burnout level: %w", err)
	}
	req.BurnoutLevel = level
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func validateBurnout(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v < constants.MinBurnoutScore || v > constants.MaxBurnoutScore {
		return fmt.Errorf("must be between 1 and 5")
	}
	return nil
}
