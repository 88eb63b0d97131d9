package models

import "time"

// CalendarEvent is a user-supplied commitment as it arrives over the wire.
// Start and End are ISO-8601 date-times and may be malformed.
type CalendarEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleRequest struct {
	UserID         string          `json:"user_id,omitempty"`
	StartDate      string          `json:"start_date"` // YYYY-MM-DD format
	EndDate        string          `json:"end_date"`   // YYYY-MM-DD format
	Preferences    string          `json:"preferences"`
	CalendarEvents []CalendarEvent `json:"calendar_events"`
	BurnoutLevel   float64         `json:"burnout_level"`
}

type ScheduleResult struct {
	Success          bool     `json:"success"`
	Schedule         Schedule `json:"schedule"`
	CalendarDocument string   `json:"calendar_document,omitempty"`
}

// ScheduleRecord is the unit handed to a persistence sink.
type ScheduleRecord struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	Request          ScheduleRequest `json:"request"`
	Schedule         Schedule        `json:"schedule"`
	CalendarDocument string          `json:"calendar_document,omitempty"`
}
