package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/calmher/internal/constants"
)

// BusyInterval is an externally fixed commitment the scheduler must not book over.
type BusyInterval struct {
	Title string
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) strictly overlaps the interval.
// Touching boundaries do not overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return Overlap(b.Start, b.End, start, end)
}

// Overlap reports whether [aStart, aEnd) and [bStart, bEnd) share any instant,
// i.e. max(aStart, bStart) < min(aEnd, bEnd).
func Overlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	lo := aStart
	if bStart.After(lo) {
		lo = bStart
	}
	hi := aEnd
	if bEnd.Before(hi) {
		hi = bEnd
	}
	return lo.Before(hi)
}

// ScheduledEvent is a single wellbeing activity placed on the calendar.
type ScheduledEvent struct {
	Title string
	Type  ActivityType
	Hobby string // free-text label, hobby events only
	Start time.Time
	End   time.Time
	Notes string
}

type scheduledEventJSON struct {
	Title string       `json:"title"`
	Type  ActivityType `json:"type"`
	Hobby string       `json:"hobby,omitempty"`
	Start string       `json:"start"`
	End   string       `json:"end"`
	Notes string       `json:"notes"`
}

func (e ScheduledEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(scheduledEventJSON{
		Title: e.Title,
		Type:  e.Type,
		Hobby: e.Hobby,
		Start: e.Start.Format(constants.EventTimeFormat),
		End:   e.End.Format(constants.EventTimeFormat),
		Notes: e.Notes,
	})
}

// UnmarshalJSON reads start/end as wall-clock times in UTC.
func (e *ScheduledEvent) UnmarshalJSON(data []byte) error {
	var raw scheduledEventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := time.Parse(constants.EventTimeFormat, raw.Start)
	if err != nil {
		return fmt.Errorf("invalid event start %q: %w", raw.Start, err)
	}
	end, err := time.Parse(constants.EventTimeFormat, raw.End)
	if err != nil {
		return fmt.Errorf("invalid event end %q: %w", raw.End, err)
	}
	*e = ScheduledEvent{
		Title: raw.Title,
		Type:  raw.Type,
		Hobby: raw.Hobby,
		Start: start,
		End:   end,
		Notes: raw.Notes,
	}
	return nil
}

// Minutes returns the event duration in whole minutes.
func (e ScheduledEvent) Minutes() int {
	return int(e.End.Sub(e.Start).Minutes())
}

type DateRange struct {
	Start string `json:"start"` // YYYY-MM-DD format
	End   string `json:"end"`   // YYYY-MM-DD format
}

type ScheduleSummary struct {
	BurnoutLevel       float64          `json:"burnout_level"`
	Category           SeverityCategory `json:"interpreted_burnout_category"`
	DateRange          DateRange        `json:"date_range"`
	TotalEventsCreated int              `json:"total_events_created"`
	Reason             string           `json:"reason,omitempty"`
}

// Schedule is built once per request and never mutated afterwards.
type Schedule struct {
	Summary ScheduleSummary  `json:"schedule_summary"`
	Events  []ScheduledEvent `json:"events"`
}

// EventsOn returns the events whose start falls on the given date (YYYY-MM-DD).
func (s Schedule) EventsOn(date string) []ScheduledEvent {
	var out []ScheduledEvent
	for _, e := range s.Events {
		if e.Start.Format(constants.DateFormat) == date {
			out = append(out, e)
		}
	}
	return out
}
