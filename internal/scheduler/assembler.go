package scheduler

import (
	"fmt"
	"time"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/errors"
	"github.com/julianstephens/calmher/internal/models"
)

// Days returns midnight of every calendar day from start to end inclusive,
// in start's location. It returns InvalidRangeError when end precedes start.
func Days(start, end time.Time) ([]time.Time, error) {
	sy, sm, sd := start.Date()
	ey, em, ed := end.In(start.Location()).Date()
	first := time.Date(sy, sm, sd, 0, 0, 0, 0, start.Location())
	last := time.Date(ey, em, ed, 0, 0, 0, 0, start.Location())

	if last.Before(first) {
		return nil, &errors.InvalidRangeError{
			Start: first.Format(constants.DateFormat),
			End:   last.Format(constants.DateFormat),
		}
	}

	var days []time.Time
	for i := 0; ; i++ {
		d := time.Date(sy, sm, sd+i, 0, 0, 0, 0, start.Location())
		if d.After(last) {
			break
		}
		days = append(days, d)
	}
	return days, nil
}

// Assemble merges per-day allocator and cadence output into a Schedule.
// allocated[i] and cadence[i] belong to the i-th day of the range; within a
// day allocator events come first. Either a complete Schedule or an error is
// returned.
func Assemble(start, end time.Time, category models.SeverityCategory, score float64, allocated, cadence [][]models.ScheduledEvent) (models.Schedule, error) {
	days, err := Days(start, end)
	if err != nil {
		return models.Schedule{}, err
	}
	if len(allocated) != len(days) || len(cadence) != len(days) {
		return models.Schedule{}, &errors.InvalidInputError{
			Field:  "per-day events",
			Value:  fmt.Sprintf("%d allocated, %d cadence", len(allocated), len(cadence)),
			Reason: fmt.Sprintf("expected one entry per day (%d days)", len(days)),
		}
	}

	events := make([]models.ScheduledEvent, 0)
	for i := range days {
		events = append(events, allocated[i]...)
		events = append(events, cadence[i]...)
	}

	summary := models.ScheduleSummary{
		BurnoutLevel: score,
		Category:     category,
		DateRange: models.DateRange{
			Start: days[0].Format(constants.DateFormat),
			End:   days[len(days)-1].Format(constants.DateFormat),
		},
		TotalEventsCreated: len(events),
	}
	if len(events) == 0 {
		summary.Reason = constants.EmptyScheduleReason
	}

	return models.Schedule{Summary: summary, Events: events}, nil
}
