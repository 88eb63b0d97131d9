package scheduler

import (
	"time"

	"github.com/julianstephens/calmher/internal/models"
)

const (
	cadenceStart   = 8 * 60 // minutes from midnight
	cadenceMinutes = 5
)

// CadenceInterval returns how many days apart recurring affirmations are placed,
// or 0 for a category that did not come from Classify.
func CadenceInterval(category models.SeverityCategory) int {
	switch category {
	case models.SeverityLow:
		return 1
	case models.SeverityModerate:
		return 2
	case models.SeverityHigh:
		return 3
	case models.SeverityCritical:
		return 7
	}
	return 0
}

// CadenceEvents returns the recurring affirmation for the day at offset, if
// one is due. It ignores busy intervals and other activities.
func CadenceEvents(day time.Time, offset int, category models.SeverityCategory) []models.ScheduledEvent {
	interval := CadenceInterval(category)
	if interval == 0 || offset%interval != 0 {
		return nil
	}
	start := atMinutes(day, cadenceStart)
	return []models.ScheduledEvent{{
		Title: models.ActivityAffirmation.Title(),
		Type:  models.ActivityAffirmation,
		Start: start,
		End:   start.Add(cadenceMinutes * time.Minute),
		Notes: AffirmationFor(offset),
	}}
}
