package scheduler

import (
	"time"

	"github.com/julianstephens/calmher/internal/models"
)

// slot is a candidate activity at a fixed time of day.
type slot struct {
	start    int // minutes from midnight
	minutes  int
	activity models.ActivityType
}

// dayPolicy describes which days a category books and what it books on them.
type dayPolicy struct {
	weekdays []time.Weekday // nil means every day
	slots    []slot
}

func policyFor(category models.SeverityCategory) (dayPolicy, bool) {
	switch category {
	case models.SeverityLow:
		return dayPolicy{
			slots: []slot{
				{start: 8 * 60, minutes: 20, activity: models.ActivityMeditation},
				{start: 19 * 60, minutes: 20, activity: models.ActivityJournaling},
			},
		}, true
	case models.SeverityModerate:
		return dayPolicy{
			slots: []slot{
				{start: 8 * 60, minutes: 20, activity: models.ActivityMeditation},
			},
		}, true
	case models.SeverityHigh:
		return dayPolicy{
			weekdays: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
			slots: []slot{
				{start: 8 * 60, minutes: 15, activity: models.ActivityMeditation},
				{start: 16 * 60, minutes: 30, activity: models.ActivityLightExercise},
				{start: 19 * 60, minutes: 15, activity: models.ActivityJournaling},
			},
		}, true
	case models.SeverityCritical:
		return dayPolicy{
			weekdays: []time.Weekday{time.Tuesday, time.Thursday},
			slots: []slot{
				{start: 12*60 + 30, minutes: 15, activity: models.ActivityRest},
				{start: 19 * 60, minutes: 10, activity: models.ActivityAffirmation},
			},
		}, true
	}
	return dayPolicy{}, false
}

func (p dayPolicy) appliesTo(day time.Weekday) bool {
	if p.weekdays == nil {
		return true
	}
	for _, wd := range p.weekdays {
		if wd == day {
			return true
		}
	}
	return false
}

// hobbySlot is appended for low and moderate burnout when a hobby was recognised.
var hobbySlot = slot{start: 16 * 60, minutes: 45, activity: models.ActivityHobby}

func allowsHobby(category models.SeverityCategory) bool {
	return category == models.SeverityLow || category == models.SeverityModerate
}

// Allocate proposes the day's activities for category and drops every
// candidate that overlaps a busy interval. Dropped candidates are never
// moved to another time.
//
// day is any instant on the calendar day; its location fixes wall-clock times.
// offset is the day's zero-based position in the requested range.
// A category that did not come from Classify books nothing.
func Allocate(day time.Time, offset int, category models.SeverityCategory, hobbies []string, busy []models.BusyInterval) []models.ScheduledEvent {
	policy, ok := policyFor(category)
	if !ok {
		return nil
	}

	var candidates []slot
	if policy.appliesTo(day.Weekday()) {
		candidates = append(candidates, policy.slots...)
	}
	if len(hobbies) > 0 && allowsHobby(category) {
		candidates = append(candidates, hobbySlot)
	}

	events := make([]models.ScheduledEvent, 0, len(candidates))
	for _, c := range candidates {
		start := atMinutes(day, c.start)
		end := start.Add(time.Duration(c.minutes) * time.Minute)
		if conflicts(start, end, busy) {
			continue
		}
		events = append(events, buildEvent(c.activity, start, end, offset, hobbies))
	}
	return events
}

func buildEvent(activity models.ActivityType, start, end time.Time, offset int, hobbies []string) models.ScheduledEvent {
	ev := models.ScheduledEvent{
		Title: activity.Title(),
		Type:  activity,
		Start: start,
		End:   end,
		Notes: activity.DefaultNote(),
	}
	switch activity {
	case models.ActivityAffirmation:
		ev.Notes = AffirmationFor(offset)
	case models.ActivityHobby:
		ev.Hobby = hobbies[0]
		ev.Notes = models.HobbyNote(hobbies[0])
	}
	return ev
}

func conflicts(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// atMinutes returns the wall-clock time minutes after midnight on day's date.
func atMinutes(day time.Time, minutes int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, day.Location())
}
