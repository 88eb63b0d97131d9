package calendar

import (
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/errors"
	"github.com/julianstephens/calmher/internal/logger"
	"github.com/julianstephens/calmher/internal/models"
)

// Serializer renders schedules as iCalendar documents.
// UIDs and timestamps come from injected sources so output can be pinned in tests.
type Serializer struct {
	newID       func() string
	now         func() time.Time
	loc         *time.Location
	onMalformed func(error)
}

type Option func(*Serializer)

func WithIDGenerator(fn func() string) Option {
	return func(s *Serializer) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithClock(fn func() time.Time) Option {
	return func(s *Serializer) {
		if fn != nil {
			s.now = fn
		}
	}
}

// WithLocation sets where zone-less original event times are read.
func WithLocation(loc *time.Location) Option {
	return func(s *Serializer) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithMalformedHandler is called once for every event that is skipped.
func WithMalformedHandler(fn func(error)) Option {
	return func(s *Serializer) {
		if fn != nil {
			s.onMalformed = fn
		}
	}
}

func New(opts ...Option) *Serializer {
	s := &Serializer{
		newID: uuid.NewString,
		now:   time.Now,
		loc:   time.UTC,
		onMalformed: func(err error) {
			logger.Warn("Skipping calendar event", "error", err)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serialize writes every scheduled event, then every parseable original, into
// a single VCALENDAR. Entries with unreadable or inverted times are skipped and
// reported through the malformed handler; they never fail the document.
func (s *Serializer) Serialize(schedule models.Schedule, originals []models.CalendarEvent) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(constants.CalendarProductID)

	stamp := s.now().UTC()

	for i, ev := range schedule.Events {
		if ev.End.Before(ev.Start) {
			s.onMalformed(&errors.MalformedEventError{Index: i, Title: ev.Title, Reason: "scheduled event ends before it starts"})
			continue
		}
		s.addEvent(cal, stamp, ev.Title, ev.Notes, ev.Start, ev.End, constants.CategoryWellness)
	}

	for i, orig := range originals {
		start, end, err := ParseInterval(orig.Start, orig.End, s.loc)
		if err != nil {
			s.onMalformed(&errors.MalformedEventError{Index: i, Title: orig.Title, Reason: err.Error()})
			continue
		}
		s.addEvent(cal, stamp, orig.Title, "", start, end, constants.CategoryOriginal)
	}

	return cal.Serialize(), nil
}

func (s *Serializer) addEvent(cal *ics.Calendar, stamp time.Time, summary, description string, start, end time.Time, category string) {
	event := cal.AddEvent(s.newID())
	event.SetCreatedTime(stamp)
	event.SetDtStampTime(stamp)
	event.SetStartAt(start)
	event.SetEndAt(end)
	event.SetSummary(summary)
	if description != "" {
		event.SetDescription(description)
	}
	event.SetProperty(ics.ComponentPropertyCategories, category)
}
