package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/calmher/internal/assessment"
	"github.com/julianstephens/calmher/internal/calendar"
	"github.com/julianstephens/calmher/internal/logger"
	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/scheduler"
	"github.com/julianstephens/calmher/internal/storage"
	"github.com/julianstephens/calmher/internal/validation"
)

// Observer receives a notification for each successful operation.
// Implementations must be safe for concurrent use.
type Observer interface {
	ScheduleGenerated(category models.SeverityCategory, events int)
	MalformedEvents(n int)
	AssessmentScored(category models.SeverityCategory)
	PersistFailed(kind string)
}

type nopObserver struct{}

func (nopObserver) ScheduleGenerated(models.SeverityCategory, int) {}
func (nopObserver) MalformedEvents(int)                            {}
func (nopObserver) AssessmentScored(models.SeverityCategory)       {}
func (nopObserver) PersistFailed(string)                           {}

// Service ties request validation, generation, calendar export and
// persistence together. It holds no per-request state.
type Service struct {
	loc        *time.Location
	scheduler  *scheduler.Scheduler
	validator  *validation.Validator
	serializer *calendar.Serializer
	provider   assessment.Provider
	sink       storage.Sink
	observer   Observer
	newID      func() string
	now        func() time.Time
}

type Option func(*Service)

// WithLocation sets the timezone used for dates and zone-less event times.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithScheduler(sch *scheduler.Scheduler) Option {
	return func(s *Service) {
		if sch != nil {
			s.scheduler = sch
		}
	}
}

func WithProvider(p assessment.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.provider = p
		}
	}
}

func WithSink(sink storage.Sink) Option {
	return func(s *Service) {
		if sink != nil {
			s.sink = sink
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithIDGenerator sets the generator used for record ids and calendar UIDs.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithClock(fn func() time.Time) Option {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		loc:       time.UTC,
		scheduler: scheduler.New(),
		provider:  assessment.NewAverageProvider(),
		sink:      storage.NopSink{},
		observer:  nopObserver{},
		newID:     uuid.NewString,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.validator = validation.New(s.loc)
	s.serializer = calendar.New(
		calendar.WithLocation(s.loc),
		calendar.WithIDGenerator(s.newID),
		calendar.WithClock(s.now),
		// the validator has already reported these
		calendar.WithMalformedHandler(func(err error) {
			logger.Debug("Calendar export skipped event", "error", err)
		}),
	)
	return s
}

// Location returns the timezone requests are read in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// SinkPath describes where records are persisted.
func (s *Service) SinkPath() string {
	return s.sink.GetConfigPath()
}
