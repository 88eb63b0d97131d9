package scheduler

import (
	"time"

	"github.com/julianstephens/calmher/internal/models"
)

// Input is a fully parsed scheduling request.
type Input struct {
	StartDate   time.Time // any instant on the first day; its location is used for all events
	EndDate     time.Time // any instant on the last day
	Score       float64
	Preferences string
	Busy        []models.BusyInterval
}

type Scheduler struct {
	extractor HobbyExtractor
}

type Option func(*Scheduler)

// WithExtractor replaces the keyword-based hobby extractor.
func WithExtractor(e HobbyExtractor) Option {
	return func(s *Scheduler) {
		if e != nil {
			s.extractor = e
		}
	}
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{extractor: NewKeywordExtractor()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate builds the wellness schedule for in. The result depends only on
// in: repeated calls yield identical schedules.
func (s *Scheduler) Generate(in Input) (models.Schedule, error) {
	category, err := Classify(in.Score)
	if err != nil {
		return models.Schedule{}, err
	}

	days, err := Days(in.StartDate, in.EndDate)
	if err != nil {
		return models.Schedule{}, err
	}

	hobbies := s.extractor.ExtractHobbies(in.Preferences)

	allocated := make([][]models.ScheduledEvent, len(days))
	cadence := make([][]models.ScheduledEvent, len(days))
	for offset, day := range days {
		allocated[offset] = Allocate(day, offset, category, hobbies, in.Busy)
		cadence[offset] = CadenceEvents(day, offset, category)
	}

	return Assemble(in.StartDate, in.EndDate, category, in.Score, allocated, cadence)
}
