package storage

import (
	"context"

	"github.com/julianstephens/calmher/internal/models"
)

// NopSink discards everything. It backs the "none" driver.
type NopSink struct{}

func (NopSink) Init(context.Context) error                                    { return nil }
func (NopSink) Load(context.Context) error                                    { return nil }
func (NopSink) Close() error                                                  { return nil }
func (NopSink) SaveSchedule(context.Context, models.ScheduleRecord) error     { return nil }
func (NopSink) SaveAssessment(context.Context, models.AssessmentRecord) error { return nil }
func (NopSink) GetConfigPath() string                                         { return "none" }

// UnavailableSink stands in for a sink that could not be built. Every
// operation reports the original error.
type UnavailableSink struct {
	Err error
}

func (s UnavailableSink) Init(context.Context) error                                { return s.Err }
func (s UnavailableSink) Load(context.Context) error                                { return s.Err }
func (s UnavailableSink) Close() error                                              { return nil }
func (s UnavailableSink) SaveSchedule(context.Context, models.ScheduleRecord) error { return s.Err }
func (s UnavailableSink) SaveAssessment(context.Context, models.AssessmentRecord) error {
	return s.Err
}
func (s UnavailableSink) GetConfigPath() string { return "unavailable" }
