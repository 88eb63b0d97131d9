package storage

import (
	"context"

	"github.com/julianstephens/calmher/internal/models"
)

// Sink is a write-only destination for generated schedules and scored assessments.
type Sink interface {
	// Lifecycle
	Init(ctx context.Context) error
	Load(ctx context.Context) error
	Close() error

	SaveSchedule(ctx context.Context, rec models.ScheduleRecord) error
	SaveAssessment(ctx context.Context, rec models.AssessmentRecord) error

	// Utils
	GetConfigPath() string
}
