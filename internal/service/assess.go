package service

import (
	"context"

	"github.com/julianstephens/calmher/internal/logger"
	"github.com/julianstephens/calmher/internal/models"
)

// AssessOptions mirrors GenerateOptions for burnout assessments.
type AssessOptions struct {
	UserID string
	Save   bool
}

// Assess scores a questionnaire with the configured provider.
func (s *Service) Assess(ctx context.Context, answers models.AssessmentAnswers, opts AssessOptions) (models.BurnoutAssessment, error) {
	result, err := s.provider.Score(ctx, answers)
	if err != nil {
		return models.BurnoutAssessment{}, err
	}
	result.UserID = opts.UserID

	s.observer.AssessmentScored(result.Category)

	if opts.Save {
		rec := models.AssessmentRecord{
			ID:         s.newID(),
			CreatedAt:  s.now().UTC(),
			Answers:    answers,
			Assessment: result,
		}
		if err := s.sink.SaveAssessment(ctx, rec); err != nil {
			logger.Warn("Failed to persist assessment", "id", rec.ID, "error", err)
			s.observer.PersistFailed("assessment")
		}
	}

	return result, nil
}
