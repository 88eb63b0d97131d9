package assessment

import (
	"context"
	"math"
	"sort"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/errors"
	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/scheduler"
)

// Provider turns questionnaire answers into a burnout score.
type Provider interface {
	Score(ctx context.Context, answers models.AssessmentAnswers) (models.BurnoutAssessment, error)
}

// AverageProvider scores an assessment as the mean of its answers, rounded to two decimals.
type AverageProvider struct{}

func NewAverageProvider() *AverageProvider {
	return &AverageProvider{}
}

func (p *AverageProvider) Score(ctx context.Context, answers models.AssessmentAnswers) (models.BurnoutAssessment, error) {
	if err := ctx.Err(); err != nil {
		return models.BurnoutAssessment{}, err
	}
	if len(answers) == 0 {
		return models.BurnoutAssessment{}, &errors.InvalidInputError{
			Field:  "answers",
			Value:  0,
			Reason: "at least one answer is required",
		}
	}

	// sum in key order so the result does not depend on map iteration
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sum float64
	for _, k := range keys {
		v := answers[k]
		if math.IsNaN(v) || v < constants.MinBurnoutScore || v > constants.MaxBurnoutScore {
			return models.BurnoutAssessment{}, &errors.InvalidInputError{
				Field:  "answers." + k,
				Value:  v,
				Reason: "must be between 1 and 5",
			}
		}
		sum += v
	}

	score := math.Round(sum/float64(len(keys))*100) / 100
	category, err := scheduler.Classify(score)
	if err != nil {
		return models.BurnoutAssessment{}, err
	}

	return models.BurnoutAssessment{
		Score:    score,
		Category: category,
		Answered: len(keys),
	}, nil
}
