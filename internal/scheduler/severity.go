package scheduler

import (
	"math"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/errors"
	"github.com/julianstephens/calmher/internal/models"
)

// Classify maps a burnout score in [1.0, 5.0] to its severity category.
// Bands are half-open on the low end; 5.0 belongs to critical.
func Classify(score float64) (models.SeverityCategory, error) {
	if err := ValidateScore(score); err != nil {
		return 0, err
	}

	switch {
	case score < 2.0:
		return models.SeverityLow, nil
	case score < 3.0:
		return models.SeverityModerate, nil
	case score < 4.0:
		return models.SeverityHigh, nil
	default:
		return models.SeverityCritical, nil
	}
}

// ValidateScore rejects scores outside the burnout domain, including NaN.
func ValidateScore(score float64) error {
	if math.IsNaN(score) || score < constants.MinBurnoutScore || score > constants.MaxBurnoutScore {
		return &errors.InvalidInputError{
			Field:  "burnout_level",
			Value:  score,
			Reason: "must be between 1 and 5",
		}
	}
	return nil
}
