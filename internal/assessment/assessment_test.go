package assessment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/julianstephens/calmher/internal/errors"
	"github.com/julianstephens/calmher/internal/models"
)

func TestAverageProvider_Score(t *testing.T) {
	tests := []struct {
		name     string
		answers  models.AssessmentAnswers
		score    float64
		category models.SeverityCategory
	}{
		{"single answer", models.AssessmentAnswers{"sleep": 1}, 1, models.SeverityLow},
		{"rounds to two decimals", models.AssessmentAnswers{"a": 2, "b": 2, "c": 3}, 2.33, models.SeverityModerate},
		{"boundary maps up", models.AssessmentAnswers{"a": 3, "b": 5}, 4, models.SeverityCritical},
		{"high", models.AssessmentAnswers{"a": 3, "b": 4, "c": 3, "d": 3}, 3.25, models.SeverityHigh},
	}

	p := NewAverageProvider()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Score(context.Background(), tt.answers)
			require.NoError(t, err)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, len(tt.answers), got.Answered)
		})
	}
}

func TestAverageProvider_RejectsInvalidAnswers(t *testing.T) {
	p := NewAverageProvider()

	_, err := p.Score(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = p.Score(context.Background(), models.AssessmentAnswers{"ok": 3, "bad": 6})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "answers.bad")

	_, err = p.Score(context.Background(), models.AssessmentAnswers{"zero": 0})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestAverageProvider_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAverageProvider().Score(ctx, models.AssessmentAnswers{"a": 2})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProviderInterface(t *testing.T) {
	var _ Provider = (*AverageProvider)(nil)
}
