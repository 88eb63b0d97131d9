package models

import "time"

// AssessmentAnswers maps a question id to its 1-5 ranking answer.
type AssessmentAnswers map[string]float64

type BurnoutAssessment struct {
	UserID   string           `json:"user_id,omitempty"`
	Score    float64          `json:"burnout_score"`
	Category SeverityCategory `json:"risk_level"`
	Answered int              `json:"answered"`
}

// AssessmentRecord is a scored assessment handed to a persistence sink.
type AssessmentRecord struct {
	ID         string            `json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	Answers    AssessmentAnswers `json:"answers"`
	Assessment BurnoutAssessment `json:"assessment"`
}
