package models

import "time"

// Analysis kinds recorded in a learner's history.
const (
	AnalysisKindText  = "text"
	AnalysisKindEssay = "essay"
)

// DojoStats tracks a learner's practice results.
type DojoStats struct {
	TotalChallenges int            `bson:"totalChallenges" json:"totalChallenges"`
	CorrectAnswers  int            `bson:"correctAnswers" json:"correctAnswers"`
	FallacyMastery  map[string]int `bson:"fallacyMastery,omitempty" json:"fallacyMastery"`
	BiasChallenges  int            `bson:"biasChallenges" json:"biasChallenges"`
	BestBiasScore   int            `bson:"bestBiasScore" json:"bestBiasScore"`
}

// AnalysisRecord is one entry of the analysis history.
type AnalysisRecord struct {
	Type       string    `bson:"type" json:"type"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	TextLength int       `bson:"textLength" json:"textLength"`
}

// LearnerProgress is stored per learner id in the learners collection
type LearnerProgress struct {
	LearnerID       string           `bson:"_id" json:"learnerId"`
	DojoStats       DojoStats        `bson:"dojoStats" json:"dojoStats"`
	AnalysisHistory []AnalysisRecord `bson:"analysisHistory,omitempty" json:"analysisHistory"`
	CreatedAt       time.Time        `bson:"createdAt" json:"createdAt"`
	LastActive      time.Time        `bson:"lastActive" json:"lastActive"`
}

// Accuracy is the share of sparring answers that were correct, 0 when none were given.
func (s DojoStats) Accuracy() float64 {
	if s.TotalChallenges == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.TotalChallenges)
}
