package models

// FallacyScenario is one entry of the sparring catalog. Scenario text doubles as its lookup key.
type FallacyScenario struct {
	Scenario      string   `json:"scenario"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// SparringChallenge is issued once per request and never stored.
// CorrectAnswer is sent to the client on purpose; there is no anti-cheat.
type SparringChallenge struct {
	ChallengeID   string   `json:"challengeId"`
	Scenario      string   `json:"scenario"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// VerifyAnswerRequest is the payload of POST /api/dojo/verify-answer.
// ChallengeID is accepted for client compatibility but never checked.
type VerifyAnswerRequest struct {
	ChallengeID string `json:"challengeId"`
	Scenario    string `json:"scenario"`
	UserAnswer  string `json:"userAnswer"`
}

// VerifyAnswerResult tells the client whether the pick was right and why.
type VerifyAnswerResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}
