package services

import (
	"fmt"

	"logicheck/catalog"
	"logicheck/models"
)

// SparringService issues fallacy identification challenges and grades answers.
// It holds no mutable state.
type SparringService struct {
	scenarios catalog.FallacySource
	cfg       engineConfig
}

// NewSparringService builds the engine over a scenario source.
func NewSparringService(scenarios catalog.FallacySource, opts ...Option) *SparringService {
	return &SparringService{scenarios: scenarios, cfg: applyOptions(opts)}
}

// NextChallenge picks a scenario uniformly at random and wraps it with a fresh id.
func (s *SparringService) NextChallenge() (models.SparringChallenge, error) {
	all := s.scenarios.Scenarios()
	if len(all) == 0 {
		return models.SparringChallenge{}, fmt.Errorf("%w: no sparring scenarios available", ErrNotFound)
	}
	picked := all[s.cfg.pick(len(all))]

	return models.SparringChallenge{
		ChallengeID:   s.cfg.newID(),
		Scenario:      picked.Scenario,
		Options:       picked.Options,
		CorrectAnswer: picked.CorrectAnswer,
	}, nil
}

// VerifyAnswer looks the scenario up by its exact text and compares the answer
// by exact string equality.
func (s *SparringService) VerifyAnswer(scenarioText, userAnswer string) (models.VerifyAnswerResult, error) {
	if scenarioText == "" || userAnswer == "" {
		return models.VerifyAnswerResult{}, validationErrorf("Missing required fields")
	}

	entry, ok := s.scenarios.FindByScenario(scenarioText)
	if !ok {
		return models.VerifyAnswerResult{}, fmt.Errorf("%w: Challenge not found", ErrNotFound)
	}

	return models.VerifyAnswerResult{
		IsCorrect:     userAnswer == entry.CorrectAnswer,
		CorrectAnswer: entry.CorrectAnswer,
		Explanation:   entry.Explanation,
	}, nil
}
