package services

import (
	"fmt"

	"logicheck/catalog"
	"logicheck/models"
)

// Sub-score weights. Their maxima sum to 85, so the final clamp never triggers.
const (
	completenessHigh = 30
	completenessMid  = 20
	completenessLow  = 10

	diversityHigh = 30
	diversityMid  = 20
	diversityLow  = 10

	balanceHigh = 25
	balanceLow  = 10

	thoroughHighlights = 10
	solidHighlights    = 5

	balanceMinRatio = 0.4
	balanceMaxRatio = 0.6
)

// Performance tiers, from highest threshold down.
var performanceTiers = []struct {
	min     int
	level   string
	message string
}{
	{80, "Expert", "Outstanding work! You have a sharp eye for biased language on every side of an issue."},
	{60, "Proficient", "Great job! You spot most bias techniques. Keep practicing to catch the subtler ones."},
	{40, "Developing", "Good start! You're learning to recognize bias. Try to look deeper at word choice and framing."},
	{0, "Beginner", "Keep practicing! Bias can be subtle. Focus on emotional words and how facts are presented."},
}

var biasInsights = []string{
	"Both articles lean on emotional language to make readers feel, rather than think, about the issue.",
	"Notice how each article frames the same facts to support its own conclusion, choosing which details to emphasize and which to leave out.",
	"Loaded words like \"radical\", \"reckless\" or \"common sense\" carry judgments before any evidence is presented.",
}

// BiasService issues two-article comparison challenges and scores highlights.
type BiasService struct {
	topics catalog.BiasTopicProvider
	cfg    engineConfig
}

// NewBiasService builds the engine over a topic provider.
func NewBiasService(topics catalog.BiasTopicProvider, opts ...Option) *BiasService {
	return &BiasService{topics: topics, cfg: applyOptions(opts)}
}

// NextChallenge picks a topic uniformly at random.
func (s *BiasService) NextChallenge() (models.BiasChallenge, error) {
	all := s.topics.Topics()
	if len(all) == 0 {
		return models.BiasChallenge{}, fmt.Errorf("%w: no bias topics available", ErrNotFound)
	}
	picked := all[s.cfg.pick(len(all))]

	return models.BiasChallenge{
		ChallengeID:  s.cfg.newID(),
		Topic:        picked.Topic,
		ArticleA:     picked.ArticleA,
		ArticleB:     picked.ArticleB,
		Instructions: catalog.BiasInstructions,
	}, nil
}

// ScoreHighlights turns the user's categorized highlights into feedback.
// Both sides absent is a validation error; an absent side next to a present
// one is scored as empty. The topic is only echoed back.
func (s *BiasService) ScoreHighlights(sub models.BiasHighlightSubmission) (models.BiasFeedback, error) {
	a, b := sub.ArticleAHighlights, sub.ArticleBHighlights
	if a == nil && b == nil {
		return models.BiasFeedback{}, validationErrorf("Missing highlights")
	}

	breakdown, err := countCategories(a, b)
	if err != nil {
		return models.BiasFeedback{}, err
	}

	fb := models.BiasFeedback{
		Topic:             sub.Topic,
		Strengths:         []string{},
		Improvements:      []string{},
		CategoryBreakdown: breakdown,
	}

	total := len(a) + len(b)
	score := scoreCompleteness(total, &fb) +
		scoreDiversity(breakdown, &fb) +
		scoreBalance(len(a), total, &fb)

	fb.OverallScore = clampScore(score)
	fb.Insights = append([]string(nil), biasInsights...)
	fb.PerformanceLevel, fb.Message = performanceFor(fb.OverallScore)
	return fb, nil
}

func countCategories(sides ...[]models.Highlight) (models.CategoryBreakdown, error) {
	var b models.CategoryBreakdown
	for _, side := range sides {
		for _, h := range side {
			if !h.Category.Valid() {
				return models.CategoryBreakdown{}, validationErrorf("unknown highlight category %q", h.Category)
			}
			switch h.Category {
			case models.CategoryLoaded:
				b.Loaded++
			case models.CategoryEmotional:
				b.Emotional++
			case models.CategoryFraming:
				b.Framing++
			}
		}
	}
	return b, nil
}

func scoreCompleteness(total int, fb *models.BiasFeedback) int {
	switch {
	case total >= thoroughHighlights:
		fb.Strengths = append(fb.Strengths, "Excellent thoroughness! You identified many bias indicators across both articles.")
		return completenessHigh
	case total >= solidHighlights:
		fb.Strengths = append(fb.Strengths, "Good effort identifying bias indicators in the articles.")
		return completenessMid
	default:
		fb.Improvements = append(fb.Improvements, "Try to find more bias indicators. Both articles contain several examples of biased language.")
		return completenessLow
	}
}

func scoreDiversity(b models.CategoryBreakdown, fb *models.BiasFeedback) int {
	distinct := 0
	for _, n := range []int{b.Loaded, b.Emotional, b.Framing} {
		if n > 0 {
			distinct++
		}
	}

	switch {
	case distinct >= len(models.HighlightCategories):
		fb.Strengths = append(fb.Strengths, "Great job recognizing all three types of bias: loaded language, emotional appeals and framing.")
		return diversityHigh
	case distinct == 2:
		fb.Improvements = append(fb.Improvements, "You found two types of bias. Look for the third category to complete your analysis.")
		return diversityMid
	default:
		fb.Improvements = append(fb.Improvements, "Try to identify different types of bias. Look for loaded words, emotional appeals and selective framing.")
		return diversityLow
	}
}

// scoreBalance rewards splitting attention between the articles. With no
// highlights at all the share of article A is taken as 0.
func scoreBalance(countA, total int, fb *models.BiasFeedback) int {
	ratioA := 0.0
	if total > 0 {
		ratioA = float64(countA) / float64(total)
	}

	if ratioA >= balanceMinRatio && ratioA <= balanceMaxRatio {
		fb.Strengths = append(fb.Strengths, "Balanced analysis! You examined both articles with equal scrutiny.")
		return balanceHigh
	}
	fb.Improvements = append(fb.Improvements, "Try to analyze both articles equally. Bias exists on all sides of an issue.")
	return balanceLow
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func performanceFor(score int) (string, string) {
	for _, t := range performanceTiers {
		if score >= t.min {
			return t.level, t.message
		}
	}
	last := performanceTiers[len(performanceTiers)-1]
	return last.level, last.message
}
