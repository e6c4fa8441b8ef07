package services

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"logicheck/internal/cache"
	"logicheck/models"
)

const (
	defaultMainClaim        = "No clear main claim identified."
	defaultSocraticQuestion = "What evidence would strengthen this argument?"
	defaultFallacyName      = "Unknown Fallacy"
	defaultExplanation      = "No explanation provided."
	defaultFeedbackCategory = "General"
	defaultComment          = "No feedback provided."
)

var limitPrinter = message.NewPrinter(language.English)

// AnalyzerLimits bounds the size of submitted text, in characters.
type AnalyzerLimits struct {
	MaxTextLength  int
	MaxEssayLength int
}

// DefaultAnalyzerLimits matches the limits the web client advertises.
func DefaultAnalyzerLimits() AnalyzerLimits {
	return AnalyzerLimits{MaxTextLength: 10000, MaxEssayLength: 20000}
}

// AnalyzerService runs the text analyzer and the essay clinic on top of a
// text generator. Replies are cached by submitted text.
type AnalyzerService struct {
	gen    TextGenerator
	cache  *cache.Store
	limits AnalyzerLimits
}

// NewAnalyzerService accepts a nil store to disable caching.
func NewAnalyzerService(gen TextGenerator, store *cache.Store, limits AnalyzerLimits) *AnalyzerService {
	return &AnalyzerService{gen: gen, cache: store, limits: limits}
}

// loose mirrors of the model reply; every field is optional so that partial
// replies can be normalised instead of rejected.
type rawFallacy struct {
	FallacyName string `json:"fallacyName"`
	Quote       string `json:"quote"`
	Explanation string `json:"explanation"`
}

type rawTextAnalysis struct {
	MainClaim        string          `json:"mainClaim"`
	Assumptions      json.RawMessage `json:"assumptions"`
	Fallacies        json.RawMessage `json:"fallacies"`
	SocraticQuestion string          `json:"socraticQuestion"`
}

type rawAnnotation struct {
	TargetText       string `json:"targetText"`
	FeedbackCategory string `json:"feedbackCategory"`
	Comment          string `json:"comment"`
}

type rawEssayAnalysis struct {
	Annotations json.RawMessage `json:"annotations"`
}

// AnalyzeText asks the model for the main claim, hidden assumptions,
// fallacies and a Socratic follow-up question.
func (s *AnalyzerService) AnalyzeText(ctx context.Context, text, apiKey string) (models.TextAnalysis, error) {
	if err := s.checkInput(text, s.limits.MaxTextLength, "text", "Text is too long. Please limit to %s characters."); err != nil {
		return models.TextAnalysis{}, err
	}
	if err := s.checkKey(apiKey); err != nil {
		return models.TextAnalysis{}, err
	}

	key := cache.Key(string(PromptAnalyze), text)
	var result models.TextAnalysis
	if s.cached(key, &result) {
		return result, nil
	}

	reply, err := s.gen.GenerateText(ctx, apiKey, BuildSocraticPrompt(text, PromptAnalyze))
	if err != nil {
		return models.TextAnalysis{}, err
	}

	var raw rawTextAnalysis
	if err := DecodeModelJSON(reply, &raw, "fallacies"); err != nil {
		return models.TextAnalysis{}, err
	}

	result = normalizeTextAnalysis(raw)
	s.store(key, result)
	return result, nil
}

// AnalyzeEssay asks the model for argumentation-only annotations.
func (s *AnalyzerService) AnalyzeEssay(ctx context.Context, essay, apiKey string) (models.EssayAnalysis, error) {
	if err := s.checkInput(essay, s.limits.MaxEssayLength, "essay text", "Essay is too long. Please limit to %s characters."); err != nil {
		return models.EssayAnalysis{}, err
	}
	if err := s.checkKey(apiKey); err != nil {
		return models.EssayAnalysis{}, err
	}

	key := cache.Key(string(PromptEssay), essay)
	var result models.EssayAnalysis
	if s.cached(key, &result) {
		return result, nil
	}

	reply, err := s.gen.GenerateText(ctx, apiKey, BuildSocraticPrompt(essay, PromptEssay))
	if err != nil {
		return models.EssayAnalysis{}, err
	}

	var raw rawEssayAnalysis
	if err := DecodeModelJSON(reply, &raw, "annotations"); err != nil {
		return models.EssayAnalysis{}, err
	}

	result = normalizeEssayAnalysis(raw)
	s.store(key, result)
	return result, nil
}

func (s *AnalyzerService) checkInput(text string, limit int, noun, tooLong string) error {
	if strings.TrimSpace(text) == "" {
		return validationErrorf("Please provide valid %s to analyze", noun)
	}
	if limit > 0 && utf8.RuneCountInString(text) > limit {
		return validationErrorf(tooLong, limitPrinter.Sprintf("%d", limit))
	}
	return nil
}

func (s *AnalyzerService) checkKey(apiKey string) error {
	if apiKey == "" && !s.gen.HasDefaultKey() {
		return ErrMissingAPIKey
	}
	return nil
}

func (s *AnalyzerService) cached(key string, out any) bool {
	b, ok := s.cache.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(b, out) == nil
}

func (s *AnalyzerService) store(key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		s.cache.Set(key, b)
	}
}

func normalizeTextAnalysis(raw rawTextAnalysis) models.TextAnalysis {
	out := models.TextAnalysis{
		MainClaim:        raw.MainClaim,
		Assumptions:      []string{},
		Fallacies:        []models.FallacyFinding{},
		SocraticQuestion: raw.SocraticQuestion,
	}
	if out.MainClaim == "" {
		out.MainClaim = defaultMainClaim
	}
	if out.SocraticQuestion == "" {
		out.SocraticQuestion = defaultSocraticQuestion
	}

	var assumptions []string
	if json.Unmarshal(raw.Assumptions, &assumptions) == nil && assumptions != nil {
		out.Assumptions = assumptions
	}

	var fallacies []rawFallacy
	if json.Unmarshal(raw.Fallacies, &fallacies) == nil {
		for _, f := range fallacies {
			finding := models.FallacyFinding{
				FallacyName: f.FallacyName,
				Quote:       f.Quote,
				Explanation: f.Explanation,
			}
			if finding.FallacyName == "" {
				finding.FallacyName = defaultFallacyName
			}
			if finding.Explanation == "" {
				finding.Explanation = defaultExplanation
			}
			out.Fallacies = append(out.Fallacies, finding)
		}
	}
	return out
}

func normalizeEssayAnalysis(raw rawEssayAnalysis) models.EssayAnalysis {
	out := models.EssayAnalysis{Annotations: []models.EssayAnnotation{}}

	var annotations []rawAnnotation
	if json.Unmarshal(raw.Annotations, &annotations) != nil {
		return out
	}
	for _, a := range annotations {
		ann := models.EssayAnnotation{
			TargetText:       a.TargetText,
			FeedbackCategory: a.FeedbackCategory,
			Comment:          a.Comment,
		}
		if ann.FeedbackCategory == "" {
			ann.FeedbackCategory = defaultFeedbackCategory
		}
		if ann.Comment == "" {
			ann.Comment = defaultComment
		}
		out.Annotations = append(out.Annotations, ann)
	}
	return out
}
