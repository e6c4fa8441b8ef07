package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logicheck/internal/cache"
)

type fakeGenerator struct {
	mu         sync.Mutex
	reply      string
	err        error
	defaultKey bool
	calls      int
	lastKey    string
	lastPrompt string
}

func (f *fakeGenerator) GenerateText(_ context.Context, apiKey, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastKey = apiKey
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeGenerator) HasDefaultKey() bool { return f.defaultKey }

func newAnalyzer(gen *fakeGenerator) *AnalyzerService {
	return NewAnalyzerService(gen, cache.New(time.Minute, time.Minute), DefaultAnalyzerLimits())
}

func TestAnalyzeText_Normalizes(t *testing.T) {
	gen := &fakeGenerator{defaultKey: true, reply: "```json\n" + `{
		"mainClaim": "",
		"assumptions": ["people read labels"],
		"fallacies": [{"quote": "everyone knows"}, {"fallacyName": "Bandwagon Appeal", "quote": "all my friends", "explanation": "popularity"}]
	}` + "\n```"}

	res, err := newAnalyzer(gen).AnalyzeText(context.Background(), "Everyone knows this is true.", "")
	require.NoError(t, err)

	assert.Equal(t, defaultMainClaim, res.MainClaim)
	assert.Equal(t, defaultSocraticQuestion, res.SocraticQuestion)
	assert.Equal(t, []string{"people read labels"}, res.Assumptions)
	require.Len(t, res.Fallacies, 2)
	assert.Equal(t, defaultFallacyName, res.Fallacies[0].FallacyName)
	assert.Equal(t, defaultExplanation, res.Fallacies[0].Explanation)
	assert.Equal(t, "Bandwagon Appeal", res.Fallacies[1].FallacyName)
	assert.Contains(t, gen.lastPrompt, "Everyone knows this is true.")
}

func TestAnalyzeText_NonListFieldsBecomeEmpty(t *testing.T) {
	gen := &fakeGenerator{defaultKey: true, reply: `{"mainClaim":"m","assumptions":"none","fallacies":"none"}`}

	res, err := newAnalyzer(gen).AnalyzeText(context.Background(), "text", "")
	require.NoError(t, err)
	assert.Empty(t, res.Assumptions)
	assert.NotNil(t, res.Fallacies)
	assert.Empty(t, res.Fallacies)
}

func TestAnalyzeText_Validation(t *testing.T) {
	gen := &fakeGenerator{defaultKey: true}
	svc := newAnalyzer(gen)

	_, err := svc.AnalyzeText(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AnalyzeText(context.Background(), strings.Repeat("a", 10001), "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Text is too long. Please limit to 10,000 characters.")

	assert.Zero(t, gen.calls)
}

func TestAnalyzeText_MissingKey(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newAnalyzer(gen)

	_, err := svc.AnalyzeText(context.Background(), "text", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	gen.reply = `{"fallacies":[]}`
	_, err = svc.AnalyzeText(context.Background(), "text", "user-key")
	require.NoError(t, err)
	assert.Equal(t, "user-key", gen.lastKey)
}

func TestAnalyzeText_ModelErrors(t *testing.T) {
	gen := &fakeGenerator{defaultKey: true, reply: "I cannot help with that."}
	svc := newAnalyzer(gen)

	_, err := svc.AnalyzeText(context.Background(), "text one", "")
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))

	gen.reply = `{"mainClaim":"x"}`
	_, err = svc.AnalyzeText(context.Background(), "text two", "")
	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, []string{"fallacies"}, se.Missing)

	gen.reply, gen.err = "", errors.New("quota exceeded")
	_, err = svc.AnalyzeText(context.Background(), "text three", "")
	assert.EqualError(t, err, "quota exceeded")
}

func TestAnalyzeText_Cached(t *testing.T) {
	gen := &fakeGenerator{defaultKey: true, reply: `{"mainClaim":"m","fallacies":[]}`}
	svc := newAnalyzer(gen)

	first, err := svc.AnalyzeText(context.Background(), "same text", "")
	require.NoError(t, err)
	second, err := svc.AnalyzeText(context.Background(), "same text", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gen.calls)
}

func TestAnalyzeText_FailuresNotCached(t *testing.T) {
	gen := &fakeGenerator{defaultKey: true, reply: "garbage"}
	svc := newAnalyzer(gen)

	_, err := svc.AnalyzeText(context.Background(), "retry me", "")
	require.Error(t, err)

	gen.reply = `{"fallacies":[]}`
	_, err = svc.AnalyzeText(context.Background(), "retry me", "")
	require.NoError(t, err)
	assert.Equal(t, 2, gen.calls)
}

func TestAnalyzeEssay(t *testing.T) {
	gen := &fakeGenerator{defaultKey: true, reply: `Here you go: {"annotations":[
		{"targetText":"Schools should ban phones.","feedbackCategory":"Thesis Cohesion","comment":"Clear thesis."},
		{"targetText":"Studies show"}
	]}`}

	res, err := newAnalyzer(gen).AnalyzeEssay(context.Background(), "Schools should ban phones. Studies show...", "")
	require.NoError(t, err)
	require.Len(t, res.Annotations, 2)
	assert.Equal(t, "Thesis Cohesion", res.Annotations[0].FeedbackCategory)
	assert.Equal(t, defaultFeedbackCategory, res.Annotations[1].FeedbackCategory)
	assert.Equal(t, defaultComment, res.Annotations[1].Comment)
	assert.Contains(t, gen.lastPrompt, "Evidence-to-Claim Linkage")
}

func TestAnalyzeEssay_Limits(t *testing.T) {
	gen := &fakeGenerator{defaultKey: true, reply: `{"annotations":[]}`}
	svc := newAnalyzer(gen)

	_, err := svc.AnalyzeEssay(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AnalyzeEssay(context.Background(), strings.Repeat("é", 20000), "")
	assert.NoError(t, err, "limit counts characters, not bytes")

	_, err = svc.AnalyzeEssay(context.Background(), strings.Repeat("a", 20001), "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Essay is too long. Please limit to 20,000 characters.")

	_, err = svc.AnalyzeEssay(context.Background(), "essay", "")
	assert.NoError(t, err)
}
