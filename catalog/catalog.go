// Package catalog holds the read-only practice datasets served by the dojo.
// Catalogs are validated once at construction and never mutated afterwards,
// so they are safe to share between request handlers.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"logicheck/models"
)

// OptionsPerScenario is the number of choices shown for each sparring scenario.
const OptionsPerScenario = 4

var ErrInvalidCatalog = errors.New("invalid catalog")

// FallacyProvider lists every sparring scenario.
type FallacyProvider interface {
	Scenarios() []models.FallacyScenario
}

// ScenarioLookup resolves a scenario by its exact text.
type ScenarioLookup interface {
	FindByScenario(text string) (models.FallacyScenario, bool)
}

// FallacySource is what the sparring engine needs from a catalog.
type FallacySource interface {
	FallacyProvider
	ScenarioLookup
}

// BiasTopicProvider lists every bias comparison topic.
type BiasTopicProvider interface {
	Topics() []models.BiasTopic
}

// FallacyCatalog is an immutable, validated set of scenarios indexed by text.
type FallacyCatalog struct {
	entries []models.FallacyScenario
	index   map[string]int
}

// NewFallacyCatalog copies and validates entries.
func NewFallacyCatalog(entries []models.FallacyScenario) (*FallacyCatalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: fallacy catalog is empty", ErrInvalidCatalog)
	}

	c := &FallacyCatalog{
		entries: make([]models.FallacyScenario, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if err := validateScenario(e); err != nil {
			return nil, fmt.Errorf("%w: scenario %d: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.index[e.Scenario]; dup {
			return nil, fmt.Errorf("%w: scenario %d duplicates an earlier scenario", ErrInvalidCatalog, i)
		}
		c.index[e.Scenario] = len(c.entries)
		c.entries = append(c.entries, cloneScenario(e))
	}
	return c, nil
}

func validateScenario(e models.FallacyScenario) error {
	if strings.TrimSpace(e.Scenario) == "" {
		return errors.New("scenario text is empty")
	}
	if strings.TrimSpace(e.Explanation) == "" {
		return errors.New("explanation is empty")
	}
	if len(e.Options) != OptionsPerScenario {
		return fmt.Errorf("expected %d options, got %d", OptionsPerScenario, len(e.Options))
	}
	seen := make(map[string]bool, len(e.Options))
	hasAnswer := false
	for _, o := range e.Options {
		if o == "" {
			return errors.New("empty option")
		}
		if seen[o] {
			return fmt.Errorf("duplicate option %q", o)
		}
		seen[o] = true
		if o == e.CorrectAnswer {
			hasAnswer = true
		}
	}
	if !hasAnswer {
		return fmt.Errorf("correct answer %q is not among the options", e.CorrectAnswer)
	}
	return nil
}

func cloneScenario(e models.FallacyScenario) models.FallacyScenario {
	e.Options = append([]string(nil), e.Options...)
	return e
}

// Scenarios returns a copy of every entry in catalog order.
func (c *FallacyCatalog) Scenarios() []models.FallacyScenario {
	out := make([]models.FallacyScenario, len(c.entries))
	for i, e := range c.entries {
		out[i] = cloneScenario(e)
	}
	return out
}

// FindByScenario matches on the exact scenario text. Whitespace or encoding
// differences in the client copy produce a miss.
func (c *FallacyCatalog) FindByScenario(text string) (models.FallacyScenario, bool) {
	i, ok := c.index[text]
	if !ok {
		return models.FallacyScenario{}, false
	}
	return cloneScenario(c.entries[i]), true
}

// Len is the number of scenarios.
func (c *FallacyCatalog) Len() int {
	return len(c.entries)
}

// BiasCatalog is an immutable, validated set of comparison topics.
type BiasCatalog struct {
	topics []models.BiasTopic
}

// NewBiasCatalog copies and validates topics.
func NewBiasCatalog(topics []models.BiasTopic) (*BiasCatalog, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("%w: bias catalog is empty", ErrInvalidCatalog)
	}
	for i, t := range topics {
		if strings.TrimSpace(t.Topic) == "" {
			return nil, fmt.Errorf("%w: topic %d has no label", ErrInvalidCatalog, i)
		}
		if err := validateArticle(t.ArticleA); err != nil {
			return nil, fmt.Errorf("%w: topic %q article A: %v", ErrInvalidCatalog, t.Topic, err)
		}
		if err := validateArticle(t.ArticleB); err != nil {
			return nil, fmt.Errorf("%w: topic %q article B: %v", ErrInvalidCatalog, t.Topic, err)
		}
		if t.ArticleA.Bias == t.ArticleB.Bias {
			return nil, fmt.Errorf("%w: topic %q articles share the slant %q", ErrInvalidCatalog, t.Topic, t.ArticleA.Bias)
		}
	}
	return &BiasCatalog{topics: append([]models.BiasTopic(nil), topics...)}, nil
}

func validateArticle(a models.Article) error {
	switch {
	case strings.TrimSpace(a.Source) == "":
		return errors.New("missing source")
	case strings.TrimSpace(a.Bias) == "":
		return errors.New("missing bias label")
	case strings.TrimSpace(a.Title) == "":
		return errors.New("missing title")
	case strings.TrimSpace(a.Content) == "":
		return errors.New("missing content")
	}
	return nil
}

// Topics returns a copy of every topic in catalog order.
func (c *BiasCatalog) Topics() []models.BiasTopic {
	return append([]models.BiasTopic(nil), c.topics...)
}

// Len is the number of topics.
func (c *BiasCatalog) Len() int {
	return len(c.topics)
}

var (
	defaultFallacies = mustFallacyCatalog(fallacyScenarios)
	defaultBias      = mustBiasCatalog(biasTopics)
)

// DefaultFallacies is the built-in sparring catalog.
func DefaultFallacies() *FallacyCatalog { return defaultFallacies }

// DefaultBiasTopics is the built-in bias comparison catalog.
func DefaultBiasTopics() *BiasCatalog { return defaultBias }

func mustFallacyCatalog(entries []models.FallacyScenario) *FallacyCatalog {
	c, err := NewFallacyCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

func mustBiasCatalog(topics []models.BiasTopic) *BiasCatalog {
	c, err := NewBiasCatalog(topics)
	if err != nil {
		panic(err)
	}
	return c
}
