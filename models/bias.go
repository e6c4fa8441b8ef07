package models

// HighlightCategory is the kind of bias a user tags on an excerpt.
type HighlightCategory string

const (
	CategoryLoaded    HighlightCategory = "loaded"
	CategoryEmotional HighlightCategory = "emotional"
	CategoryFraming   HighlightCategory = "framing"
)

// HighlightCategories lists every accepted category in display order.
var HighlightCategories = []HighlightCategory{CategoryLoaded, CategoryEmotional, CategoryFraming}

// Valid reports whether c is one of the fixed categories.
func (c HighlightCategory) Valid() bool {
	switch c {
	case CategoryLoaded, CategoryEmotional, CategoryFraming:
		return true
	}
	return false
}

// Article is one side of a bias comparison.
type Article struct {
	Source  string `json:"source"`
	Bias    string `json:"bias"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BiasTopic pairs two articles with opposing slants on the same subject.
type BiasTopic struct {
	Topic    string  `json:"topic"`
	ArticleA Article `json:"articleA"`
	ArticleB Article `json:"articleB"`
}

// BiasChallenge is the payload of GET /api/dojo/bias-challenge.
type BiasChallenge struct {
	ChallengeID  string  `json:"challengeId"`
	Topic        string  `json:"topic"`
	ArticleA     Article `json:"articleA"`
	ArticleB     Article `json:"articleB"`
	Instructions string  `json:"instructions"`
}

// Highlight is a user-selected excerpt. Text is not checked against the article.
type Highlight struct {
	Category HighlightCategory `json:"category"`
	Text     string            `json:"text"`
}

// BiasHighlightSubmission is the payload of POST /api/dojo/analyze-bias-highlights.
// A nil slice means the field was absent; an empty slice is a valid, if weak, submission.
type BiasHighlightSubmission struct {
	ChallengeID        string      `json:"challengeId"`
	ArticleAHighlights []Highlight `json:"articleAHighlights"`
	ArticleBHighlights []Highlight `json:"articleBHighlights"`
	Topic              string      `json:"topic"`
}

// CategoryBreakdown counts highlights per category across both articles.
type CategoryBreakdown struct {
	Loaded    int `json:"loaded"`
	Emotional int `json:"emotional"`
	Framing   int `json:"framing"`
}

// Total is the number of highlights counted.
func (b CategoryBreakdown) Total() int {
	return b.Loaded + b.Emotional + b.Framing
}

// BiasFeedback is the scored result of a highlight submission.
type BiasFeedback struct {
	Topic             string            `json:"topic,omitempty"`
	OverallScore      int               `json:"overallScore"`
	Strengths         []string          `json:"strengths"`
	Improvements      []string          `json:"improvements"`
	Insights          []string          `json:"insights"`
	CategoryBreakdown CategoryBreakdown `json:"categoryBreakdown"`
	PerformanceLevel  string            `json:"performanceLevel"`
	Message           string            `json:"message"`
}
