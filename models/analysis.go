package models

// AnalyzeTextRequest is the payload of POST /api/analyze.
type AnalyzeTextRequest struct {
	Text   string `json:"text"`
	APIKey string `json:"apiKey"`
}

// FallacyFinding is one fallacy the model spotted in the submitted text.
type FallacyFinding struct {
	FallacyName string `json:"fallacyName"`
	Quote       string `json:"quote"`
	Explanation string `json:"explanation"`
}

// TextAnalysis is the normalised model response for the analyzer.
type TextAnalysis struct {
	MainClaim        string           `json:"mainClaim"`
	Assumptions      []string         `json:"assumptions"`
	Fallacies        []FallacyFinding `json:"fallacies"`
	SocraticQuestion string           `json:"socraticQuestion"`
}

// AnalyzeEssayRequest is the payload of POST /api/clinic/analyze-essay.
type AnalyzeEssayRequest struct {
	EssayText string `json:"essayText"`
	APIKey    string `json:"apiKey"`
}

// EssayAnnotation is argumentation feedback anchored to an excerpt.
type EssayAnnotation struct {
	TargetText       string `json:"targetText"`
	FeedbackCategory string `json:"feedbackCategory"`
	Comment          string `json:"comment"`
}

// EssayAnalysis is the normalised model response for the essay clinic.
type EssayAnalysis struct {
	Annotations []EssayAnnotation `json:"annotations"`
}
