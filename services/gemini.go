package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

// TextGenerator sends a prompt to a generative model and returns its raw reply.
// An empty apiKey means "use the server key".
type TextGenerator interface {
	GenerateText(ctx context.Context, apiKey, prompt string) (string, error)
	HasDefaultKey() bool
}

// GeminiGenerator talks to the Gemini API. The client for the server key is
// created lazily and reused; user supplied keys get a client per call.
type GeminiGenerator struct {
	defaultKey string
	model      string
	timeout    time.Duration

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiGenerator does not dial; the first request creates the client.
func NewGeminiGenerator(apiKey, model string, timeout time.Duration) *GeminiGenerator {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiGenerator{defaultKey: apiKey, model: model, timeout: timeout}
}

func (g *GeminiGenerator) HasDefaultKey() bool { return g.defaultKey != "" }

func initGemini(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func (g *GeminiGenerator) clientFor(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey != "" && apiKey != g.defaultKey {
		return initGemini(ctx, apiKey)
	}
	if g.defaultKey == "" {
		return nil, ErrMissingAPIKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client == nil {
		c, err := initGemini(ctx, g.defaultKey)
		if err != nil {
			return nil, err
		}
		g.client = c
	}
	return g.client, nil
}

// GenerateText prefers apiKey over the server key.
func (g *GeminiGenerator) GenerateText(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := g.clientFor(ctx, apiKey)
	if err != nil {
		return "", err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("failed to get AI response: %w", err)
	}
	return resp.Text(), nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// ExtractJSON recovers a JSON object from free-form model text: the first
// balanced {...} span, falling back to parsing the whole (fence-stripped) body.
func ExtractJSON(text string) (json.RawMessage, error) {
	cleaned := cleanModelOutput(text)

	if span, ok := findJSONObject(cleaned); ok && json.Valid([]byte(span)) {
		return json.RawMessage(span), nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &FormatError{Snippet: snippet(cleaned), Err: err}
	}
	if probe == nil {
		return nil, &FormatError{Snippet: snippet(cleaned)}
	}
	return json.RawMessage(cleaned), nil
}

// findJSONObject returns the first brace-balanced span, ignoring braces inside strings.
func findJSONObject(input string) (string, bool) {
	start := strings.IndexByte(input, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(input); i++ {
		ch := input[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1], true
			}
		}
	}
	return "", false
}

// DecodeModelJSON extracts the JSON object from text, checks that every
// required key is present and non-null, then decodes it into out.
func DecodeModelJSON(text string, out any, required ...string) error {
	raw, err := ExtractJSON(text)
	if err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return &FormatError{Snippet: snippet(string(raw)), Err: err}
	}

	var missing []string
	for _, key := range required {
		v, ok := fields[key]
		if !ok || string(bytes.TrimSpace(v)) == "null" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &SchemaError{Missing: missing}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &FormatError{Snippet: snippet(string(raw)), Err: err}
	}
	return nil
}

func snippet(s string) string {
	const max = 80
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
