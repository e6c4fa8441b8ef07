// Command dojocheck exercises the practice modes end to end: it draws a
// sparring challenge, answers it, and scores a sample highlight set. With
// -url it talks to a running server, otherwise it builds the engines in
// process.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"logicheck/catalog"
	"logicheck/models"
	"logicheck/services"
)

// dojo is the subset of the API this tool drives.
type dojo interface {
	SparringChallenge() (models.SparringChallenge, error)
	Verify(req models.VerifyAnswerRequest) (models.VerifyAnswerResult, error)
	BiasChallenge() (models.BiasChallenge, error)
	ScoreHighlights(sub models.BiasHighlightSubmission) (models.BiasFeedback, error)
}

func main() {
	baseURL := flag.String("url", "", "base URL of a running server, e.g. http://localhost:5000 (in-process when empty)")
	answer := flag.String("answer", "", "answer to submit (defaults to the correct one)")
	flag.Parse()

	var d dojo
	if *baseURL != "" {
		d = &remoteDojo{base: strings.TrimRight(*baseURL, "/"), client: &http.Client{Timeout: 15 * time.Second}}
	} else {
		d = &localDojo{
			sparring: services.NewSparringService(catalog.DefaultFallacies()),
			bias:     services.NewBiasService(catalog.DefaultBiasTopics()),
		}
	}

	if err := check(d, *answer, os.Stdout); err != nil {
		log.Fatalf("dojocheck failed: %v", err)
	}
}

func check(d dojo, answer string, out io.Writer) error {
	challenge, err := d.SparringChallenge()
	if err != nil {
		return fmt.Errorf("sparring challenge: %w", err)
	}
	fmt.Fprintf(out, "Scenario: %s\n", challenge.Scenario)
	for i, opt := range challenge.Options {
		fmt.Fprintf(out, "  %d. %s\n", i+1, opt)
	}

	if answer == "" {
		answer = challenge.CorrectAnswer
	}
	result, err := d.Verify(models.VerifyAnswerRequest{
		ChallengeID: challenge.ChallengeID,
		Scenario:    challenge.Scenario,
		UserAnswer:  answer,
	})
	if err != nil {
		return fmt.Errorf("verify answer: %w", err)
	}
	fmt.Fprintf(out, "Answered %q: correct=%t (%s)\n  %s\n\n", answer, result.IsCorrect, result.CorrectAnswer, result.Explanation)

	bias, err := d.BiasChallenge()
	if err != nil {
		return fmt.Errorf("bias challenge: %w", err)
	}
	fmt.Fprintf(out, "Bias topic: %s\n  A: %s (%s)\n  B: %s (%s)\n", bias.Topic, bias.ArticleA.Title, bias.ArticleA.Source, bias.ArticleB.Title, bias.ArticleB.Source)

	feedback, err := d.ScoreHighlights(sampleSubmission(bias.Topic))
	if err != nil {
		return fmt.Errorf("score highlights: %w", err)
	}
	fmt.Fprintf(out, "Score: %d (%s)\n  %s\n", feedback.OverallScore, feedback.PerformanceLevel, feedback.Message)
	fmt.Fprintf(out, "  loaded=%d emotional=%d framing=%d\n",
		feedback.CategoryBreakdown.Loaded, feedback.CategoryBreakdown.Emotional, feedback.CategoryBreakdown.Framing)
	for _, s := range feedback.Strengths {
		fmt.Fprintf(out, "  + %s\n", s)
	}
	for _, s := range feedback.Improvements {
		fmt.Fprintf(out, "  - %s\n", s)
	}
	return nil
}

// sampleSubmission marks three passages in article A and two in article B.
func sampleSubmission(topic string) models.BiasHighlightSubmission {
	return models.BiasHighlightSubmission{
		Topic: topic,
		ArticleAHighlights: []models.Highlight{
			{Category: models.CategoryLoaded, Text: "devastating"},
			{Category: models.CategoryEmotional, Text: "families watched in horror"},
			{Category: models.CategoryFraming, Text: "experts warn"},
		},
		ArticleBHighlights: []models.Highlight{
			{Category: models.CategoryLoaded, Text: "radical"},
			{Category: models.CategoryEmotional, Text: "working families finally got relief"},
		},
	}
}

type localDojo struct {
	sparring *services.SparringService
	bias     *services.BiasService
}

func (l *localDojo) SparringChallenge() (models.SparringChallenge, error) {
	return l.sparring.NextChallenge()
}

func (l *localDojo) Verify(req models.VerifyAnswerRequest) (models.VerifyAnswerResult, error) {
	return l.sparring.VerifyAnswer(req.Scenario, req.UserAnswer)
}

func (l *localDojo) BiasChallenge() (models.BiasChallenge, error) {
	return l.bias.NextChallenge()
}

func (l *localDojo) ScoreHighlights(sub models.BiasHighlightSubmission) (models.BiasFeedback, error) {
	return l.bias.ScoreHighlights(sub)
}

type remoteDojo struct {
	base   string
	client *http.Client
}

func (r *remoteDojo) call(method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, r.base+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, envelope.Error.Message)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (r *remoteDojo) SparringChallenge() (c models.SparringChallenge, err error) {
	err = r.call(http.MethodGet, "/api/dojo/sparring-challenge", nil, &c)
	return c, err
}

func (r *remoteDojo) Verify(req models.VerifyAnswerRequest) (res models.VerifyAnswerResult, err error) {
	err = r.call(http.MethodPost, "/api/dojo/verify-answer", req, &res)
	return res, err
}

func (r *remoteDojo) BiasChallenge() (c models.BiasChallenge, err error) {
	err = r.call(http.MethodGet, "/api/dojo/bias-challenge", nil, &c)
	return c, err
}

func (r *remoteDojo) ScoreHighlights(sub models.BiasHighlightSubmission) (fb models.BiasFeedback, err error) {
	err = r.call(http.MethodPost, "/api/dojo/analyze-bias-highlights", sub, &fb)
	return fb, err
}
