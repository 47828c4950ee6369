package evaluator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"careerpath/internal/domain"
	"careerpath/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

const llmCallTimeout = 20 * time.Second

// LLMOpenEndedScorer is an alternative domain.OpenEndedScorer that asks an
// LLM whether a free-text answer demonstrates the expected concepts. It is
// selected by config; the keyword heuristic remains the default.
type LLMOpenEndedScorer struct {
	serverURL string
	model     string
}

// NewLLMOpenEndedScorer creates a scorer backed by an Ollama server.
func NewLLMOpenEndedScorer(serverURL, model string) *LLMOpenEndedScorer {
	return &LLMOpenEndedScorer{serverURL: serverURL, model: model}
}

// ScoreOpenEnded implements domain.OpenEndedScorer.
func (s *LLMOpenEndedScorer) ScoreOpenEnded(ctx context.Context, answer, correctAnswer string) (bool, error) {
	l := logger.Get()

	prompt := fmt.Sprintf(`You are a quiz answer grader. The expected answer covers these concepts: %s

User's Answer: %s

Does the user's answer demonstrate understanding of at least one of the expected concepts?
Respond with exactly one word: YES or NO.`,
		strings.Join(domain.SplitKeywords(correctAnswer), ", "), answer)

	response, err := s.callLLM(ctx, prompt)
	if err != nil {
		l.Error("LLM open-ended scoring failed", zap.Error(err))
		return false, err
	}

	verdict := strings.ToUpper(strings.TrimSpace(response))
	// Some models wrap the verdict in reasoning tags or punctuation.
	if strings.Contains(verdict, "YES") && !strings.Contains(verdict, "NO") {
		return true, nil
	}
	if strings.Contains(verdict, "NO") {
		return false, nil
	}
	return false, fmt.Errorf("unexpected LLM verdict: %q", response)
}

func (s *LLMOpenEndedScorer) callLLM(ctx context.Context, prompt string) (string, error) {
	httpClient := &http.Client{
		Timeout: llmCallTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	llm, err := ollama.New(
		ollama.WithServerURL(s.serverURL),
		ollama.WithModel(s.model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create LLM client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, llmCallTimeout)
	defer cancel()

	response, err := llm.Call(ctx, prompt, llms.WithTemperature(0.0))
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}
