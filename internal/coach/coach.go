// Package coach produces tutoring prose: explanations for wrong quiz
// answers and responses to free-form Python questions. When no LLM
// provider is configured it falls back to canned text so the tutor
// stays usable offline.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/pytutor/internal/curriculum"
	"github.com/abhisek/pytutor/internal/llm"
)

// Config controls generation parameters for coach requests.
type Config struct {
	// MaxTokens caps response length. Coach output is short prose.
	MaxTokens int

	// Temperature for generation. Slightly above zero so explanations
	// vary between attempts.
	Temperature float64
}

// DefaultConfig returns coach generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}

// Service answers student questions and explains wrong answers.
// A nil provider is valid and switches the service to canned fallbacks.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a coach. provider may be nil.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// ExplainInput describes a failed quiz attempt.
type ExplainInput struct {
	Lesson    curriculum.Unit
	Submitted string
}

// Explain returns a short explanation of why the submitted answer was
// wrong and how to think about the question.
func (s *Service) Explain(ctx context.Context, input ExplainInput) (string, error) {
	if s.provider == nil {
		return fallbackExplanation(input), nil
	}

	ctx = llm.WithPurpose(ctx, "explain")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(input)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("generating explanation: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// Ask answers a free-form Python question from the student.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "Ask me anything about Python and I'll do my best to help.", nil
	}
	if s.provider == nil {
		return fallbackAnswer(question), nil
	}

	ctx = llm.WithPurpose(ctx, "ask")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: askSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: question},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("answering question: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}
