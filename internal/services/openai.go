package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const providerOpenAI = "openai"

// OpenAIService talks to any OpenAI-compatible completion endpoint.
type OpenAIService struct {
	llm       llms.Model
	modelName string
	timeout   time.Duration
}

func NewOpenAIService(baseURL, token, modelName string, timeout time.Duration) (*OpenAIService, error) {
	llm, err := openai.New(
		openai.WithToken(token),
		openai.WithBaseURL(baseURL),
		openai.WithModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	return &OpenAIService{llm: llm, modelName: modelName, timeout: timeout}, nil
}

func (s *OpenAIService) Model() string {
	return s.modelName
}

func (s *OpenAIService) Generate(ctx context.Context, prompt string, opts GenerationOptions) (text string, err error) {
	defer guardPanic(providerOpenAI, &err)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	completion, err := llms.GenerateFromSinglePrompt(ctx, s.llm, prompt,
		llms.WithMaxTokens(opts.MaxTokens),
		llms.WithTemperature(opts.Temperature),
		llms.WithTopP(opts.TopP),
		llms.WithTopK(opts.TopK),
	)
	if err != nil {
		return "", &UpstreamError{Provider: providerOpenAI, Err: err}
	}

	text = strings.TrimSpace(completion)
	if text == "" {
		return "", &UpstreamError{Provider: providerOpenAI, Err: ErrEmptyResponse}
	}
	return text, nil
}
