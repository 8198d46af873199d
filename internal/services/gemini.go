package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const providerGemini = "gemini"

type GeminiService struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewGeminiService(apiKey, modelName string, timeout time.Duration, logger *zap.Logger) (*GeminiService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:    client,
		modelName: modelName,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

func (s *GeminiService) Model() string {
	return s.modelName
}

// Generate sends the prompt to Gemini and returns the trimmed text of the first candidate.
func (s *GeminiService) Generate(ctx context.Context, prompt string, opts GenerationOptions) (text string, err error) {
	defer guardPanic(providerGemini, &err)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	model := s.client.GenerativeModel(s.modelName)
	model.SetMaxOutputTokens(int32(opts.MaxTokens))
	model.SetTemperature(float32(opts.Temperature))
	model.SetTopP(float32(opts.TopP))
	model.SetTopK(int32(opts.TopK))

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &UpstreamError{Provider: providerGemini, Err: err}
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop && cand.FinishReason != genai.FinishReasonUnspecified {
			s.logger.Warn("gemini candidate did not finish cleanly",
				zap.Int("candidate", i),
				zap.String("finish_reason", cand.FinishReason.String()))
		}
	}

	text = firstCandidateText(resp)
	if text == "" {
		return "", &UpstreamError{Provider: providerGemini, Err: ErrEmptyResponse}
	}
	return text, nil
}

// firstCandidateText returns the trimmed text of the first candidate that has any.
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		var text strings.Builder
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
		if trimmed := strings.TrimSpace(text.String()); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
