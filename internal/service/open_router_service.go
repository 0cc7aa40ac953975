package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/janvipargai1/ai-interview-simulator/internal/config"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the secondary content generator, used when a
// Gemini key is not configured. Same prompt-in/text-out contract over
// the OpenRouter chat-completions API.
type OpenRouterService struct {
	APIKey string
	Model  string

	client *resty.Client
	logger *zap.Logger
}

func NewOpenRouterService(logger *zap.Logger) *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
		client: resty.New().SetTimeout(60 * time.Second),
		logger: logger,
	}
}

func (s *OpenRouterService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if s.APIKey == "" {
		return "", fmt.Errorf("OPENROUTER_API_KEY not set")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are a strict technical interviewer."},
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterEndpoint)
	if err != nil {
		return "", fmt.Errorf("openrouter request: %w", err)
	}

	if resp.StatusCode() >= 400 {
		s.logger.Warn("openrouter error response",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return "", fmt.Errorf("openrouter returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no content in openrouter response")
	}

	return text, nil
}
