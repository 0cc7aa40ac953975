package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/janvipargai1/ai-interview-simulator/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiService wraps the Google GenAI client with a request timeout,
// bounded retries and a coarse circuit breaker. Question generation and
// answer scoring both go through GenerateContent.
type GeminiService struct {
	Client         *genai.Client
	Model          string
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RequestTimeout time.Duration

	logger            *zap.Logger
	consecutiveErrors int
	circuitBreakerMax int
}

func NewGeminiService(ctx context.Context, logger *zap.Logger) (*GeminiService, error) {
	geminiConfig := config.LoadGeminiConfig()
	if geminiConfig.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiService{
		Client:            client,
		Model:             geminiConfig.Model,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          60 * time.Second,
		RequestTimeout:    60 * time.Second,
		logger:            logger,
		circuitBreakerMax: 5,
	}, nil
}

// GenerateContent sends the prompt and returns the textual response of
// the first candidate.
func (s *GeminiService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	if s.consecutiveErrors >= s.circuitBreakerMax {
		return "", fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", s.consecutiveErrors)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			s.logger.Info("retrying GenerateContent",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", s.MaxRetries),
				zap.Duration("delay", delay),
			)

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return "", fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		genConfig := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.4)),
		}

		result, err := s.Client.Models.GenerateContent(
			timeoutCtx,
			s.Model,
			genai.Text(prompt),
			genConfig,
		)

		if err == nil {
			s.consecutiveErrors = 0
			if err := s.validateGenerateResponse(result); err != nil {
				return "", fmt.Errorf("invalid response: %w", err)
			}
			return result.Text(), nil
		}

		lastErr = err

		if !s.isRetryableError(err) {
			s.logger.Warn("non-retryable gemini error", zap.Error(err))
			s.consecutiveErrors++
			return "", fmt.Errorf("generate content failed: %w", err)
		}

		s.logger.Warn("retryable gemini error", zap.Int("attempt", attempt+1), zap.Error(err))
	}

	s.consecutiveErrors++
	return "", fmt.Errorf("max retries (%d) exceeded for GenerateContent: %w", s.MaxRetries, lastErr)
}

// Test issues a trivial completion to verify connectivity.
func (s *GeminiService) Test(ctx context.Context) (string, error) {
	return s.GenerateContent(ctx, "Reply with the single word: ok")
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))

	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}

	jitter := time.Duration(float64(delay) * 0.25)
	delay = delay - jitter/2 + time.Duration(float64(jitter)*0.5)

	return delay
}

func (s *GeminiService) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "context canceled") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return false
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 429: // Rate limit
			return true
		case 500, 502, 503, 504: // Server errors
			return true
		case 400, 401, 403, 404: // Client errors
			return false
		}
	}

	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF") {
		return true
	}

	return false
}

func (s *GeminiService) validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}

func (s *GeminiService) ResetCircuitBreaker() {
	s.consecutiveErrors = 0
	s.logger.Info("circuit breaker reset")
}

func (s *GeminiService) CircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	return s.consecutiveErrors, s.consecutiveErrors >= s.circuitBreakerMax
}
