package service

import (
	"os/exec"
	"strconv"

	"github.com/janvipargai1/ai-interview-simulator/internal/config"
	"go.uber.org/zap"
)

// TTSService reads questions aloud through the espeak-ng binary.
// Narration is fire-and-forget: a missing binary or a failed run is
// logged and never blocks answer collection.
type TTSService struct {
	enabled bool
	voice   string
	rate    int
	logger  *zap.Logger
}

func NewTTSService(logger *zap.Logger) *TTSService {
	cfg := config.LoadTTSConfig()
	s := &TTSService{
		enabled: cfg.Enabled,
		voice:   cfg.Voice,
		rate:    cfg.Rate,
		logger:  logger,
	}
	if s.enabled {
		if _, err := exec.LookPath("espeak-ng"); err != nil {
			logger.Warn("espeak-ng not found, narration disabled", zap.Error(err))
			s.enabled = false
		}
	}
	return s
}

func (s *TTSService) Enabled() bool {
	return s.enabled
}

// Speak launches narration in the background and returns immediately.
func (s *TTSService) Speak(text string) {
	if !s.enabled || text == "" {
		return
	}

	args := []string{"-s", strconv.Itoa(s.rate)}
	if s.voice != "" {
		args = append(args, "-v", s.voice)
	}
	args = append(args, text)

	cmd := exec.Command("espeak-ng", args...)
	go func() {
		if err := cmd.Run(); err != nil {
			s.logger.Warn("narration failed", zap.Error(err))
		}
	}()
}
