package config

import (
	"os"
	"strconv"
	"sync"
)

type TTSConfig struct {
	Enabled bool
	Voice   string
	Rate    int // words per minute
}

var (
	ttsConfig *TTSConfig
	ttsOnce   sync.Once
)

func LoadTTSConfig() *TTSConfig {
	ttsOnce.Do(func() {
		rate := 160
		if raw := os.Getenv("TTS_RATE"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				rate = parsed
			}
		}
		ttsConfig = &TTSConfig{
			Enabled: os.Getenv("TTS_ENABLED") == "true",
			Voice:   os.Getenv("TTS_VOICE"),
			Rate:    rate,
		}
	})
	return ttsConfig
}
