package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameConfig tunes match pacing and the hints/bot features.
type GameConfig struct {
	TurnDurationSeconds int `json:"turn_duration_seconds"`
	// HintCount is how many advisor suggestions are returned per request.
	HintCount int `json:"hint_count"`
	// BotAutoFillDelaySeconds is how long a solo human lobby waits before a
	// bot takes the empty seat.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	BotMinDelaySeconds      int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds      int `json:"bot_max_delay_seconds"`
}

// Default returns the built-in fallback configuration.
func Default() GameConfig {
	return GameConfig{
		TurnDurationSeconds:     30,
		HintCount:               3,
		BotAutoFillDelaySeconds: 5,
		BotMinDelaySeconds:      1,
		BotMaxDelaySeconds:      3,
	}
}

// Load reads the game configuration from the given path. Unset fields fall
// back to defaults. The loaded value is returned to the caller rather than
// cached in package state; the match handler holds it on its match state.
func Load(path string) (GameConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read game config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to unmarshal game config: %w", err)
	}

	if cfg.HintCount <= 0 {
		cfg.HintCount = Default().HintCount
	}
	if cfg.BotMinDelaySeconds <= 0 {
		cfg.BotMinDelaySeconds = Default().BotMinDelaySeconds
	}
	if cfg.BotMaxDelaySeconds < cfg.BotMinDelaySeconds {
		cfg.BotMaxDelaySeconds = cfg.BotMinDelaySeconds
	}
	return cfg, nil
}
