package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Playback: PlaybackConfig{
			SettleDelayMs:     200,
			FlashDelayMs:      100,
			WipeColumnDelayMs: 5,
			DefaultTransition: "none",
		},
		Shell:   ShellConfig{Prompt: "$ ", ContinuationPrompt: "> "},
		Python:  PythonConfig{Prompt: ">>> ", ContinuationPrompt: "... "},
		Bullets: BulletsConfig{Glyph: "*", Rule: "="},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative settle delay",
			mutate:  func(c *Config) { c.Playback.SettleDelayMs = -1 },
			wantErr: true,
			errMsg:  "settle delay must be non-negative",
		},
		{
			name:    "negative flash delay",
			mutate:  func(c *Config) { c.Playback.FlashDelayMs = -5 },
			wantErr: true,
			errMsg:  "flash delay must be non-negative",
		},
		{
			name:    "bad default transition",
			mutate:  func(c *Config) { c.Playback.DefaultTransition = "spin left" },
			wantErr: true,
			errMsg:  "default transition",
		},
		{
			name:    "empty shell prompt",
			mutate:  func(c *Config) { c.Shell.Prompt = "" },
			wantErr: true,
			errMsg:  "shell prompt cannot be empty",
		},
		{
			name:    "empty python prompt",
			mutate:  func(c *Config) { c.Python.Prompt = "" },
			wantErr: true,
			errMsg:  "python prompt cannot be empty",
		},
		{
			name:    "empty bullet glyph",
			mutate:  func(c *Config) { c.Bullets.Glyph = "" },
			wantErr: true,
			errMsg:  "bullet glyph cannot be empty",
		},
		{
			name:    "multi-character rule",
			mutate:  func(c *Config) { c.Bullets.Rule = "==" },
			wantErr: true,
			errMsg:  "underline rule must be a single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPlaybackConfig_Delays(t *testing.T) {
	p := PlaybackConfig{SettleDelayMs: 200, FlashDelayMs: 100, WipeColumnDelayMs: 5}

	assert.Equal(t, 200*time.Millisecond, p.SettleDelay())
	assert.Equal(t, 100*time.Millisecond, p.FlashDelay())
	assert.Equal(t, 5*time.Millisecond, p.WipeColumnDelay())
}
