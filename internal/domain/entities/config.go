package entities

import (
	"errors"
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Playback PlaybackConfig `toml:"playback"`
	Shell    ShellConfig    `toml:"shell"`
	Python   PythonConfig   `toml:"python"`
	Bullets  BulletsConfig  `toml:"bullets"`
	Logging  LoggingConfig  `toml:"logging"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Playback.Validate(); err != nil {
		return fmt.Errorf("playback config: %w", err)
	}

	if err := c.Shell.Validate(); err != nil {
		return fmt.Errorf("shell config: %w", err)
	}

	if err := c.Python.Validate(); err != nil {
		return fmt.Errorf("python config: %w", err)
	}

	if err := c.Bullets.Validate(); err != nil {
		return fmt.Errorf("bullets config: %w", err)
	}

	return nil
}

// PlaybackConfig contains transition pacing and default-effect settings.
// The delays are presentation-feel parameters, not correctness concerns.
type PlaybackConfig struct {
	SettleDelayMs     int    `toml:"settle_delay_ms"`
	FlashDelayMs      int    `toml:"flash_delay_ms"`
	WipeColumnDelayMs int    `toml:"wipe_column_delay_ms"`
	DefaultTransition string `toml:"default_transition"`
}

// Validate validates playback configuration
func (p PlaybackConfig) Validate() error {
	if p.SettleDelayMs < 0 {
		return errors.New("settle delay must be non-negative")
	}

	if p.FlashDelayMs < 0 {
		return errors.New("flash delay must be non-negative")
	}

	if p.WipeColumnDelayMs < 0 {
		return errors.New("wipe column delay must be non-negative")
	}

	if _, err := ParseTransition(p.DefaultTransition); err != nil {
		return fmt.Errorf("default transition: %w", err)
	}

	return nil
}

// SettleDelay returns the pause between a transition and the slide clear.
func (p PlaybackConfig) SettleDelay() time.Duration {
	return time.Duration(p.SettleDelayMs) * time.Millisecond
}

// FlashDelay returns the pause between flash repetitions.
func (p PlaybackConfig) FlashDelay() time.Duration {
	return time.Duration(p.FlashDelayMs) * time.Millisecond
}

// WipeColumnDelay returns the pause after each wiped column.
func (p PlaybackConfig) WipeColumnDelay() time.Duration {
	return time.Duration(p.WipeColumnDelayMs) * time.Millisecond
}

// ShellConfig contains the prompt strings for simulated shell slides.
type ShellConfig struct {
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt"`
}

// Validate validates shell configuration
func (s ShellConfig) Validate() error {
	if s.Prompt == "" {
		return errors.New("shell prompt cannot be empty")
	}

	return nil
}

// PythonConfig contains the prompts and banner for simulated Python
// interpreter slides.
type PythonConfig struct {
	Prompt             string `toml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt"`
	Banner             string `toml:"banner"`
}

// Validate validates python shell configuration
func (p PythonConfig) Validate() error {
	if p.Prompt == "" {
		return errors.New("python prompt cannot be empty")
	}

	return nil
}

// BulletsConfig contains the glyphs used by bullet-list slides.
type BulletsConfig struct {
	Glyph string `toml:"glyph"`
	Rule  string `toml:"rule"`
}

// Validate validates bullets configuration
func (b BulletsConfig) Validate() error {
	if b.Glyph == "" {
		return errors.New("bullet glyph cannot be empty")
	}

	if len([]rune(b.Rule)) != 1 {
		return errors.New("underline rule must be a single character")
	}

	return nil
}

// LoggingConfig contains diagnostics logging configuration. Diagnostics
// are never drawn on the presentation surface; when File is empty they
// are discarded.
type LoggingConfig struct {
	File string `toml:"file"`
}
