package config

import (
	"os"
	"strconv"

	"github.com/fredcamaral/termdeck/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment overrides
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Playback: entities.PlaybackConfig{
			SettleDelayMs:     getEnvIntOrDefault("TERMDECK_SETTLE_DELAY_MS", 200),
			FlashDelayMs:      getEnvIntOrDefault("TERMDECK_FLASH_DELAY_MS", 100),
			WipeColumnDelayMs: getEnvIntOrDefault("TERMDECK_WIPE_COLUMN_DELAY_MS", 5),
			DefaultTransition: getEnvOrDefault("TERMDECK_DEFAULT_TRANSITION", "none"),
		},
		Shell: entities.ShellConfig{
			Prompt:             "$ ",
			ContinuationPrompt: "> ",
		},
		Python: entities.PythonConfig{
			Prompt:             ">>> ",
			ContinuationPrompt: "... ",
			Banner:             "",
		},
		Bullets: entities.BulletsConfig{
			Glyph: "*",
			Rule:  "=",
		},
		Logging: entities.LoggingConfig{
			File: getEnvOrDefault("TERMDECK_LOG_FILE", ""),
		},
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns the environment variable as int or a default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
