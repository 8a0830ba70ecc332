package config

import (
	"github.com/fredcamaral/termdeck/internal/domain/entities"
	"github.com/fredcamaral/termdeck/internal/domain/ports"
)

// ConfigMerger implements the ConfigMerger interface
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	result := deepCopy(GetDefaultConfig())

	for _, c := range configs {
		if c != nil {
			m.mergeInto(result, c)
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if transition, ok := flags["transition"].(string); ok && transition != "" {
		result.Playback.DefaultTransition = transition
	}

	if logFile, ok := flags["log-file"].(string); ok && logFile != "" {
		result.Logging.File = logFile
	}

	if settle, ok := flags["settle-delay-ms"].(int); ok && settle >= 0 {
		result.Playback.SettleDelayMs = settle
	}

	return result
}

// mergeInto merges source configuration into target configuration.
// Zero values in the source leave the target untouched, so partial
// files only override what they declare.
func (m *ConfigMerger) mergeInto(target, source *entities.Config) {
	// Playback config
	if source.Playback.SettleDelayMs != 0 {
		target.Playback.SettleDelayMs = source.Playback.SettleDelayMs
	}
	if source.Playback.FlashDelayMs != 0 {
		target.Playback.FlashDelayMs = source.Playback.FlashDelayMs
	}
	if source.Playback.WipeColumnDelayMs != 0 {
		target.Playback.WipeColumnDelayMs = source.Playback.WipeColumnDelayMs
	}
	if source.Playback.DefaultTransition != "" {
		target.Playback.DefaultTransition = source.Playback.DefaultTransition
	}

	// Shell config
	if source.Shell.Prompt != "" {
		target.Shell.Prompt = source.Shell.Prompt
	}
	if source.Shell.ContinuationPrompt != "" {
		target.Shell.ContinuationPrompt = source.Shell.ContinuationPrompt
	}

	// Python config
	if source.Python.Prompt != "" {
		target.Python.Prompt = source.Python.Prompt
	}
	if source.Python.ContinuationPrompt != "" {
		target.Python.ContinuationPrompt = source.Python.ContinuationPrompt
	}
	if source.Python.Banner != "" {
		target.Python.Banner = source.Python.Banner
	}

	// Bullets config
	if source.Bullets.Glyph != "" {
		target.Bullets.Glyph = source.Bullets.Glyph
	}
	if source.Bullets.Rule != "" {
		target.Bullets.Rule = source.Bullets.Rule
	}

	// Logging config
	if source.Logging.File != "" {
		target.Logging.File = source.Logging.File
	}
}

// deepCopy creates a copy of a configuration. Config contains only
// value fields, so a struct copy is a deep copy.
func deepCopy(config *entities.Config) *entities.Config {
	copied := *config
	return &copied
}

// Ensure ConfigMerger implements ports.ConfigMerger
var _ ports.ConfigMerger = (*ConfigMerger)(nil)
