package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/linekeys/internal/domain/entity"
)

const (
	minChordTimeoutMs     = 100
	maxChordTimeoutMs     = 10000
	maxFeedbackDurationMs = 30000
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateEditor(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBindings(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateEditor(config *Config) []string {
	var validationErrors []string
	if _, err := entity.ParsePlatform(config.Editor.Platform); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"editor.platform must be one of: auto, mac, other (got: %s)",
			config.Editor.Platform,
		))
	}
	if config.Editor.ChordTimeoutMs < minChordTimeoutMs || config.Editor.ChordTimeoutMs > maxChordTimeoutMs {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"editor.chord_timeout_ms must be between %d and %d",
			minChordTimeoutMs, maxChordTimeoutMs,
		))
	}
	if config.Editor.FeedbackDurationMs < 0 || config.Editor.FeedbackDurationMs > maxFeedbackDurationMs {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"editor.feedback_duration_ms must be between 0 and %d",
			maxFeedbackDurationMs,
		))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateBindings(config *Config) []string {
	actions := make([]string, 0, len(config.Bindings))
	for action := range config.Bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var validationErrors []string
	for _, action := range actions {
		if _, ok := entity.LookupAction(entity.ActionID(action)); !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("bindings.%s: unknown action", action))
			continue
		}
		entry := config.Bindings[action]
		if entry.Key == nil {
			continue
		}
		if msg := validateKeyString(*entry.Key); msg != "" {
			validationErrors = append(validationErrors, fmt.Sprintf("bindings.%s.key %s", action, msg))
		}
	}
	return validationErrors
}

// validateKeyString checks that a key string is one combo or a two-part chord
// of parseable combos.
func validateKeyString(keyString string) string {
	parts := strings.Fields(keyString)
	if len(parts) == 0 {
		return "must not be empty"
	}
	if len(parts) > 2 {
		return fmt.Sprintf("must have at most two parts (got: %q)", keyString)
	}
	for _, part := range parts {
		if entity.ParseCombo(part).IsZero() {
			return fmt.Sprintf("has no key in %q", part)
		}
	}
	return ""
}
