package config

import (
	"fmt"

	"github.com/tidewater-labs/hdwallet/pkg/words"
)

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	if _, err := words.Get(words.Language(cfg.Language)); err != nil {
		return fmt.Errorf("language: %w", err)
	}
	switch cfg.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	return nil
}
