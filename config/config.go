// Package config handles application configuration: the data directory
// layout, default word-table language and logging settings used by the
// command-line tools.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds runtime configuration for the wallet tools.
type Config struct {
	DataDir  string `conf:"datadir"`
	Language string `conf:"language"` // default BIP-39 word-table language

	Log LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.hdwallet
//	macOS:   ~/Library/Application Support/Hdwallet
//	Windows: %APPDATA%\Hdwallet
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hdwallet"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Hdwallet")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Hdwallet")
		}
		return filepath.Join(home, "AppData", "Roaming", "Hdwallet")
	default:
		return filepath.Join(home, ".hdwallet")
	}
}

// KeystoreDir returns the keystore directory.
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, "keystore")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "hdwallet.conf")
}
