package config

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir:  DefaultDataDir(),
		Language: "english",
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
