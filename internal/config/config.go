package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// Environment variables read by FromEnv.
const (
	EnvLogLevel  = "TEXTTOOL_LOG_LEVEL"
	EnvLogFormat = "TEXTTOOL_LOG_FORMAT"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds runtime settings that are not part of the command line.
type Config struct {
	// LogLevel defaults to disabled so normal runs write nothing but the usage line.
	LogLevel  zerolog.Level
	LogFormat string
}

// Default returns the settings used when the environment sets nothing.
func Default() Config {
	return Config{
		LogLevel:  zerolog.Disabled,
		LogFormat: LogFormatConsole,
	}
}

// FromEnv builds a Config from getenv (usually os.Getenv). Unset or unrecognized
// values keep their defaults.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()
	if getenv == nil {
		return cfg
	}

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil && level != zerolog.NoLevel {
			cfg.LogLevel = level
		}
	}

	switch strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))) {
	case LogFormatJSON:
		cfg.LogFormat = LogFormatJSON
	case LogFormatConsole:
		cfg.LogFormat = LogFormatConsole
	}

	return cfg
}
