package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"funbooks/internal/pkg/errs"
)

const (
	DefaultHTTPPort = "8080"
	DefaultLogLevel = "info"
)

// Config is the process configuration read from the environment.
type Config struct {
	HTTPPort  string
	RulesFile string
	LogLevel  string
}

// LoadConfig reads the configuration through getenv and fills in defaults.
// An empty RulesFile selects the default rule order.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:  getenv("HTTP_PORT"),
		RulesFile: getenv("RULES_FILE"),
		LogLevel:  strings.ToLower(getenv("LOG_LEVEL")),
	}

	if cfg.HTTPPort == "" {
		cfg.HTTPPort = DefaultHTTPPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause(
			"LOG_LEVEL",
			fmt.Errorf("%q is not one of debug, info, warn, error", c.LogLevel),
		)
	}
}
