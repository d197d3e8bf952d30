package cmd_test

import (
	"log/slog"
	"testing"

	"funbooks/cmd"
	"funbooks/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := cmd.LoadConfig(envOf(nil))
	require.NoError(t, err)
	assert.Equal(t, cmd.Config{HTTPPort: "8080", RulesFile: "", LogLevel: "info"}, cfg)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	cfg, err := cmd.LoadConfig(envOf(map[string]string{
		"HTTP_PORT":  "9090",
		"RULES_FILE": "/etc/funbooks/rules.yml",
		"LOG_LEVEL":  "DEBUG",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "/etc/funbooks/rules.yml", cfg.RulesFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	_, err := cmd.LoadConfig(envOf(map[string]string{"LOG_LEVEL": "verbose"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := cmd.Config{LogLevel: tt.level}.SlogLevel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
