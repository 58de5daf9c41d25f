package main

import (
	"log/slog"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{LogLevel: "debug", Timezone: "Asia/Jakarta"},
		Attendance: config.AttendanceConfig{
			LateThreshold: "09:30:00",
			HalfDayHours:  "4",
		},
	}
}

func TestRuntimeSettings(t *testing.T) {
	level, loc, policy, err := runtimeSettings(validConfig())
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	require.NotNil(t, loc)
	assert.Equal(t, "Asia/Jakarta", loc.String())
	assert.Equal(t, "09:30:00", policy.LateThreshold.String())
}

func TestRuntimeSettings_ReturnsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad log level", func(c *config.Config) { c.App.LogLevel = "chatty" }},
		{"bad timezone", func(c *config.Config) { c.App.Timezone = "Mars/Olympus" }},
		{"bad threshold", func(c *config.Config) { c.Attendance.LateThreshold = "nine-ish" }},
		{"bad half day hours", func(c *config.Config) { c.Attendance.HalfDayHours = "-1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			_, loc, _, err := runtimeSettings(cfg)
			assert.Error(t, err)
			assert.Nil(t, loc)
		})
	}
}
