package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := LoggerConfig{Level: "info", Format: "json", Output: "stdout"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := LoggerConfig{Level: "trace", Format: "json", Output: "stdout"}
		assert.ErrorContains(t, cfg.Validate(), "invalid log level")
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := LoggerConfig{Level: "info", Format: "xml", Output: "stdout"}
		assert.ErrorContains(t, cfg.Validate(), "invalid log format")
	})
}

func TestLoggerConfig_IsProduction(t *testing.T) {
	assert.True(t, LoggerConfig{Level: "info", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "debug", Format: "json"}.IsProduction())
	assert.False(t, LoggerConfig{Level: "info", Format: "console"}.IsProduction())
}

func TestWebsocketConfig_Validate(t *testing.T) {
	t.Run("valid defaults", func(t *testing.T) {
		cfg := LoadWebsocketConfigFromEnv()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("zero read buffer", func(t *testing.T) {
		cfg := WebsocketConfig{ReadBufferSize: 0, WriteBufferSize: 1024, MaxMessageSize: 4096}
		assert.ErrorContains(t, cfg.Validate(), "ReadBufferSize")
	})

	t.Run("zero max message size", func(t *testing.T) {
		cfg := WebsocketConfig{ReadBufferSize: 1024, WriteBufferSize: 1024, MaxMessageSize: 0}
		assert.ErrorContains(t, cfg.Validate(), "MaxMessageSize")
	})
}
