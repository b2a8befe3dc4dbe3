// Package config provides application configuration loaded from environment variables.
package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Websocket holds live-update channel configuration.
	Websocket WebsocketConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// AutoMigrate applies pending SQL migrations on startup when true.
	AutoMigrate bool
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:      LoadServerConfigFromEnv(),
		Logger:      LoadLoggerConfigFromEnv(),
		Websocket:   LoadWebsocketConfigFromEnv(),
		GinMode:     GetEnv("GIN_MODE", "release"),
		AutoMigrate: GetEnvBool("DB_AUTO_MIGRATE", true),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if err := c.Websocket.Validate(); err != nil {
		return fmt.Errorf("websocket config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
