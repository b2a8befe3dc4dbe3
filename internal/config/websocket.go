package config

import "fmt"

// WebsocketConfig holds live-update channel configuration.
type WebsocketConfig struct {
	// ReadBufferSize is the per-connection read buffer size in bytes.
	ReadBufferSize int
	// WriteBufferSize is the per-connection write buffer size in bytes.
	WriteBufferSize int
	// MaxMessageSize is the maximum inbound message size in bytes.
	MaxMessageSize int64
}

// LoadWebsocketConfigFromEnv loads websocket configuration from environment variables.
func LoadWebsocketConfigFromEnv() WebsocketConfig {
	return WebsocketConfig{
		ReadBufferSize:  GetEnvInt("WS_READ_BUFFER_SIZE", 1024),
		WriteBufferSize: GetEnvInt("WS_WRITE_BUFFER_SIZE", 1024),
		MaxMessageSize:  int64(GetEnvInt("WS_MAX_MESSAGE_SIZE", 4096)),
	}
}

// Validate validates websocket configuration.
func (c WebsocketConfig) Validate() error {
	if c.ReadBufferSize <= 0 {
		return fmt.Errorf("ReadBufferSize must be greater than 0")
	}
	if c.WriteBufferSize <= 0 {
		return fmt.Errorf("WriteBufferSize must be greater than 0")
	}
	if c.MaxMessageSize <= 0 {
		return fmt.Errorf("MaxMessageSize must be greater than 0")
	}
	return nil
}
