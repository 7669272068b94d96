package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the server. Values set
// here override the YAML settings file.
type Config struct {
	// SettingsPath is the path to the YAML settings file; empty means
	// the embedded default.
	SettingsPath string `env:"VECTOR_MCP_CONFIG"`
	// LogLevel sets the logger level.
	LogLevel string `env:"VECTOR_MCP_LOG_LEVEL" envDefault:"info"`
	// Lang overrides the message language from the settings file.
	Lang string `env:"VECTOR_MCP_LANG"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"VECTOR_MCP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// Port overrides the HTTP listen port when non-zero.
	Port int `env:"PORT"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
