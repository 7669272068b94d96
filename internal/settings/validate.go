package settings

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate applies defaults and verifies required fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("settings is nil")
	}
	if strings.TrimSpace(cfg.Server.Name) == "" {
		return fmt.Errorf("server.name is required")
	}
	if strings.TrimSpace(cfg.Server.Version) == "" {
		return fmt.Errorf("server.version is required")
	}
	if cfg.Server.Lang == "" {
		cfg.Server.Lang = "pt"
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Server.Lang)) {
	case "pt", "en":
	default:
		return fmt.Errorf("server.lang must be pt or en")
	}
	if cfg.Server.HTTP.Listen == "" {
		cfg.Server.HTTP.Listen = ":8080"
	}
	if cfg.Server.HTTP.Path == "" {
		cfg.Server.HTTP.Path = "/mcp"
	}
	if !strings.HasPrefix(cfg.Server.HTTP.Path, "/") {
		return fmt.Errorf("server.http.path must start with /")
	}
	for field, value := range map[string]string{
		"server.shutdown_timeout":   cfg.Server.ShutdownTimeout,
		"server.http.read_timeout":  cfg.Server.HTTP.ReadTimeout,
		"server.http.write_timeout": cfg.Server.HTTP.WriteTimeout,
		"server.http.idle_timeout":  cfg.Server.HTTP.IdleTimeout,
		"vector_api.timeout":        cfg.VectorAPI.Timeout,
	} {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s is invalid: %w", field, err)
		}
	}

	if strings.TrimSpace(cfg.VectorAPI.BaseURL) == "" {
		return fmt.Errorf("vector_api.base_url is required")
	}
	parsed, err := url.Parse(strings.TrimSpace(cfg.VectorAPI.BaseURL))
	if err != nil {
		return fmt.Errorf("vector_api.base_url is invalid: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("vector_api.base_url must be absolute")
	}

	return nil
}
