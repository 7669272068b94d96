package settings

// Config is the top-level YAML settings file.
type Config struct {
	// Server describes the server identity and transport.
	Server ServerConfig `yaml:"server"`
	// VectorAPI configures the remote data service.
	VectorAPI VectorAPIConfig `yaml:"vector_api"`
}

// ServerConfig defines server settings.
type ServerConfig struct {
	// Name is the server name announced during capability negotiation.
	Name string `yaml:"name"`
	// Version is the server version.
	Version string `yaml:"version"`
	// Lang selects the message language ("pt" or "en").
	Lang string `yaml:"lang"`
	// ShutdownTimeout overrides graceful shutdown duration.
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// HTTP configures the HTTP transport.
	HTTP HTTPConfig `yaml:"http"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Path is the JSON-RPC endpoint path.
	Path string `yaml:"path"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout limits response write time.
	WriteTimeout string `yaml:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout"`
}

// VectorAPIConfig configures the remote Vector API.
type VectorAPIConfig struct {
	// BaseURL is the Vector API base URL.
	BaseURL string `yaml:"base_url"`
	// Timeout is the per-call HTTP timeout.
	Timeout string `yaml:"timeout"`
}
