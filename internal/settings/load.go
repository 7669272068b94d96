package settings

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Load parses YAML bytes into Config and validates it. Unknown fields
// are rejected so typos fail at startup instead of being ignored.
func Load(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse settings yaml: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
