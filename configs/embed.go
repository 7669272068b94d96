package configs

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed *.yaml
var embeddedSettings embed.FS

// Default is the embedded settings file used when no path is given.
const Default = "config.yaml"

// Load returns an embedded YAML settings file by filename.
func Load(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("embedded settings name is empty")
	}
	data, err := fs.ReadFile(embeddedSettings, name)
	if err != nil {
		return nil, fmt.Errorf("read embedded settings %q: %w", name, err)
	}
	return data, nil
}
